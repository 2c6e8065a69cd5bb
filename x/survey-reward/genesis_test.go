package survey_test

import (
	"encoding/hex"
	"testing"

	sdkmath "cosmossdk.io/math"
	"github.com/stretchr/testify/require"

	survey "github.com/qstn-network/qstn-chain/x/survey-reward"
	"github.com/qstn-network/qstn-chain/x/survey-reward/testutil"
	"github.com/qstn-network/qstn-chain/x/survey-reward/types"
)

func TestInitGenesisRestoresState(t *testing.T) {
	s := testutil.SetupSuite(t)

	record := testutil.NewSurveyRecord("survey-1", s.Creator.String(), 10, sdkmath.NewInt(500))
	record.ParticipantsRewarded = 1

	genState := types.GenesisState{
		Params: &types.Params{
			TrustedChainID:  testutil.TrustedChainID,
			TrustedSender:   testutil.TrustedSender,
			GatewayContract: s.Gateway.String(),
		},
		Surveys: []*types.SurveyRecord{&record},
		RewardMemberships: []types.RewardMembership{
			{SurveyID: "survey-1", Participant: s.User.String()},
		},
		UsedTokens:          []string{hex.EncodeToString(testutil.Token(0x01))},
		Managers:            []string{s.User2.String()},
		DisbursementAddress: s.User.String(),
		Routes: []*types.RemoteRoute{
			{
				ChainName:     "ethereum",
				LocalDenom:    types.NewRemoteRoute("ethereum", "1", "channel-0", "usdc").LocalDenom,
				RemoteChainID: "1",
				ChannelID:     "channel-0",
				RemoteDenom:   "usdc",
			},
		},
	}
	require.NoError(t, types.ValidateGenesis(genState))

	survey.InitGenesis(s.Ctx, s.Keeper, genState)

	got, found := s.Keeper.GetSurvey(s.Ctx, "survey-1")
	require.True(t, found)
	require.Equal(t, record, got)
	require.True(t, s.Keeper.HasRewardMembership(s.Ctx, "survey-1", s.User.String()))
	require.True(t, s.Keeper.IsTokenUsed(s.Ctx, testutil.Token(0x01)))
	require.True(t, s.Keeper.IsManager(s.Ctx, s.User2.String()))
	require.Equal(t, s.User, s.Keeper.GetDisbursementAddress(s.Ctx))
	require.True(t, s.Keeper.HasRoute(s.Ctx, "ethereum"))
}

func TestInitGenesisAuthorityFallbackManager(t *testing.T) {
	k, ctx, _, _ := testutil.SetupKeeper(t)

	survey.InitGenesis(ctx, k, *types.DefaultGenesisState())

	// with no explicit managers the authority can sign proofs
	require.True(t, k.IsManager(ctx, testutil.Authority.String()))
}

func TestInitGenesisPanicsOnBadToken(t *testing.T) {
	k, ctx, _, _ := testutil.SetupKeeper(t)

	genState := *types.DefaultGenesisState()
	genState.UsedTokens = []string{"not-hex"}

	require.Panics(t, func() {
		survey.InitGenesis(ctx, k, genState)
	})
}

func TestExportGenesisRoundtrip(t *testing.T) {
	s := testutil.SetupSuite(t)

	record := testutil.NewSurveyRecord("survey-1", s.Creator.String(), 10, sdkmath.NewInt(500))
	genState := types.GenesisState{
		Params: &types.Params{
			TrustedChainID:  testutil.TrustedChainID,
			TrustedSender:   testutil.TrustedSender,
			GatewayContract: s.Gateway.String(),
		},
		Surveys:             []*types.SurveyRecord{&record},
		UsedTokens:          []string{hex.EncodeToString(testutil.Token(0x01))},
		Managers:            []string{s.User2.String()},
		DisbursementAddress: s.User.String(),
	}
	survey.InitGenesis(s.Ctx, s.Keeper, genState)

	exported := survey.ExportGenesis(s.Ctx, s.Keeper)
	require.NoError(t, types.ValidateGenesis(*exported))

	require.Equal(t, genState.Params, exported.Params)
	require.Len(t, exported.Surveys, 1)
	require.Equal(t, record, *exported.Surveys[0])
	require.Equal(t, genState.UsedTokens, exported.UsedTokens)
	require.Equal(t, genState.Managers, exported.Managers)
	require.Equal(t, genState.DisbursementAddress, exported.DisbursementAddress)
	require.Empty(t, exported.Routes)
}
