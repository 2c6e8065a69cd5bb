package survey_test

import (
	"encoding/json"
	"testing"

	sdkmath "cosmossdk.io/math"
	"github.com/stretchr/testify/require"

	survey "github.com/qstn-network/qstn-chain/x/survey-reward"
	"github.com/qstn-network/qstn-chain/x/survey-reward/testutil"
	"github.com/qstn-network/qstn-chain/x/survey-reward/types"
)

func TestAppModuleBasicName(t *testing.T) {
	require.Equal(t, types.ModuleName, survey.AppModuleBasic{}.Name())
}

func TestAppModuleBasicDefaultGenesis(t *testing.T) {
	basic := survey.AppModuleBasic{}

	bz := basic.DefaultGenesis(nil)
	require.NoError(t, basic.ValidateGenesis(nil, nil, bz))
}

func TestAppModuleBasicValidateGenesisRejects(t *testing.T) {
	basic := survey.AppModuleBasic{}

	require.Error(t, basic.ValidateGenesis(nil, nil, []byte("not json")))
	require.Error(t, basic.ValidateGenesis(nil, nil, []byte(`{"managers":["not-bech32"]}`)))
}

func TestAppModuleGenesisRoundtrip(t *testing.T) {
	s := testutil.SetupSuite(t)
	am := survey.NewAppModule(nil, s.Keeper, s.BankKeeper)

	record := testutil.NewSurveyRecord("survey-1", s.Creator.String(), 10, sdkmath.NewInt(500))
	genState := types.GenesisState{
		Params: &types.Params{
			TrustedChainID:  testutil.TrustedChainID,
			TrustedSender:   testutil.TrustedSender,
			GatewayContract: s.Gateway.String(),
		},
		Surveys:  []*types.SurveyRecord{&record},
		Managers: []string{s.User.String()},
	}
	bz, err := json.Marshal(genState)
	require.NoError(t, err)

	updates := am.InitGenesis(s.Ctx, nil, bz)
	require.Empty(t, updates)
	require.True(t, s.Keeper.HasSurvey(s.Ctx, "survey-1"))

	exported := am.ExportGenesis(s.Ctx, nil)
	var roundtrip types.GenesisState
	require.NoError(t, json.Unmarshal(exported, &roundtrip))
	require.Len(t, roundtrip.Surveys, 1)
	require.Equal(t, record, *roundtrip.Surveys[0])
	require.Equal(t, []string{s.User.String()}, roundtrip.Managers)
}

func TestAppModuleConsensusVersion(t *testing.T) {
	s := testutil.SetupSuite(t)
	am := survey.NewAppModule(nil, s.Keeper, s.BankKeeper)
	require.Equal(t, uint64(1), am.ConsensusVersion())
}
