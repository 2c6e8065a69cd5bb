package keeper_test

import (
	"testing"

	sdkmath "cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"
	"github.com/stretchr/testify/require"

	"github.com/qstn-network/qstn-chain/x/survey-reward/testutil"
	"github.com/qstn-network/qstn-chain/x/survey-reward/types"
)

var moduleAddr = authtypes.NewModuleAddress(types.ModuleName)

// fundAndCreate escrows the funding in the module account and inserts the
// survey the way a settled create envelope would.
func fundAndCreate(t *testing.T, s *testutil.TestSuite, signer testutil.Signer, surveyID string, limit uint64, reward, gasStation sdkmath.Int) types.CreateSurveyPayload {
	t.Helper()

	p := testutil.NewCreatePayload(t, signer, testutil.Token(0x01), s.Creator.String(), surveyID, limit, reward, gasStation)
	funding := reward.MulRaw(int64(limit)).Add(gasStation)
	s.BankKeeper.FundModule(s.Ctx, types.ModuleName, sdk.NewCoins(sdk.NewCoin(types.BaseDenom, funding)))

	err := s.Keeper.CreateSurvey(s.Ctx, p, sdk.NewCoin(types.BaseDenom, funding))
	require.NoError(t, err)
	return p
}

func TestCreateSurveyEscrowsAndForwardsGas(t *testing.T) {
	s := testutil.SetupSuite(t)
	signer := testutil.NewSigner(t)

	fundAndCreate(t, s, signer, "survey-1", 10, sdkmath.NewInt(500), sdkmath.NewInt(100))

	survey, found := s.Keeper.GetSurvey(s.Ctx, "survey-1")
	require.True(t, found)
	require.Equal(t, s.Creator.String(), survey.Creator)
	require.Equal(t, uint64(0), survey.ParticipantsRewarded)
	require.False(t, survey.Canceled)

	// reward pool stays escrowed, gas station share goes to the
	// disbursement account (the authority while unset)
	require.Equal(t, sdkmath.NewInt(5000),
		s.BankKeeper.GetBalance(s.Ctx, moduleAddr, types.BaseDenom).Amount)
	require.Equal(t, sdkmath.NewInt(100),
		s.BankKeeper.GetBalance(s.Ctx, sdk.AccAddress(testutil.Authority), types.BaseDenom).Amount)
}

func TestCreateSurveyRejectsWrongFunding(t *testing.T) {
	s := testutil.SetupSuite(t)
	signer := testutil.NewSigner(t)

	p := testutil.NewCreatePayload(t, signer, testutil.Token(0x01),
		s.Creator.String(), "survey-1", 10, sdkmath.NewInt(500), sdkmath.NewInt(100))

	// required is exactly 5100; both under- and over-funding fail
	err := s.Keeper.CreateSurvey(s.Ctx, p, sdk.NewCoin(types.BaseDenom, sdkmath.NewInt(5099)))
	require.ErrorIs(t, err, types.ErrInvalidFunding)

	err = s.Keeper.CreateSurvey(s.Ctx, p, sdk.NewCoin(types.BaseDenom, sdkmath.NewInt(5101)))
	require.ErrorIs(t, err, types.ErrInvalidFunding)

	require.False(t, s.Keeper.HasSurvey(s.Ctx, "survey-1"))
}

func TestCreateSurveyRejectsDuplicateID(t *testing.T) {
	s := testutil.SetupSuite(t)
	signer := testutil.NewSigner(t)

	fundAndCreate(t, s, signer, "survey-1", 10, sdkmath.NewInt(500), sdkmath.ZeroInt())

	p := testutil.NewCreatePayload(t, signer, testutil.Token(0x02),
		s.Creator.String(), "survey-1", 5, sdkmath.NewInt(100), sdkmath.ZeroInt())
	err := s.Keeper.CreateSurvey(s.Ctx, p, sdk.NewCoin(types.BaseDenom, sdkmath.NewInt(500)))
	require.ErrorIs(t, err, types.ErrSurveyExists)
}

func TestCancelSurveyRefundsUnspentPool(t *testing.T) {
	s := testutil.SetupSuite(t)
	signer := testutil.NewSigner(t)

	fundAndCreate(t, s, signer, "survey-1", 10, sdkmath.NewInt(500), sdkmath.ZeroInt())

	// pay out three slots, then cancel
	for _, user := range []sdk.AccAddress{s.User, s.User2, sdk.AccAddress("user3_______________")} {
		_, err := s.Keeper.PayReward(s.Ctx, "survey-1", user.String())
		require.NoError(t, err)
	}

	require.NoError(t, s.Keeper.CancelSurvey(s.Ctx, "survey-1", s.Creator))

	// 10*500 funded, 3*500 spent, 7*500 refunded
	require.Equal(t, sdkmath.NewInt(3500),
		s.BankKeeper.GetBalance(s.Ctx, s.Creator, types.BaseDenom).Amount)
	require.True(t, s.BankKeeper.GetBalance(s.Ctx, moduleAddr, types.BaseDenom).Amount.IsZero())

	survey, _ := s.Keeper.GetSurvey(s.Ctx, "survey-1")
	require.True(t, survey.Canceled)
}

func TestCancelSurveyAuthorization(t *testing.T) {
	s := testutil.SetupSuite(t)
	signer := testutil.NewSigner(t)

	fundAndCreate(t, s, signer, "survey-1", 10, sdkmath.NewInt(500), sdkmath.ZeroInt())

	err := s.Keeper.CancelSurvey(s.Ctx, "survey-1", s.User)
	require.ErrorIs(t, err, types.ErrUnauthorized)

	// a manager who is not the creator can cancel
	s.Keeper.SetManager(s.Ctx, s.User.String(), true)
	require.NoError(t, s.Keeper.CancelSurvey(s.Ctx, "survey-1", s.User))
}

func TestCheckCancelable(t *testing.T) {
	s := testutil.SetupSuite(t)
	signer := testutil.NewSigner(t)

	_, err := s.Keeper.CheckCancelable(s.Ctx, "missing")
	require.ErrorIs(t, err, types.ErrSurveyNotFound)

	fundAndCreate(t, s, signer, "survey-1", 1, sdkmath.NewInt(500), sdkmath.ZeroInt())

	_, err = s.Keeper.CheckCancelable(s.Ctx, "survey-1")
	require.NoError(t, err)

	// fully rewarded surveys cannot be canceled
	_, err = s.Keeper.PayReward(s.Ctx, "survey-1", s.User.String())
	require.NoError(t, err)
	_, err = s.Keeper.CheckCancelable(s.Ctx, "survey-1")
	require.ErrorIs(t, err, types.ErrAllRewarded)
}

func TestCheckCancelableAlreadyCanceled(t *testing.T) {
	s := testutil.SetupSuite(t)
	signer := testutil.NewSigner(t)

	fundAndCreate(t, s, signer, "survey-1", 10, sdkmath.NewInt(500), sdkmath.ZeroInt())
	require.NoError(t, s.Keeper.CancelSurvey(s.Ctx, "survey-1", s.Creator))

	_, err := s.Keeper.CheckCancelable(s.Ctx, "survey-1")
	require.ErrorIs(t, err, types.ErrAlreadyCanceled)
}

func TestPayRewardTransfersAndRecords(t *testing.T) {
	s := testutil.SetupSuite(t)
	signer := testutil.NewSigner(t)

	fundAndCreate(t, s, signer, "survey-1", 2, sdkmath.NewInt(500), sdkmath.ZeroInt())

	finished, err := s.Keeper.PayReward(s.Ctx, "survey-1", s.User.String())
	require.NoError(t, err)
	require.False(t, finished)

	require.Equal(t, sdkmath.NewInt(500),
		s.BankKeeper.GetBalance(s.Ctx, s.User, types.BaseDenom).Amount)
	require.True(t, s.Keeper.HasRewardMembership(s.Ctx, "survey-1", s.User.String()))

	survey, _ := s.Keeper.GetSurvey(s.Ctx, "survey-1")
	require.Equal(t, uint64(1), survey.ParticipantsRewarded)

	// the last slot reports finished exactly once
	finished, err = s.Keeper.PayReward(s.Ctx, "survey-1", s.User2.String())
	require.NoError(t, err)
	require.True(t, finished)
}

func TestPayRewardRejections(t *testing.T) {
	s := testutil.SetupSuite(t)
	signer := testutil.NewSigner(t)

	_, err := s.Keeper.PayReward(s.Ctx, "missing", s.User.String())
	require.ErrorIs(t, err, types.ErrSurveyNotFound)

	fundAndCreate(t, s, signer, "survey-1", 1, sdkmath.NewInt(500), sdkmath.ZeroInt())

	_, err = s.Keeper.PayReward(s.Ctx, "survey-1", "not-bech32")
	require.ErrorIs(t, err, types.ErrInvalidEnvelope)

	_, err = s.Keeper.PayReward(s.Ctx, "survey-1", s.User.String())
	require.NoError(t, err)

	// double payout and limit overflow
	_, err = s.Keeper.PayReward(s.Ctx, "survey-1", s.User.String())
	require.ErrorIs(t, err, types.ErrLimitReached)

	fundAndCreate(t, s, testutil.NewSigner(t), "survey-2", 2, sdkmath.NewInt(500), sdkmath.ZeroInt())
	_, err = s.Keeper.PayReward(s.Ctx, "survey-2", s.User.String())
	require.NoError(t, err)
	_, err = s.Keeper.PayReward(s.Ctx, "survey-2", s.User.String())
	require.ErrorIs(t, err, types.ErrAlreadyRewarded)
}

func TestPayRewardCanceledSurvey(t *testing.T) {
	s := testutil.SetupSuite(t)
	signer := testutil.NewSigner(t)

	fundAndCreate(t, s, signer, "survey-1", 10, sdkmath.NewInt(500), sdkmath.ZeroInt())
	require.NoError(t, s.Keeper.CancelSurvey(s.Ctx, "survey-1", s.Creator))

	_, err := s.Keeper.PayReward(s.Ctx, "survey-1", s.User.String())
	require.ErrorIs(t, err, types.ErrAlreadyCanceled)
}

func TestTransferFailureSurfacesSentinel(t *testing.T) {
	s := testutil.SetupSuite(t)

	// survey recorded without the module account holding its pool, so every
	// outgoing send fails at the bank
	record := testutil.NewSurveyRecord("survey-1", s.Creator.String(), 10, sdkmath.NewInt(500))
	s.Keeper.SetSurvey(s.Ctx, record)

	err := s.Keeper.CancelSurvey(s.Ctx, "survey-1", s.Creator)
	require.ErrorIs(t, err, types.ErrTransferFailed)

	_, err = s.Keeper.PayReward(s.Ctx, "survey-1", s.User.String())
	require.ErrorIs(t, err, types.ErrTransferFailed)
}
