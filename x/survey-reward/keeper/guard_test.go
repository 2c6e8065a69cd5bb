package keeper_test

import (
	"testing"

	sdkmath "cosmossdk.io/math"
	"github.com/stretchr/testify/require"

	"github.com/qstn-network/qstn-chain/x/survey-reward/testutil"
	"github.com/qstn-network/qstn-chain/x/survey-reward/types"
)

func TestDigestNullWhenTokenSpent(t *testing.T) {
	s := testutil.SetupSuite(t)
	signer := testutil.NewSigner(t)

	p := testutil.NewCancelPayload(t, signer, testutil.Token(0x01), "survey-1")
	require.NotEqual(t, types.ZeroDigest, s.Keeper.CancelSurveyDigest(s.Ctx, p))

	s.Keeper.MarkTokenUsed(s.Ctx, p.Token)
	require.Equal(t, types.ZeroDigest, s.Keeper.CancelSurveyDigest(s.Ctx, p))
}

func TestValidateProofRecoversManagerSigner(t *testing.T) {
	s := testutil.SetupSuite(t)
	signer := testutil.NewSigner(t)

	p := testutil.NewCancelPayload(t, signer, testutil.Token(0x01), "survey-1")
	digest := s.Keeper.CancelSurveyDigest(s.Ctx, p)

	recovered, err := s.Keeper.ValidateProof(s.Ctx, digest, p.Token, p.Expiry, p.Signature)
	require.NoError(t, err)
	require.Equal(t, signer.Address, recovered)

	// the token is spent by a successful validation
	require.True(t, s.Keeper.IsTokenUsed(s.Ctx, p.Token))
}

func TestValidateProofNullDigestConsumesNothing(t *testing.T) {
	s := testutil.SetupSuite(t)
	signer := testutil.NewSigner(t)

	p := testutil.NewCancelPayload(t, signer, testutil.Token(0x01), "survey-1")

	_, err := s.Keeper.ValidateProof(s.Ctx, types.ZeroDigest, p.Token, p.Expiry, p.Signature)
	require.ErrorIs(t, err, types.ErrInvalidProof)
	require.False(t, s.Keeper.IsTokenUsed(s.Ctx, p.Token))
}

func TestValidateProofReusedTokenConsumesNothingNew(t *testing.T) {
	s := testutil.SetupSuite(t)
	signer := testutil.NewSigner(t)

	p := testutil.NewCancelPayload(t, signer, testutil.Token(0x01), "survey-1")
	digest := s.Keeper.CancelSurveyDigest(s.Ctx, p)

	s.Keeper.MarkTokenUsed(s.Ctx, p.Token)
	_, err := s.Keeper.ValidateProof(s.Ctx, digest, p.Token, p.Expiry, p.Signature)
	require.ErrorIs(t, err, types.ErrTokenReused)
}

func TestValidateProofExpiredStillConsumes(t *testing.T) {
	s := testutil.SetupSuite(t)
	signer := testutil.NewSigner(t)

	p := types.CancelSurveyPayload{
		MsgID: types.MsgIDCancelSurvey,
		ProofFields: types.ProofFields{
			Token:  testutil.Token(0x01),
			Expiry: 1000,
		},
		SurveyID: "survey-1",
	}
	digest := types.CancelSurveyDigest(testutil.TrustedChainID, p.Token, p.Expiry, p.SurveyID)
	p.Signature = signer.Sign(t, digest)

	_, err := s.Keeper.ValidateProof(s.Ctx, digest, p.Token, p.Expiry, p.Signature)
	require.ErrorIs(t, err, types.ErrProofExpired)
	require.True(t, s.Keeper.IsTokenUsed(s.Ctx, p.Token))
}

func TestValidateProofBadSignatureStillConsumes(t *testing.T) {
	s := testutil.SetupSuite(t)
	signer := testutil.NewSigner(t)

	p := testutil.NewCancelPayload(t, signer, testutil.Token(0x01), "survey-1")
	digest := s.Keeper.CancelSurveyDigest(s.Ctx, p)

	_, err := s.Keeper.ValidateProof(s.Ctx, digest, p.Token, p.Expiry, make([]byte, 64))
	require.Error(t, err)
	require.True(t, s.Keeper.IsTokenUsed(s.Ctx, p.Token))
}

func TestRequireManager(t *testing.T) {
	s := testutil.SetupSuite(t)
	signer := testutil.NewSigner(t)

	err := s.Keeper.RequireManager(s.Ctx, signer.Address)
	require.ErrorIs(t, err, types.ErrUnauthorizedSigner)

	s.Keeper.SetManager(s.Ctx, signer.Address.String(), true)
	require.NoError(t, s.Keeper.RequireManager(s.Ctx, signer.Address))
}

func TestDigestUsesTrustedChainID(t *testing.T) {
	s := testutil.SetupSuite(t)
	signer := testutil.NewSigner(t)

	p := testutil.NewCreatePayload(t, signer, testutil.Token(0x01),
		s.Creator.String(), "survey-1", 10, sdkmath.NewInt(500), sdkmath.NewInt(100))

	expected := types.CreateSurveyDigest(testutil.TrustedChainID, p.Token, p.Expiry,
		p.Creator, p.SurveyID, p.ParticipantsLimit, p.RewardAmount, p.ContentHash, p.GasStationAmount)
	require.Equal(t, expected, s.Keeper.CreateSurveyDigest(s.Ctx, p))

	// retargeting the trusted origin invalidates outstanding proofs
	params := s.Keeper.GetParams(s.Ctx)
	params.TrustedChainID = "other-chain"
	s.Keeper.SetParams(s.Ctx, params)
	require.NotEqual(t, expected, s.Keeper.CreateSurveyDigest(s.Ctx, p))
}
