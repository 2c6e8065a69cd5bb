package testutil

import (
	"crypto/ecdsa"
	"encoding/json"
	"testing"

	sdkmath "cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/ethereum/go-ethereum/common"
	ethcrypto "github.com/ethereum/go-ethereum/crypto"

	"github.com/qstn-network/qstn-chain/x/survey-reward/types"
)

// Trusted origin used by the test params.
const (
	TrustedChainID = "agoric-3"
	TrustedSender  = "agoric1qstnplatform00000000000000000000000"

	// FarFuture is an expiry that never trips the block-time check.
	FarFuture uint64 = 4102444800
)

// Signer wraps a secp256k1 key and its derived local account address.
type Signer struct {
	Priv    *ecdsa.PrivateKey
	Address sdk.AccAddress
}

// NewSigner generates a fresh proof signer
func NewSigner(t *testing.T) Signer {
	t.Helper()

	priv, err := ethcrypto.GenerateKey()
	if err != nil {
		t.Fatalf("failed to generate key: %v", err)
	}
	addr := ethcrypto.PubkeyToAddress(priv.PublicKey)
	return Signer{
		Priv:    priv,
		Address: sdk.AccAddress(addr.Bytes()),
	}
}

// Sign produces a 65-byte compact signature over the digest
func (s Signer) Sign(t *testing.T, digest common.Hash) []byte {
	t.Helper()

	sig, err := ethcrypto.Sign(digest.Bytes(), s.Priv)
	if err != nil {
		t.Fatalf("failed to sign digest: %v", err)
	}
	return sig
}

// Token builds a 32-byte one-time token filled with b
func Token(b byte) []byte {
	token := make([]byte, types.TokenLength)
	for i := range token {
		token[i] = b
	}
	return token
}

// ContentHash builds a 32-byte content commitment filled with b
func ContentHash(b byte) []byte {
	hash := make([]byte, types.ContentHashLength)
	for i := range hash {
		hash[i] = b
	}
	return hash
}

// NewCreatePayload builds a signed create-survey payload
func NewCreatePayload(t *testing.T, signer Signer, token []byte, creator, surveyID string, limit uint64, reward, gasStation sdkmath.Int) types.CreateSurveyPayload {
	t.Helper()

	p := types.CreateSurveyPayload{
		MsgID: types.MsgIDCreateSurvey,
		ProofFields: types.ProofFields{
			Token:  token,
			Expiry: FarFuture,
		},
		Creator:           creator,
		SurveyID:          surveyID,
		ParticipantsLimit: limit,
		RewardAmount:      reward,
		ContentHash:       ContentHash(0xaa),
		GasStationAmount:  gasStation,
	}
	digest := types.CreateSurveyDigest(TrustedChainID, p.Token, p.Expiry,
		p.Creator, p.SurveyID, p.ParticipantsLimit, p.RewardAmount, p.ContentHash, p.GasStationAmount)
	p.Signature = signer.Sign(t, digest)
	return p
}

// NewCancelPayload builds a signed cancel-survey payload
func NewCancelPayload(t *testing.T, signer Signer, token []byte, surveyID string) types.CancelSurveyPayload {
	t.Helper()

	p := types.CancelSurveyPayload{
		MsgID: types.MsgIDCancelSurvey,
		ProofFields: types.ProofFields{
			Token:  token,
			Expiry: FarFuture,
		},
		SurveyID: surveyID,
	}
	digest := types.CancelSurveyDigest(TrustedChainID, p.Token, p.Expiry, p.SurveyID)
	p.Signature = signer.Sign(t, digest)
	return p
}

// NewPayRewardsPayload builds a signed batch payout payload
func NewPayRewardsPayload(t *testing.T, signer Signer, token []byte, surveyIDs, participants []string) types.PayRewardsPayload {
	t.Helper()

	p := types.PayRewardsPayload{
		MsgID: types.MsgIDPayRewards,
		ProofFields: types.ProofFields{
			Token:  token,
			Expiry: FarFuture,
		},
		SurveyIDs:    surveyIDs,
		Participants: participants,
	}
	digest := types.PayRewardsDigest(TrustedChainID, p.Token, p.Expiry,
		uint64(len(p.SurveyIDs)), uint64(len(p.Participants)))
	p.Signature = signer.Sign(t, digest)
	return p
}

// NewEnvelopeMsg wraps a payload into a MsgSubmitEnvelope from the trusted
// origin
func NewEnvelopeMsg(t *testing.T, gateway sdk.AccAddress, payload interface{}, funds sdk.Coins) *types.MsgSubmitEnvelope {
	t.Helper()

	bz, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("failed to marshal payload: %v", err)
	}
	return types.NewMsgSubmitEnvelope(gateway.String(), TrustedChainID, TrustedSender, bz, nil, funds)
}

// NewSurveyRecord builds a minimal valid survey record for store tests
func NewSurveyRecord(id, creator string, limit uint64, reward sdkmath.Int) types.SurveyRecord {
	return types.SurveyRecord{
		ID:                id,
		Creator:           creator,
		ParticipantsLimit: limit,
		RewardAmount:      reward,
		ContentHash:       ContentHash(0xaa),
		RewardDenom:       types.BaseDenom,
	}
}
