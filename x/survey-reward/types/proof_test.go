package types

import (
	"testing"

	sdkmath "cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	ethcrypto "github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/require"
)

func testToken(b byte) []byte {
	token := make([]byte, TokenLength)
	for i := range token {
		token[i] = b
	}
	return token
}

func testHash(b byte) []byte {
	hash := make([]byte, ContentHashLength)
	for i := range hash {
		hash[i] = b
	}
	return hash
}

func TestCreateSurveyDigestDeterministic(t *testing.T) {
	a := CreateSurveyDigest("agoric-3", testToken(0x01), 1000,
		"creator", "survey-1", 10, sdkmath.NewInt(500), testHash(0xaa), sdkmath.NewInt(100))
	b := CreateSurveyDigest("agoric-3", testToken(0x01), 1000,
		"creator", "survey-1", 10, sdkmath.NewInt(500), testHash(0xaa), sdkmath.NewInt(100))
	require.Equal(t, a, b)
	require.NotEqual(t, ZeroDigest, a)
}

func TestCreateSurveyDigestCommitsToEveryField(t *testing.T) {
	reference := CreateSurveyDigest("agoric-3", testToken(0x01), 1000,
		"creator", "survey-1", 10, sdkmath.NewInt(500), testHash(0xaa), sdkmath.NewInt(100))

	variants := []struct {
		name   string
		digest interface{}
	}{
		{"chain id", CreateSurveyDigest("other", testToken(0x01), 1000, "creator", "survey-1", 10, sdkmath.NewInt(500), testHash(0xaa), sdkmath.NewInt(100))},
		{"token", CreateSurveyDigest("agoric-3", testToken(0x02), 1000, "creator", "survey-1", 10, sdkmath.NewInt(500), testHash(0xaa), sdkmath.NewInt(100))},
		{"expiry", CreateSurveyDigest("agoric-3", testToken(0x01), 1001, "creator", "survey-1", 10, sdkmath.NewInt(500), testHash(0xaa), sdkmath.NewInt(100))},
		{"creator", CreateSurveyDigest("agoric-3", testToken(0x01), 1000, "other", "survey-1", 10, sdkmath.NewInt(500), testHash(0xaa), sdkmath.NewInt(100))},
		{"survey id", CreateSurveyDigest("agoric-3", testToken(0x01), 1000, "creator", "survey-2", 10, sdkmath.NewInt(500), testHash(0xaa), sdkmath.NewInt(100))},
		{"limit", CreateSurveyDigest("agoric-3", testToken(0x01), 1000, "creator", "survey-1", 11, sdkmath.NewInt(500), testHash(0xaa), sdkmath.NewInt(100))},
		{"reward", CreateSurveyDigest("agoric-3", testToken(0x01), 1000, "creator", "survey-1", 10, sdkmath.NewInt(501), testHash(0xaa), sdkmath.NewInt(100))},
		{"content hash", CreateSurveyDigest("agoric-3", testToken(0x01), 1000, "creator", "survey-1", 10, sdkmath.NewInt(500), testHash(0xbb), sdkmath.NewInt(100))},
		{"gas station", CreateSurveyDigest("agoric-3", testToken(0x01), 1000, "creator", "survey-1", 10, sdkmath.NewInt(500), testHash(0xaa), sdkmath.NewInt(101))},
	}

	for _, v := range variants {
		t.Run(v.name, func(t *testing.T) {
			require.NotEqual(t, reference, v.digest)
		})
	}
}

func TestProofPurposeSeparation(t *testing.T) {
	// the same token/expiry must never produce the same digest across
	// instruction kinds
	cancel := CancelSurveyDigest("agoric-3", testToken(0x01), 1000, "survey-1")
	pay := PayRewardsDigest("agoric-3", testToken(0x01), 1000, 1, 1)
	require.NotEqual(t, cancel, pay)
}

func TestAdjacentFieldsDoNotBleed(t *testing.T) {
	// "ab" + "c" and "a" + "bc" must hash differently
	a := CancelSurveyDigest("ab", testToken(0x01), 1000, "c")
	b := CancelSurveyDigest("a", testToken(0x01), 1000, "bc")
	require.NotEqual(t, a, b)
}

func TestPayRewardsDigestCommitsToLengthsOnly(t *testing.T) {
	// batch authorizations cover the batch shape, not its contents
	a := PayRewardsDigest("agoric-3", testToken(0x01), 1000, 2, 2)
	b := PayRewardsDigest("agoric-3", testToken(0x01), 1000, 2, 2)
	require.Equal(t, a, b)

	c := PayRewardsDigest("agoric-3", testToken(0x01), 1000, 3, 3)
	require.NotEqual(t, a, c)
}

func TestRecoverSignerRoundtrip(t *testing.T) {
	priv, err := ethcrypto.GenerateKey()
	require.NoError(t, err)
	expected := sdk.AccAddress(ethcrypto.PubkeyToAddress(priv.PublicKey).Bytes())

	digest := CancelSurveyDigest("agoric-3", testToken(0x01), 1000, "survey-1")
	sig, err := ethcrypto.Sign(digest.Bytes(), priv)
	require.NoError(t, err)

	signer, err := RecoverSigner(digest, sig)
	require.NoError(t, err)
	require.Equal(t, expected, signer)
}

func TestRecoverSignerNormalizesV(t *testing.T) {
	priv, err := ethcrypto.GenerateKey()
	require.NoError(t, err)
	expected := sdk.AccAddress(ethcrypto.PubkeyToAddress(priv.PublicKey).Bytes())

	digest := CancelSurveyDigest("agoric-3", testToken(0x01), 1000, "survey-1")
	sig, err := ethcrypto.Sign(digest.Bytes(), priv)
	require.NoError(t, err)

	// external signers ship V as 27/28
	sig[64] += 27
	signer, err := RecoverSigner(digest, sig)
	require.NoError(t, err)
	require.Equal(t, expected, signer)
}

func TestRecoverSignerRejectsBadLength(t *testing.T) {
	digest := CancelSurveyDigest("agoric-3", testToken(0x01), 1000, "survey-1")
	_, err := RecoverSigner(digest, make([]byte, 64))
	require.ErrorIs(t, err, ErrZeroSigner)
}

func TestRecoverSignerWrongDigestYieldsDifferentSigner(t *testing.T) {
	priv, err := ethcrypto.GenerateKey()
	require.NoError(t, err)
	expected := sdk.AccAddress(ethcrypto.PubkeyToAddress(priv.PublicKey).Bytes())

	digest := CancelSurveyDigest("agoric-3", testToken(0x01), 1000, "survey-1")
	sig, err := ethcrypto.Sign(digest.Bytes(), priv)
	require.NoError(t, err)

	other := CancelSurveyDigest("agoric-3", testToken(0x01), 1000, "survey-2")
	signer, err := RecoverSigner(other, sig)
	if err == nil {
		require.NotEqual(t, expected, signer)
	}
}
