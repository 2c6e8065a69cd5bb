package types

import (
	"encoding/binary"

	sdkmath "cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/ethereum/go-ethereum/common"
	ethcrypto "github.com/ethereum/go-ethereum/crypto"
)

const (
	// TokenLength is the size of a one-time proof token
	TokenLength = 32

	// ContentHashLength is the size of a survey content commitment
	ContentHashLength = 32

	// SignatureLength is the size of a compact [R || S || V] signature
	SignatureLength = 65
)

// Proof purposes. Each purpose gets its own byte so a signature over one
// instruction kind can never validate another.
const (
	ProofPurposeCreateSurvey byte = 0x00
	ProofPurposeCancelSurvey byte = 0x01
	ProofPurposePayRewards   byte = 0x02
)

// ZeroDigest is the null sentinel returned in place of a real digest when
// the supplied one-time token has already been consumed.
var ZeroDigest = common.Hash{}

// proofDigest computes keccak256 over the canonical concatenation of the
// domain-separating source chain id, the one-time token, the expiry, the
// purpose byte and the purpose-specific fields in fixed order. Variable
// length fields are length-prefixed so adjacent fields cannot bleed into
// each other.
func proofDigest(chainID string, token []byte, expiry uint64, purpose byte, fields ...[]byte) common.Hash {
	buf := appendLenPrefixed(nil, []byte(chainID))
	buf = appendLenPrefixed(buf, token)
	buf = binary.BigEndian.AppendUint64(buf, expiry)
	buf = append(buf, purpose)
	for _, f := range fields {
		buf = appendLenPrefixed(buf, f)
	}
	return common.BytesToHash(ethcrypto.Keccak256(buf))
}

func appendLenPrefixed(buf, field []byte) []byte {
	buf = binary.BigEndian.AppendUint32(buf, uint32(len(field)))
	return append(buf, field...)
}

func uint64Field(v uint64) []byte {
	return binary.BigEndian.AppendUint64(nil, v)
}

// intField canonically encodes an sdkmath.Int as its decimal string.
func intField(v sdkmath.Int) []byte {
	return []byte(v.String())
}

// CreateSurveyDigest commits to every field of a create-survey instruction.
func CreateSurveyDigest(chainID string, token []byte, expiry uint64,
	creator, surveyID string, participantsLimit uint64,
	rewardAmount sdkmath.Int, contentHash []byte, gasStationAmount sdkmath.Int,
) common.Hash {
	return proofDigest(chainID, token, expiry, ProofPurposeCreateSurvey,
		[]byte(creator),
		[]byte(surveyID),
		uint64Field(participantsLimit),
		intField(rewardAmount),
		contentHash,
		intField(gasStationAmount),
	)
}

// CancelSurveyDigest commits to the survey id of a cancel instruction.
func CancelSurveyDigest(chainID string, token []byte, expiry uint64, surveyID string) common.Hash {
	return proofDigest(chainID, token, expiry, ProofPurposeCancelSurvey,
		[]byte(surveyID),
	)
}

// PayRewardsDigest commits to the two batch array lengths only, not their
// contents. A validly signed batch authorization therefore covers any batch
// of the same shape from the trusted relayer; this mirrors the upstream
// protocol and must not be strengthened unilaterally.
func PayRewardsDigest(chainID string, token []byte, expiry uint64, numSurveys, numParticipants uint64) common.Hash {
	return proofDigest(chainID, token, expiry, ProofPurposePayRewards,
		uint64Field(numSurveys),
		uint64Field(numParticipants),
	)
}

// RecoverSigner recovers the account that signed the digest from a 65-byte
// compact signature. Ethereum-style V values of 27/28 are normalized. The
// recovered secp256k1 public key maps to a local account address the same
// way an external signer derives it.
func RecoverSigner(digest common.Hash, signature []byte) (sdk.AccAddress, error) {
	if len(signature) != SignatureLength {
		return nil, ErrZeroSigner.Wrapf("signature must be %d bytes, got %d", SignatureLength, len(signature))
	}
	sig := make([]byte, SignatureLength)
	copy(sig, signature)
	if sig[64] >= 27 {
		sig[64] -= 27
	}
	pub, err := ethcrypto.SigToPub(digest.Bytes(), sig)
	if err != nil {
		return nil, ErrZeroSigner.Wrapf("recover pubkey: %v", err)
	}
	addr := ethcrypto.PubkeyToAddress(*pub)
	if addr == (common.Address{}) {
		return nil, ErrZeroSigner
	}
	return sdk.AccAddress(addr.Bytes()), nil
}
