package keeper

import (
	errorsmod "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/ethereum/go-ethereum/common"

	"github.com/qstn-network/qstn-chain/x/survey-reward/types"
)

// digestOrNull returns the freshly computed proof digest, or the null
// sentinel when the one-time token has already been consumed. The sentinel
// lets callers reject stale proofs before paying for signature recovery.
func (k Keeper) digestOrNull(ctx sdk.Context, token []byte, fresh func(chainID string) common.Hash) common.Hash {
	if k.IsTokenUsed(ctx, token) {
		return types.ZeroDigest
	}
	return fresh(k.GetParams(ctx).TrustedChainID)
}

// CreateSurveyDigest computes the digest for a create-survey proof, null if
// the token is spent.
func (k Keeper) CreateSurveyDigest(ctx sdk.Context, p types.CreateSurveyPayload) common.Hash {
	return k.digestOrNull(ctx, p.Token, func(chainID string) common.Hash {
		return types.CreateSurveyDigest(chainID, p.Token, p.Expiry,
			p.Creator, p.SurveyID, p.ParticipantsLimit, p.RewardAmount, p.ContentHash, p.GasStationAmount)
	})
}

// CancelSurveyDigest computes the digest for a cancel-survey proof, null if
// the token is spent.
func (k Keeper) CancelSurveyDigest(ctx sdk.Context, p types.CancelSurveyPayload) common.Hash {
	return k.digestOrNull(ctx, p.Token, func(chainID string) common.Hash {
		return types.CancelSurveyDigest(chainID, p.Token, p.Expiry, p.SurveyID)
	})
}

// PayRewardsDigest computes the digest for a batch payout proof, null if the
// token is spent. The digest commits to the batch shape only.
func (k Keeper) PayRewardsDigest(ctx sdk.Context, p types.PayRewardsPayload) common.Hash {
	return k.digestOrNull(ctx, p.Token, func(chainID string) common.Hash {
		return types.PayRewardsDigest(chainID, p.Token, p.Expiry,
			uint64(len(p.SurveyIDs)), uint64(len(p.Participants)))
	})
}

// ValidateProof validates a proof in two phases.
//
// Phase 1 rejects proofs that consume nothing: a null digest and an already
// spent token. Surviving proofs have their token marked consumed
// immediately, before any further check runs.
//
// Phase 2 checks expiry and recovers the signer. Failures here leave the
// token consumed: a structurally valid proof that was presented is burned
// forever, even if it turns out to be expired or signed by nobody useful.
// Callers must not roll the consumption back on their own follow-up
// failures either.
func (k Keeper) ValidateProof(ctx sdk.Context, digest common.Hash, token []byte, expiry uint64, signature []byte) (sdk.AccAddress, error) {
	if digest == types.ZeroDigest {
		return nil, types.ErrInvalidProof
	}
	if k.IsTokenUsed(ctx, token) {
		return nil, types.ErrTokenReused
	}

	k.MarkTokenUsed(ctx, token)

	if blockTime := ctx.BlockTime().Unix(); blockTime > 0 && uint64(blockTime) > expiry {
		return nil, errorsmod.Wrapf(types.ErrProofExpired,
			"expired at %d, block time %d", expiry, blockTime)
	}

	signer, err := types.RecoverSigner(digest, signature)
	if err != nil {
		return nil, err
	}
	return signer, nil
}

// RequireManager fails unless the recovered signer is an authorized manager.
// Runs after ValidateProof: the token stays consumed even when the signer
// turns out not to be a manager.
func (k Keeper) RequireManager(ctx sdk.Context, signer sdk.AccAddress) error {
	if !k.IsManager(ctx, signer.String()) {
		return errorsmod.Wrapf(types.ErrUnauthorizedSigner, "%s", signer.String())
	}
	return nil
}
