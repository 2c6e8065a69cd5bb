package keeper

import (
	errorsmod "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/qstn-network/qstn-chain/x/survey-reward/types"
)

// HandleEnvelope settles one inbound cross-chain envelope.
//
// Failure handling is split at the proof-validation boundary:
//
//   - Failures before validation (origin, decode, attachment and array-shape
//     checks, cancel business-state checks) return an error. The enclosing
//     tx fails and nothing, in particular no proof token, is written.
//   - Failures after validation has started (expiry, signer recovery,
//     manager membership, business transitions) return a rejected
//     EnvelopeResult with a nil error. The tx succeeds so the token
//     consumption persists; business writes are discarded with the branch
//     they ran in.
//
// Business mutations run on a cached store branch committed only when the
// whole envelope settles, which gives pay-rewards batches their
// all-or-nothing semantics.
func (k Keeper) HandleEnvelope(ctx sdk.Context, msg *types.MsgSubmitEnvelope) (types.EnvelopeResult, error) {
	params := k.GetParams(ctx)
	if params.TrustedChainID == "" {
		return types.EnvelopeResult{}, errorsmod.Wrap(types.ErrWrongSource, "no trusted origin configured")
	}
	if msg.SourceChainID != params.TrustedChainID {
		return types.EnvelopeResult{}, errorsmod.Wrapf(types.ErrWrongSource, "%s", msg.SourceChainID)
	}
	if msg.SourceAddress != params.TrustedSender {
		return types.EnvelopeResult{}, errorsmod.Wrapf(types.ErrWrongSender, "%s", msg.SourceAddress)
	}

	kind, payload, err := types.DecodeEnvelopePayload(msg.Payload)
	if err != nil {
		return types.EnvelopeResult{}, err
	}

	switch p := payload.(type) {
	case *types.CreateSurveyPayload:
		return k.handleCreateSurvey(ctx, msg, p)
	case *types.CancelSurveyPayload:
		return k.handleCancelSurvey(ctx, msg, p)
	case *types.PayRewardsPayload:
		return k.handlePayRewards(ctx, msg, p)
	default:
		return types.EnvelopeResult{}, errorsmod.Wrapf(types.ErrWrongMsgID, "msg_id %d", kind)
	}
}

func (k Keeper) handleCreateSurvey(ctx sdk.Context, msg *types.MsgSubmitEnvelope, p *types.CreateSurveyPayload) (types.EnvelopeResult, error) {
	// creation messages carry their funding as native value; a bridged
	// token attachment is never expected
	if msg.Token != nil && msg.Token.Amount.IsPositive() {
		return types.EnvelopeResult{}, errorsmod.Wrapf(types.ErrNoTokens,
			"create envelope carries token attachment %s", msg.Token.String())
	}
	if len(msg.Funds) > 1 {
		return types.EnvelopeResult{}, errorsmod.Wrapf(types.ErrInvalidEnvelope,
			"create envelope carries %d fund denominations", len(msg.Funds))
	}
	amountReceived := sdk.NewCoin(types.BaseDenom, sdk.ZeroInt())
	if len(msg.Funds) == 1 {
		amountReceived = msg.Funds[0]
	}

	digest := k.CreateSurveyDigest(ctx, *p)
	signer, err := k.ValidateProof(ctx, digest, p.Token, p.Expiry, p.Signature)
	if err != nil {
		return k.proofOutcome(ctx, types.MsgIDCreateSurvey, err)
	}
	if err := k.RequireManager(ctx, signer); err != nil {
		return k.rejectEnvelope(ctx, types.MsgIDCreateSurvey, err), nil
	}

	cacheCtx, writeCache := k.branch(ctx)
	relayer := sdk.MustAccAddressFromBech32(msg.Relayer)
	if !msg.Funds.IsZero() {
		if err := k.bankKeeper.SendCoinsFromAccountToModule(cacheCtx, relayer, types.ModuleName, msg.Funds); err != nil {
			return k.rejectEnvelope(ctx, types.MsgIDCreateSurvey,
				errorsmod.Wrapf(types.ErrTransferFailed, "escrow: %v", err)), nil
		}
	}
	if err := k.CreateSurvey(cacheCtx, *p, amountReceived); err != nil {
		return k.rejectEnvelope(ctx, types.MsgIDCreateSurvey, err), nil
	}
	writeCache()

	return k.completeEnvelope(ctx, types.MsgIDCreateSurvey, msg.SourceChainID), nil
}

func (k Keeper) handleCancelSurvey(ctx sdk.Context, msg *types.MsgSubmitEnvelope, p *types.CancelSurveyPayload) (types.EnvelopeResult, error) {
	if err := k.requireNoAttachments(msg); err != nil {
		return types.EnvelopeResult{}, err
	}

	// business-state checks run before proof validation: a cancel that is
	// doomed on ledger grounds must not burn its token
	if _, err := k.CheckCancelable(ctx, p.SurveyID); err != nil {
		return types.EnvelopeResult{}, err
	}

	digest := k.CancelSurveyDigest(ctx, *p)
	signer, err := k.ValidateProof(ctx, digest, p.Token, p.Expiry, p.Signature)
	if err != nil {
		return k.proofOutcome(ctx, types.MsgIDCancelSurvey, err)
	}

	cacheCtx, writeCache := k.branch(ctx)
	if err := k.CancelSurvey(cacheCtx, p.SurveyID, signer); err != nil {
		return k.rejectEnvelope(ctx, types.MsgIDCancelSurvey, err), nil
	}
	writeCache()

	return k.completeEnvelope(ctx, types.MsgIDCancelSurvey, msg.SourceChainID), nil
}

func (k Keeper) handlePayRewards(ctx sdk.Context, msg *types.MsgSubmitEnvelope, p *types.PayRewardsPayload) (types.EnvelopeResult, error) {
	if err := k.requireNoAttachments(msg); err != nil {
		return types.EnvelopeResult{}, err
	}

	// one batch-level proof, validated once
	digest := k.PayRewardsDigest(ctx, *p)
	signer, err := k.ValidateProof(ctx, digest, p.Token, p.Expiry, p.Signature)
	if err != nil {
		return k.proofOutcome(ctx, types.MsgIDPayRewards, err)
	}
	if err := k.RequireManager(ctx, signer); err != nil {
		return k.rejectEnvelope(ctx, types.MsgIDPayRewards, err), nil
	}

	// a failure on any item aborts the whole batch; the branch is only
	// written when every item settled
	cacheCtx, writeCache := k.branch(ctx)
	for i := range p.SurveyIDs {
		if _, err := k.PayReward(cacheCtx, p.SurveyIDs[i], p.Participants[i]); err != nil {
			return k.rejectEnvelope(ctx, types.MsgIDPayRewards,
				errorsmod.Wrapf(err, "batch item %d", i)), nil
		}
	}
	writeCache()

	return k.completeEnvelope(ctx, types.MsgIDPayRewards, msg.SourceChainID), nil
}

// requireNoAttachments rejects cancel and pay envelopes carrying value.
func (k Keeper) requireNoAttachments(msg *types.MsgSubmitEnvelope) error {
	if msg.Token != nil && msg.Token.Amount.IsPositive() {
		return errorsmod.Wrapf(types.ErrNoTokens, "unexpected token attachment %s", msg.Token.String())
	}
	if !msg.Funds.IsZero() {
		return errorsmod.Wrapf(types.ErrNoTokens, "unexpected funds %s", msg.Funds.String())
	}
	return nil
}

// branch returns a context whose store and events are committed only when
// the returned write func runs.
func (k Keeper) branch(ctx sdk.Context) (sdk.Context, func()) {
	cacheMS := ctx.MultiStore().CacheMultiStore()
	em := sdk.NewEventManager()
	cacheCtx := ctx.WithMultiStore(cacheMS).WithEventManager(em)
	write := func() {
		cacheMS.Write()
		ctx.EventManager().EmitEvents(em.Events())
	}
	return cacheCtx, write
}

// proofOutcome maps a ValidateProof failure to the envelope outcome. Null
// digest and token reuse failed before anything was consumed, so they fail
// the tx outright. Every later proof failure leaves the token spent and must
// settle the tx to persist it.
func (k Keeper) proofOutcome(ctx sdk.Context, kind uint32, err error) (types.EnvelopeResult, error) {
	if errorsmod.IsOf(err, types.ErrInvalidProof, types.ErrTokenReused) {
		return types.EnvelopeResult{}, err
	}
	return k.rejectEnvelope(ctx, kind, err), nil
}

// rejectEnvelope records a post-validation failure. The proof token stays
// consumed; only the rejection event is emitted.
func (k Keeper) rejectEnvelope(ctx sdk.Context, kind uint32, err error) types.EnvelopeResult {
	k.Logger(ctx).Info("envelope rejected",
		"message_kind", types.MessageKindName(kind), "reason", err.Error())
	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeEnvelopeRejected,
			sdk.NewAttribute(types.AttributeKeyMessageKind, types.MessageKindName(kind)),
			sdk.NewAttribute(types.AttributeKeyReason, err.Error()),
		),
	)
	return types.EnvelopeResult{
		MessageKind:  kind,
		RejectReason: err.Error(),
	}
}

// completeEnvelope emits the single completion event the relayer watches.
func (k Keeper) completeEnvelope(ctx sdk.Context, kind uint32, sourceChain string) types.EnvelopeResult {
	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeEnvelopeCompleted,
			sdk.NewAttribute(types.AttributeKeyMessageKind, types.MessageKindName(kind)),
			sdk.NewAttribute(types.AttributeKeySourceChain, sourceChain),
		),
	)
	return types.EnvelopeResult{
		MessageKind: kind,
		Completed:   true,
	}
}
