package survey

import (
	errorsmod "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/qstn-network/qstn-chain/x/survey-reward/types"
)

// EnvelopeGatewayDecorator screens MsgSubmitEnvelope before it reaches the
// message server. It rejects envelopes from anyone but the registered
// gateway, envelopes that fail stateless payload decoding, and, in CheckTx
// only, envelopes whose proof token is already consumed. The CheckTx reuse
// filter keeps doomed envelopes out of blocks; the guard remains the
// authority on reuse during DeliverTx.
type EnvelopeGatewayDecorator struct {
	keeper types.SurveyKeeperInterface
}

// NewEnvelopeGatewayDecorator creates a new EnvelopeGatewayDecorator
func NewEnvelopeGatewayDecorator(k types.SurveyKeeperInterface) EnvelopeGatewayDecorator {
	return EnvelopeGatewayDecorator{keeper: k}
}

// AnteHandle implements the ante handler interface
func (d EnvelopeGatewayDecorator) AnteHandle(
	ctx sdk.Context,
	tx sdk.Tx,
	simulate bool,
	next sdk.AnteHandler,
) (sdk.Context, error) {
	for _, msg := range tx.GetMsgs() {
		envelope, ok := msg.(*types.MsgSubmitEnvelope)
		if !ok {
			continue
		}
		if err := d.checkEnvelope(ctx, envelope); err != nil {
			return ctx, err
		}
	}
	return next(ctx, tx, simulate)
}

func (d EnvelopeGatewayDecorator) checkEnvelope(ctx sdk.Context, msg *types.MsgSubmitEnvelope) error {
	params := d.keeper.GetParams(ctx)
	if params.GatewayContract == "" {
		return errorsmod.Wrap(types.ErrUnauthorized, "no gateway registered, envelopes not accepted")
	}
	if msg.Relayer != params.GatewayContract {
		return errorsmod.Wrapf(types.ErrUnauthorized,
			"envelopes must be submitted by the registered gateway, got %s", msg.Relayer)
	}

	kind, payload, err := types.DecodeEnvelopePayload(msg.Payload)
	if err != nil {
		return err
	}

	// only create instructions may carry value, and only as native funds
	if msg.Token != nil && msg.Token.Amount.IsPositive() {
		return errorsmod.Wrapf(types.ErrNoTokens, "unexpected token attachment %s", msg.Token.String())
	}
	if kind != types.MsgIDCreateSurvey && !msg.Funds.IsZero() {
		return errorsmod.Wrapf(types.ErrNoTokens, "unexpected funds %s", msg.Funds.String())
	}

	if !ctx.IsCheckTx() || ctx.IsReCheckTx() {
		return nil
	}

	var token []byte
	switch p := payload.(type) {
	case *types.CreateSurveyPayload:
		token = p.Token
	case *types.CancelSurveyPayload:
		token = p.Token
	case *types.PayRewardsPayload:
		token = p.Token
	}
	if d.keeper.IsTokenUsed(ctx, token) {
		return errorsmod.Wrap(types.ErrTokenReused, "proof token already consumed")
	}
	return nil
}
