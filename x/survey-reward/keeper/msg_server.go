package keeper

import (
	"context"
	"fmt"

	errorsmod "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/qstn-network/qstn-chain/x/survey-reward/types"
)

// msgServer implements the MsgServer interface
type msgServer struct {
	Keeper
}

// NewMsgServerImpl returns an implementation of the MsgServer interface
func NewMsgServerImpl(keeper Keeper) types.MsgServer {
	return &msgServer{Keeper: keeper}
}

var _ types.MsgServer = msgServer{}

// SubmitEnvelope handles MsgSubmitEnvelope
func (k msgServer) SubmitEnvelope(goCtx context.Context, msg *types.MsgSubmitEnvelope) (*types.MsgSubmitEnvelopeResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)

	params := k.GetParams(ctx)
	if params.GatewayContract == "" || msg.Relayer != params.GatewayContract {
		return nil, errorsmod.Wrapf(types.ErrUnauthorized,
			"envelopes must be submitted by the registered gateway, got %s", msg.Relayer)
	}

	result, err := k.HandleEnvelope(ctx, msg)
	if err != nil {
		return nil, err
	}

	return &types.MsgSubmitEnvelopeResponse{
		MessageKind:  result.MessageKind,
		Completed:    result.Completed,
		RejectReason: result.RejectReason,
	}, nil
}

// SetManager handles MsgSetManager
func (k msgServer) SetManager(goCtx context.Context, msg *types.MsgSetManager) (*types.MsgSetManagerResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)

	if err := k.requireAuthority(msg.Authority); err != nil {
		return nil, err
	}

	k.Keeper.SetManager(ctx, msg.Manager, msg.Enabled)

	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeManagerUpdated,
			sdk.NewAttribute(types.AttributeKeyAuthority, msg.Authority),
			sdk.NewAttribute(types.AttributeKeyManager, msg.Manager),
			sdk.NewAttribute(types.AttributeKeyEnabled, fmt.Sprintf("%t", msg.Enabled)),
		),
	)
	return &types.MsgSetManagerResponse{}, nil
}

// SetDisbursementAddress handles MsgSetDisbursementAddress
func (k msgServer) SetDisbursementAddress(goCtx context.Context, msg *types.MsgSetDisbursementAddress) (*types.MsgSetDisbursementAddressResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)

	if err := k.requireAuthority(msg.Authority); err != nil {
		return nil, err
	}

	addr := sdk.MustAccAddressFromBech32(msg.Address)
	if k.bankKeeper.BlockedAddr(addr) {
		return nil, errorsmod.Wrapf(types.ErrUnauthorized,
			"%s cannot receive funds", msg.Address)
	}
	k.Keeper.SetDisbursementAddress(ctx, addr)

	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeDisbursementSet,
			sdk.NewAttribute(types.AttributeKeyAuthority, msg.Authority),
			sdk.NewAttribute(types.AttributeKeyAddress, msg.Address),
		),
	)
	return &types.MsgSetDisbursementAddressResponse{}, nil
}

// RegisterRoute handles MsgRegisterRoute
func (k msgServer) RegisterRoute(goCtx context.Context, msg *types.MsgRegisterRoute) (*types.MsgRegisterRouteResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)

	if err := k.requireAuthority(msg.Authority); err != nil {
		return nil, err
	}

	route, err := k.Keeper.RegisterRoute(ctx, msg.ChainName, msg.RemoteChainID, msg.ChannelID, msg.RemoteDenom)
	if err != nil {
		return nil, err
	}
	return &types.MsgRegisterRouteResponse{LocalDenom: route.LocalDenom}, nil
}

// UpdateParams handles MsgUpdateParams
func (k msgServer) UpdateParams(goCtx context.Context, msg *types.MsgUpdateParams) (*types.MsgUpdateParamsResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)

	if err := k.requireAuthority(msg.Authority); err != nil {
		return nil, err
	}
	if err := msg.Params.Validate(); err != nil {
		return nil, err
	}

	// the gateway must be an instantiated contract before envelopes are
	// accepted from it
	if msg.Params.GatewayContract != "" && k.wasmKeeper != nil {
		gatewayAddr := sdk.MustAccAddressFromBech32(msg.Params.GatewayContract)
		if info := k.wasmKeeper.GetContractInfo(ctx, gatewayAddr); info == nil {
			return nil, errorsmod.Wrapf(types.ErrInvalidParams,
				"gateway contract not found: %s", msg.Params.GatewayContract)
		}
	}

	k.SetParams(ctx, msg.Params)

	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeParamsUpdated,
			sdk.NewAttribute(types.AttributeKeyAuthority, msg.Authority),
			sdk.NewAttribute(types.AttributeKeySourceChain, msg.Params.TrustedChainID),
		),
	)
	return &types.MsgUpdateParamsResponse{}, nil
}

func (k msgServer) requireAuthority(authority string) error {
	if authority != k.GetAuthority() {
		return errorsmod.Wrapf(types.ErrUnauthorized,
			"expected authority %s, got %s", k.GetAuthority(), authority)
	}
	return nil
}
