package keeper

import (
	"encoding/json"

	errorsmod "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/qstn-network/qstn-chain/x/survey-reward/types"
)

// SetRoute writes a remote route to the store
func (k Keeper) SetRoute(ctx sdk.Context, route types.RemoteRoute) {
	store := ctx.KVStore(k.storeKey)
	store.Set(types.GetRouteKey(route.ChainName), mustMarshal(&route))
}

// GetRoute returns the route for a destination chain
func (k Keeper) GetRoute(ctx sdk.Context, chainName string) (types.RemoteRoute, bool) {
	store := ctx.KVStore(k.storeKey)
	bz := store.Get(types.GetRouteKey(chainName))
	if bz == nil {
		return types.RemoteRoute{}, false
	}
	var route types.RemoteRoute
	mustUnmarshal(bz, &route)
	return route, true
}

// HasRoute checks whether a route is registered for a destination chain
func (k Keeper) HasRoute(ctx sdk.Context, chainName string) bool {
	store := ctx.KVStore(k.storeKey)
	return store.Has(types.GetRouteKey(chainName))
}

// GetAllRoutes returns all registered routes
func (k Keeper) GetAllRoutes(ctx sdk.Context) []types.RemoteRoute {
	store := ctx.KVStore(k.storeKey)
	iterator := sdk.KVStorePrefixIterator(store, types.RouteKeyPrefix)
	defer iterator.Close()

	var routes []types.RemoteRoute
	for ; iterator.Valid(); iterator.Next() {
		var route types.RemoteRoute
		mustUnmarshal(iterator.Value(), &route)
		routes = append(routes, route)
	}
	return routes
}

// RegisterRoute derives and records the route for one destination chain.
// Routes are write-once: registering a chain twice fails rather than
// silently rewriting metadata outbound encoding already depends on.
func (k Keeper) RegisterRoute(ctx sdk.Context, chainName, remoteChainID, channelID, remoteDenom string) (types.RemoteRoute, error) {
	if k.HasRoute(ctx, chainName) {
		return types.RemoteRoute{}, errorsmod.Wrapf(types.ErrRouteExists, "%s", chainName)
	}

	route := types.NewRemoteRoute(chainName, remoteChainID, channelID, remoteDenom)
	if err := route.Validate(); err != nil {
		return types.RemoteRoute{}, err
	}
	k.SetRoute(ctx, route)

	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeRouteRegistered,
			sdk.NewAttribute(types.AttributeKeyChainName, route.ChainName),
			sdk.NewAttribute(types.AttributeKeyChannelID, route.ChannelID),
			sdk.NewAttribute(types.AttributeKeyLocalDenom, route.LocalDenom),
		),
	)
	return route, nil
}

// EncodeOutboundMemo builds the memo for an outbound transfer instruction to
// a destination chain. The route must have been registered; a missing route
// is a fatal routing error, not an empty memo.
func (k Keeper) EncodeOutboundMemo(ctx sdk.Context, destinationChain, destinationAddress string, payload []byte, messageKind uint32, fee *sdk.Coin) ([]byte, error) {
	route, found := k.GetRoute(ctx, destinationChain)
	if !found {
		return nil, errorsmod.Wrapf(types.ErrRouteNotFound, "%s", destinationChain)
	}
	if fee != nil && fee.Denom != route.LocalDenom {
		return nil, errorsmod.Wrapf(types.ErrRouteNotFound,
			"fee denom %s does not match route denom %s", fee.Denom, route.LocalDenom)
	}

	memo := types.OutboundMemo{
		DestinationChain:   route.RemoteChainID,
		DestinationAddress: destinationAddress,
		Payload:            payload,
		MessageKind:        messageKind,
		Fee:                fee,
	}
	if err := memo.Validate(); err != nil {
		return nil, err
	}
	bz, err := json.Marshal(memo)
	if err != nil {
		return nil, errorsmod.Wrapf(types.ErrInvalidEnvelope, "memo encode: %v", err)
	}
	return bz, nil
}
