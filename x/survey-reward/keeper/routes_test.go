package keeper_test

import (
	"encoding/json"
	"testing"

	sdkmath "cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	"github.com/qstn-network/qstn-chain/x/survey-reward/testutil"
	"github.com/qstn-network/qstn-chain/x/survey-reward/types"
)

func TestGetAllRoutes(t *testing.T) {
	s := testutil.SetupSuite(t)

	require.Empty(t, s.Keeper.GetAllRoutes(s.Ctx))

	_, err := s.Keeper.RegisterRoute(s.Ctx, "ethereum", "1", "channel-0", "usdc")
	require.NoError(t, err)
	_, err = s.Keeper.RegisterRoute(s.Ctx, "polygon", "137", "channel-1", "usdc")
	require.NoError(t, err)

	routes := s.Keeper.GetAllRoutes(s.Ctx)
	require.Len(t, routes, 2)
	require.True(t, s.Keeper.HasRoute(s.Ctx, "ethereum"))
	require.False(t, s.Keeper.HasRoute(s.Ctx, "avalanche"))
}

func TestRegisterRouteValidates(t *testing.T) {
	s := testutil.SetupSuite(t)

	_, err := s.Keeper.RegisterRoute(s.Ctx, "ethereum", "1", "not-a-channel", "usdc")
	require.Error(t, err)
	require.False(t, s.Keeper.HasRoute(s.Ctx, "ethereum"))
}

func TestEncodeOutboundMemo(t *testing.T) {
	s := testutil.SetupSuite(t)

	_, err := s.Keeper.EncodeOutboundMemo(s.Ctx, "ethereum", "0xabc", nil, types.MsgIDPayRewards, nil)
	require.ErrorIs(t, err, types.ErrRouteNotFound)

	route, err := s.Keeper.RegisterRoute(s.Ctx, "ethereum", "1", "channel-0", "usdc")
	require.NoError(t, err)

	// fee must be denominated in the route's local voucher denom
	badFee := sdk.NewCoin(types.BaseDenom, sdkmath.NewInt(10))
	_, err = s.Keeper.EncodeOutboundMemo(s.Ctx, "ethereum", "0xabc", nil, types.MsgIDPayRewards, &badFee)
	require.ErrorIs(t, err, types.ErrRouteNotFound)

	fee := sdk.NewCoin(route.LocalDenom, sdkmath.NewInt(10))
	bz, err := s.Keeper.EncodeOutboundMemo(s.Ctx, "ethereum", "0xabc", []byte(`{"ok":true}`), types.MsgIDPayRewards, &fee)
	require.NoError(t, err)

	var memo types.OutboundMemo
	require.NoError(t, json.Unmarshal(bz, &memo))
	require.Equal(t, route.RemoteChainID, memo.DestinationChain)
	require.Equal(t, "0xabc", memo.DestinationAddress)
	require.Equal(t, types.MsgIDPayRewards, memo.MessageKind)
	require.Equal(t, fee, *memo.Fee)
}
