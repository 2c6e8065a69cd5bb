package keeper_test

import (
	"testing"

	sdkmath "cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	"github.com/qstn-network/qstn-chain/x/survey-reward/keeper"
	"github.com/qstn-network/qstn-chain/x/survey-reward/testutil"
	"github.com/qstn-network/qstn-chain/x/survey-reward/types"
)

func TestSubmitEnvelopeGatewayOnly(t *testing.T) {
	s := testutil.SetupSuite(t)
	srv := keeper.NewMsgServerImpl(s.Keeper)
	signer := testutil.NewSigner(t)
	s.Keeper.SetManager(s.Ctx, signer.Address.String(), true)

	p := testutil.NewCreatePayload(t, signer, testutil.Token(0x01),
		s.Creator.String(), "survey-1", 10, sdkmath.NewInt(500), sdkmath.ZeroInt())
	msg := testutil.NewEnvelopeMsg(t, s.Gateway, p, createFunds(10, 500, 0))

	// only the registered gateway account may relay
	msg.Relayer = s.User.String()
	_, err := srv.SubmitEnvelope(sdk.WrapSDKContext(s.Ctx), msg)
	require.ErrorIs(t, err, types.ErrUnauthorized)

	msg.Relayer = s.Gateway.String()
	resp, err := srv.SubmitEnvelope(sdk.WrapSDKContext(s.Ctx), msg)
	require.NoError(t, err)
	require.True(t, resp.Completed)
	require.Equal(t, types.MsgIDCreateSurvey, resp.MessageKind)
}

func TestSubmitEnvelopeNoGatewayConfigured(t *testing.T) {
	k, ctx, _, _ := testutil.SetupKeeper(t)
	srv := keeper.NewMsgServerImpl(k)
	signer := testutil.NewSigner(t)

	p := testutil.NewCancelPayload(t, signer, testutil.Token(0x01), "survey-1")
	msg := testutil.NewEnvelopeMsg(t, sdk.AccAddress("gateway_____________"), p, nil)

	_, err := srv.SubmitEnvelope(sdk.WrapSDKContext(ctx), msg)
	require.ErrorIs(t, err, types.ErrUnauthorized)
}

func TestSetManagerAuthority(t *testing.T) {
	s := testutil.SetupSuite(t)
	srv := keeper.NewMsgServerImpl(s.Keeper)

	_, err := srv.SetManager(sdk.WrapSDKContext(s.Ctx),
		types.NewMsgSetManager(s.User.String(), s.User.String(), true))
	require.ErrorIs(t, err, types.ErrUnauthorized)
	require.False(t, s.Keeper.IsManager(s.Ctx, s.User.String()))

	_, err = srv.SetManager(sdk.WrapSDKContext(s.Ctx),
		types.NewMsgSetManager(testutil.Authority.String(), s.User.String(), true))
	require.NoError(t, err)
	require.True(t, s.Keeper.IsManager(s.Ctx, s.User.String()))

	_, err = srv.SetManager(sdk.WrapSDKContext(s.Ctx),
		types.NewMsgSetManager(testutil.Authority.String(), s.User.String(), false))
	require.NoError(t, err)
	require.False(t, s.Keeper.IsManager(s.Ctx, s.User.String()))
}

func TestSetDisbursementAddress(t *testing.T) {
	s := testutil.SetupSuite(t)
	srv := keeper.NewMsgServerImpl(s.Keeper)

	_, err := srv.SetDisbursementAddress(sdk.WrapSDKContext(s.Ctx),
		types.NewMsgSetDisbursementAddress(s.User.String(), s.User.String()))
	require.ErrorIs(t, err, types.ErrUnauthorized)

	_, err = srv.SetDisbursementAddress(sdk.WrapSDKContext(s.Ctx),
		types.NewMsgSetDisbursementAddress(testutil.Authority.String(), s.User.String()))
	require.NoError(t, err)
	require.Equal(t, s.User, s.Keeper.GetDisbursementAddress(s.Ctx))
}

func TestSetDisbursementAddressRejectsBlocked(t *testing.T) {
	s := testutil.SetupSuite(t)
	srv := keeper.NewMsgServerImpl(s.Keeper)

	s.BankKeeper.SetBlocked(s.User, true)
	_, err := srv.SetDisbursementAddress(sdk.WrapSDKContext(s.Ctx),
		types.NewMsgSetDisbursementAddress(testutil.Authority.String(), s.User.String()))
	require.ErrorIs(t, err, types.ErrUnauthorized)
}

func TestRegisterRouteWriteOnce(t *testing.T) {
	s := testutil.SetupSuite(t)
	srv := keeper.NewMsgServerImpl(s.Keeper)

	msg := types.NewMsgRegisterRoute(testutil.Authority.String(), "ethereum", "1", "channel-0", "usdc")

	resp, err := srv.RegisterRoute(sdk.WrapSDKContext(s.Ctx), msg)
	require.NoError(t, err)
	require.Equal(t, types.NewRemoteRoute("ethereum", "1", "channel-0", "usdc").LocalDenom, resp.LocalDenom)

	route, found := s.Keeper.GetRoute(s.Ctx, "ethereum")
	require.True(t, found)
	require.Equal(t, "channel-0", route.ChannelID)

	// re-registering the same chain fails instead of rewriting
	_, err = srv.RegisterRoute(sdk.WrapSDKContext(s.Ctx),
		types.NewMsgRegisterRoute(testutil.Authority.String(), "ethereum", "1", "channel-7", "usdc"))
	require.ErrorIs(t, err, types.ErrRouteExists)

	_, err = srv.RegisterRoute(sdk.WrapSDKContext(s.Ctx),
		types.NewMsgRegisterRoute(s.User.String(), "polygon", "137", "channel-1", "usdc"))
	require.ErrorIs(t, err, types.ErrUnauthorized)
}

func TestUpdateParamsChecksGatewayContract(t *testing.T) {
	s := testutil.SetupSuite(t)
	srv := keeper.NewMsgServerImpl(s.Keeper)

	params := types.Params{
		TrustedChainID:  "agoric-3",
		TrustedSender:   "agoric1newsender",
		GatewayContract: s.User.String(),
	}

	// the gateway must be an instantiated contract
	_, err := srv.UpdateParams(sdk.WrapSDKContext(s.Ctx),
		types.NewMsgUpdateParams(testutil.Authority.String(), params))
	require.ErrorIs(t, err, types.ErrInvalidParams)

	s.WasmKeeper.SetContractInfo(s.User, testutil.Authority.String())
	_, err = srv.UpdateParams(sdk.WrapSDKContext(s.Ctx),
		types.NewMsgUpdateParams(testutil.Authority.String(), params))
	require.NoError(t, err)
	require.Equal(t, params, s.Keeper.GetParams(s.Ctx))
}

func TestUpdateParamsAuthorityAndValidation(t *testing.T) {
	s := testutil.SetupSuite(t)
	srv := keeper.NewMsgServerImpl(s.Keeper)

	_, err := srv.UpdateParams(sdk.WrapSDKContext(s.Ctx),
		types.NewMsgUpdateParams(s.User.String(), types.Params{}))
	require.ErrorIs(t, err, types.ErrUnauthorized)

	// sender without chain id fails params validation
	_, err = srv.UpdateParams(sdk.WrapSDKContext(s.Ctx),
		types.NewMsgUpdateParams(testutil.Authority.String(), types.Params{TrustedSender: "agoric1sender"}))
	require.ErrorIs(t, err, types.ErrInvalidParams)
}
