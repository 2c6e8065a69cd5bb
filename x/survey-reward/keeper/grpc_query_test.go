package keeper_test

import (
	"testing"

	sdkmath "cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/cosmos/cosmos-sdk/types/query"
	"github.com/stretchr/testify/require"

	"github.com/qstn-network/qstn-chain/x/survey-reward/keeper"
	"github.com/qstn-network/qstn-chain/x/survey-reward/testutil"
	"github.com/qstn-network/qstn-chain/x/survey-reward/types"
)

func TestQuerySurvey(t *testing.T) {
	s := testutil.SetupSuite(t)
	q := keeper.NewQueryServer(s.Keeper)
	goCtx := sdk.WrapSDKContext(s.Ctx)

	_, err := q.Survey(goCtx, nil)
	require.Error(t, err)

	_, err = q.Survey(goCtx, &types.QuerySurveyRequest{SurveyID: ""})
	require.Error(t, err)

	resp, err := q.Survey(goCtx, &types.QuerySurveyRequest{SurveyID: "survey-1"})
	require.NoError(t, err)
	require.Nil(t, resp.Survey)

	record := testutil.NewSurveyRecord("survey-1", s.Creator.String(), 10, sdkmath.NewInt(500))
	s.Keeper.SetSurvey(s.Ctx, record)

	resp, err = q.Survey(goCtx, &types.QuerySurveyRequest{SurveyID: "survey-1"})
	require.NoError(t, err)
	require.NotNil(t, resp.Survey)
	require.Equal(t, record, *resp.Survey)
}

func TestQuerySurveysPagination(t *testing.T) {
	s := testutil.SetupSuite(t)
	q := keeper.NewQueryServer(s.Keeper)
	goCtx := sdk.WrapSDKContext(s.Ctx)

	for i := byte(0); i < 4; i++ {
		id := string([]byte{'s', '-', '0' + i})
		s.Keeper.SetSurvey(s.Ctx, testutil.NewSurveyRecord(id, s.Creator.String(), 10, sdkmath.NewInt(500)))
	}

	resp, err := q.Surveys(goCtx, &types.QuerySurveysRequest{Pagination: &query.PageRequest{Limit: 3}})
	require.NoError(t, err)
	require.Len(t, resp.Surveys, 3)
	require.NotNil(t, resp.Pagination.NextKey)

	resp, err = q.Surveys(goCtx, &types.QuerySurveysRequest{
		Pagination: &query.PageRequest{Key: resp.Pagination.NextKey},
	})
	require.NoError(t, err)
	require.Len(t, resp.Surveys, 1)
}

func TestQueryRewardMembership(t *testing.T) {
	s := testutil.SetupSuite(t)
	q := keeper.NewQueryServer(s.Keeper)
	goCtx := sdk.WrapSDKContext(s.Ctx)

	_, err := q.RewardMembership(goCtx, &types.QueryRewardMembershipRequest{
		SurveyID:    "survey-1",
		Participant: "not-bech32",
	})
	require.Error(t, err)

	resp, err := q.RewardMembership(goCtx, &types.QueryRewardMembershipRequest{
		SurveyID:    "survey-1",
		Participant: s.User.String(),
	})
	require.NoError(t, err)
	require.False(t, resp.Rewarded)

	s.Keeper.SetRewardMembership(s.Ctx, "survey-1", s.User.String())

	resp, err = q.RewardMembership(goCtx, &types.QueryRewardMembershipRequest{
		SurveyID:    "survey-1",
		Participant: s.User.String(),
	})
	require.NoError(t, err)
	require.True(t, resp.Rewarded)
}

func TestQueryRoute(t *testing.T) {
	s := testutil.SetupSuite(t)
	q := keeper.NewQueryServer(s.Keeper)
	goCtx := sdk.WrapSDKContext(s.Ctx)

	_, err := q.Route(goCtx, &types.QueryRouteRequest{ChainName: ""})
	require.Error(t, err)

	resp, err := q.Route(goCtx, &types.QueryRouteRequest{ChainName: "ethereum"})
	require.NoError(t, err)
	require.Nil(t, resp.Route)

	route, err := s.Keeper.RegisterRoute(s.Ctx, "ethereum", "1", "channel-0", "usdc")
	require.NoError(t, err)

	resp, err = q.Route(goCtx, &types.QueryRouteRequest{ChainName: "ethereum"})
	require.NoError(t, err)
	require.NotNil(t, resp.Route)
	require.Equal(t, route, *resp.Route)
}

func TestQueryManagers(t *testing.T) {
	s := testutil.SetupSuite(t)
	q := keeper.NewQueryServer(s.Keeper)
	goCtx := sdk.WrapSDKContext(s.Ctx)

	resp, err := q.Managers(goCtx, &types.QueryManagersRequest{})
	require.NoError(t, err)
	require.Empty(t, resp.Managers)

	s.Keeper.SetManager(s.Ctx, s.User.String(), true)

	resp, err = q.Managers(goCtx, &types.QueryManagersRequest{})
	require.NoError(t, err)
	require.Equal(t, []string{s.User.String()}, resp.Managers)
}

func TestQueryParams(t *testing.T) {
	s := testutil.SetupSuite(t)
	q := keeper.NewQueryServer(s.Keeper)

	resp, err := q.Params(sdk.WrapSDKContext(s.Ctx), &types.QueryParamsRequest{})
	require.NoError(t, err)
	require.Equal(t, testutil.TrustedChainID, resp.Params.TrustedChainID)
	require.Equal(t, s.Gateway.String(), resp.Params.GatewayContract)
}

func TestQueryDisbursementAddress(t *testing.T) {
	s := testutil.SetupSuite(t)
	q := keeper.NewQueryServer(s.Keeper)
	goCtx := sdk.WrapSDKContext(s.Ctx)

	resp, err := q.DisbursementAddress(goCtx, &types.QueryDisbursementAddressRequest{})
	require.NoError(t, err)
	require.Equal(t, testutil.Authority.String(), resp.Address)

	s.Keeper.SetDisbursementAddress(s.Ctx, s.User)

	resp, err = q.DisbursementAddress(goCtx, &types.QueryDisbursementAddressRequest{})
	require.NoError(t, err)
	require.Equal(t, s.User.String(), resp.Address)
}
