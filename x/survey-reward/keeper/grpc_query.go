package keeper

import (
	"context"

	errorsmod "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"

	"github.com/qstn-network/qstn-chain/x/survey-reward/types"
)

// Ensure QueryServer implements the query service interface
var _ types.QueryServer = QueryServer{}

// QueryServer wraps the Keeper to implement the query service
type QueryServer struct {
	Keeper
}

// NewQueryServer creates a new QueryServer instance
func NewQueryServer(keeper Keeper) types.QueryServer {
	return QueryServer{Keeper: keeper}
}

// Survey returns one survey by id, nil if absent
func (q QueryServer) Survey(goCtx context.Context, req *types.QuerySurveyRequest) (*types.QuerySurveyResponse, error) {
	if req == nil {
		return nil, errorsmod.Wrap(sdkerrors.ErrInvalidRequest, "invalid request")
	}
	if err := types.ValidateSurveyID(req.SurveyID); err != nil {
		return nil, err
	}
	ctx := sdk.UnwrapSDKContext(goCtx)

	survey, found := q.Keeper.GetSurvey(ctx, req.SurveyID)
	if !found {
		return &types.QuerySurveyResponse{}, nil
	}
	return &types.QuerySurveyResponse{Survey: &survey}, nil
}

// Surveys returns all surveys with pagination support
func (q QueryServer) Surveys(goCtx context.Context, req *types.QuerySurveysRequest) (*types.QuerySurveysResponse, error) {
	if req == nil {
		return nil, errorsmod.Wrap(sdkerrors.ErrInvalidRequest, "invalid request")
	}
	ctx := sdk.UnwrapSDKContext(goCtx)

	surveys, pageRes, err := q.Keeper.GetSurveysPaginated(ctx, req.Pagination)
	if err != nil {
		return nil, err
	}
	return &types.QuerySurveysResponse{Surveys: surveys, Pagination: pageRes}, nil
}

// RewardMembership reports whether a participant was paid for a survey
func (q QueryServer) RewardMembership(goCtx context.Context, req *types.QueryRewardMembershipRequest) (*types.QueryRewardMembershipResponse, error) {
	if req == nil {
		return nil, errorsmod.Wrap(sdkerrors.ErrInvalidRequest, "invalid request")
	}
	if err := types.ValidateSurveyID(req.SurveyID); err != nil {
		return nil, err
	}
	if _, err := sdk.AccAddressFromBech32(req.Participant); err != nil {
		return nil, errorsmod.Wrapf(sdkerrors.ErrInvalidAddress, "invalid participant address: %s", req.Participant)
	}
	ctx := sdk.UnwrapSDKContext(goCtx)

	return &types.QueryRewardMembershipResponse{
		Rewarded: q.Keeper.HasRewardMembership(ctx, req.SurveyID, req.Participant),
	}, nil
}

// Route returns the route for a destination chain, nil if absent
func (q QueryServer) Route(goCtx context.Context, req *types.QueryRouteRequest) (*types.QueryRouteResponse, error) {
	if req == nil {
		return nil, errorsmod.Wrap(sdkerrors.ErrInvalidRequest, "invalid request")
	}
	if req.ChainName == "" {
		return nil, errorsmod.Wrap(sdkerrors.ErrInvalidRequest, "chain name cannot be empty")
	}
	ctx := sdk.UnwrapSDKContext(goCtx)

	route, found := q.Keeper.GetRoute(ctx, req.ChainName)
	if !found {
		return &types.QueryRouteResponse{}, nil
	}
	return &types.QueryRouteResponse{Route: &route}, nil
}

// Managers returns all manager addresses
func (q QueryServer) Managers(goCtx context.Context, req *types.QueryManagersRequest) (*types.QueryManagersResponse, error) {
	if req == nil {
		return nil, errorsmod.Wrap(sdkerrors.ErrInvalidRequest, "invalid request")
	}
	ctx := sdk.UnwrapSDKContext(goCtx)

	return &types.QueryManagersResponse{Managers: q.Keeper.GetAllManagers(ctx)}, nil
}

// Params returns the module parameters
func (q QueryServer) Params(goCtx context.Context, req *types.QueryParamsRequest) (*types.QueryParamsResponse, error) {
	if req == nil {
		return nil, errorsmod.Wrap(sdkerrors.ErrInvalidRequest, "invalid request")
	}
	ctx := sdk.UnwrapSDKContext(goCtx)

	return &types.QueryParamsResponse{Params: q.Keeper.GetParams(ctx)}, nil
}

// DisbursementAddress returns the gas station disbursement account
func (q QueryServer) DisbursementAddress(goCtx context.Context, req *types.QueryDisbursementAddressRequest) (*types.QueryDisbursementAddressResponse, error) {
	if req == nil {
		return nil, errorsmod.Wrap(sdkerrors.ErrInvalidRequest, "invalid request")
	}
	ctx := sdk.UnwrapSDKContext(goCtx)

	return &types.QueryDisbursementAddressResponse{
		Address: q.Keeper.GetDisbursementAddress(ctx).String(),
	}, nil
}
