package keeper

import (
	abci "github.com/cometbft/cometbft/abci/types"
	"github.com/cosmos/cosmos-sdk/codec"
	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"

	"github.com/qstn-network/qstn-chain/x/survey-reward/types"
)

// Querier function type
type Querier func(ctx sdk.Context, path []string, req abci.RequestQuery) ([]byte, error)

// NewQuerier creates a new legacy querier for survey queries
func NewQuerier(k Keeper, legacyQuerierCdc *codec.LegacyAmino) Querier {
	return func(ctx sdk.Context, path []string, req abci.RequestQuery) ([]byte, error) {
		switch path[0] {
		case "survey":
			return querySurvey(ctx, path[1:], k, legacyQuerierCdc)
		case "surveys":
			return querySurveys(ctx, k, legacyQuerierCdc)
		case "is-rewarded":
			return queryIsRewarded(ctx, path[1:], k, legacyQuerierCdc)
		case "route":
			return queryRoute(ctx, path[1:], k, legacyQuerierCdc)
		case "params":
			return queryParams(ctx, k, legacyQuerierCdc)
		default:
			return nil, sdkerrors.ErrUnknownRequest.Wrapf("unknown %s query endpoint: %s", types.ModuleName, path[0])
		}
	}
}

func querySurvey(ctx sdk.Context, path []string, k Keeper, legacyQuerierCdc *codec.LegacyAmino) ([]byte, error) {
	if len(path) < 1 {
		return nil, sdkerrors.ErrInvalidRequest.Wrap("survey id is required")
	}

	survey, found := k.GetSurvey(ctx, path[0])
	if !found {
		return nil, types.ErrSurveyNotFound.Wrapf("%s", path[0])
	}

	res, err := codec.MarshalJSONIndent(legacyQuerierCdc, survey)
	if err != nil {
		return nil, sdkerrors.ErrJSONMarshal.Wrap(err.Error())
	}
	return res, nil
}

func querySurveys(ctx sdk.Context, k Keeper, legacyQuerierCdc *codec.LegacyAmino) ([]byte, error) {
	surveys := k.GetAllSurveys(ctx)

	res, err := codec.MarshalJSONIndent(legacyQuerierCdc, map[string]interface{}{
		"surveys": surveys,
	})
	if err != nil {
		return nil, sdkerrors.ErrJSONMarshal.Wrap(err.Error())
	}
	return res, nil
}

func queryIsRewarded(ctx sdk.Context, path []string, k Keeper, legacyQuerierCdc *codec.LegacyAmino) ([]byte, error) {
	if len(path) < 2 {
		return nil, sdkerrors.ErrInvalidRequest.Wrap("survey id and participant are required")
	}

	res, err := codec.MarshalJSONIndent(legacyQuerierCdc, map[string]interface{}{
		"rewarded": k.HasRewardMembership(ctx, path[0], path[1]),
	})
	if err != nil {
		return nil, sdkerrors.ErrJSONMarshal.Wrap(err.Error())
	}
	return res, nil
}

func queryRoute(ctx sdk.Context, path []string, k Keeper, legacyQuerierCdc *codec.LegacyAmino) ([]byte, error) {
	if len(path) < 1 {
		return nil, sdkerrors.ErrInvalidRequest.Wrap("chain name is required")
	}

	route, found := k.GetRoute(ctx, path[0])
	if !found {
		return nil, types.ErrRouteNotFound.Wrapf("%s", path[0])
	}

	res, err := codec.MarshalJSONIndent(legacyQuerierCdc, route)
	if err != nil {
		return nil, sdkerrors.ErrJSONMarshal.Wrap(err.Error())
	}
	return res, nil
}

func queryParams(ctx sdk.Context, k Keeper, legacyQuerierCdc *codec.LegacyAmino) ([]byte, error) {
	res, err := codec.MarshalJSONIndent(legacyQuerierCdc, k.GetParams(ctx))
	if err != nil {
		return nil, sdkerrors.ErrJSONMarshal.Wrap(err.Error())
	}
	return res, nil
}
