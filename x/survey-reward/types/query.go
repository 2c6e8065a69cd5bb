package types

import (
	"context"

	"github.com/cosmos/cosmos-sdk/types/query"
)

// QueryServer defines the survey module's query service.
type QueryServer interface {
	Survey(context.Context, *QuerySurveyRequest) (*QuerySurveyResponse, error)
	Surveys(context.Context, *QuerySurveysRequest) (*QuerySurveysResponse, error)
	RewardMembership(context.Context, *QueryRewardMembershipRequest) (*QueryRewardMembershipResponse, error)
	Route(context.Context, *QueryRouteRequest) (*QueryRouteResponse, error)
	Managers(context.Context, *QueryManagersRequest) (*QueryManagersResponse, error)
	Params(context.Context, *QueryParamsRequest) (*QueryParamsResponse, error)
	DisbursementAddress(context.Context, *QueryDisbursementAddressRequest) (*QueryDisbursementAddressResponse, error)
}

// QuerySurveyRequest asks for one survey by id
type QuerySurveyRequest struct {
	SurveyID string `json:"survey_id"`
}

// QuerySurveyResponse returns the survey, nil if absent
type QuerySurveyResponse struct {
	Survey *SurveyRecord `json:"survey,omitempty"`
}

// QuerySurveysRequest asks for all surveys with pagination
type QuerySurveysRequest struct {
	Pagination *query.PageRequest `json:"pagination,omitempty"`
}

// QuerySurveysResponse returns a page of surveys
type QuerySurveysResponse struct {
	Surveys    []*SurveyRecord     `json:"surveys"`
	Pagination *query.PageResponse `json:"pagination,omitempty"`
}

// QueryRewardMembershipRequest asks whether a participant was paid for a survey
type QueryRewardMembershipRequest struct {
	SurveyID    string `json:"survey_id"`
	Participant string `json:"participant"`
}

// QueryRewardMembershipResponse reports the payout marker
type QueryRewardMembershipResponse struct {
	Rewarded bool `json:"rewarded"`
}

// QueryRouteRequest asks for the route of one destination chain
type QueryRouteRequest struct {
	ChainName string `json:"chain_name"`
}

// QueryRouteResponse returns the route, nil if absent
type QueryRouteResponse struct {
	Route *RemoteRoute `json:"route,omitempty"`
}

// QueryManagersRequest asks for all manager addresses
type QueryManagersRequest struct{}

// QueryManagersResponse returns all manager addresses
type QueryManagersResponse struct {
	Managers []string `json:"managers"`
}

// QueryParamsRequest asks for the module parameters
type QueryParamsRequest struct{}

// QueryParamsResponse returns the module parameters
type QueryParamsResponse struct {
	Params Params `json:"params"`
}

// QueryDisbursementAddressRequest asks for the gas station disbursement address
type QueryDisbursementAddressRequest struct{}

// QueryDisbursementAddressResponse returns the gas station disbursement address
type QueryDisbursementAddressResponse struct {
	Address string `json:"address"`
}
