package types

import "fmt"

// proto.Message implementations for response and query types. These types
// travel through the SDK's service router and client printer, both of which
// require the gogoproto message interface.

func (m *MsgSubmitEnvelopeResponse) Reset()        { *m = MsgSubmitEnvelopeResponse{} }
func (m *MsgSubmitEnvelopeResponse) ProtoMessage() {}
func (m *MsgSubmitEnvelopeResponse) String() string {
	return fmt.Sprintf("MsgSubmitEnvelopeResponse{%s %t}", MessageKindName(m.MessageKind), m.Completed)
}

func (m *MsgSetManagerResponse) Reset()         { *m = MsgSetManagerResponse{} }
func (m *MsgSetManagerResponse) ProtoMessage()  {}
func (m *MsgSetManagerResponse) String() string { return "MsgSetManagerResponse{}" }

func (m *MsgSetDisbursementAddressResponse) Reset()        { *m = MsgSetDisbursementAddressResponse{} }
func (m *MsgSetDisbursementAddressResponse) ProtoMessage() {}
func (m *MsgSetDisbursementAddressResponse) String() string {
	return "MsgSetDisbursementAddressResponse{}"
}

func (m *MsgRegisterRouteResponse) Reset()        { *m = MsgRegisterRouteResponse{} }
func (m *MsgRegisterRouteResponse) ProtoMessage() {}
func (m *MsgRegisterRouteResponse) String() string {
	return fmt.Sprintf("MsgRegisterRouteResponse{%s}", m.LocalDenom)
}

func (m *MsgUpdateParamsResponse) Reset()         { *m = MsgUpdateParamsResponse{} }
func (m *MsgUpdateParamsResponse) ProtoMessage()  {}
func (m *MsgUpdateParamsResponse) String() string { return "MsgUpdateParamsResponse{}" }

func (m *QuerySurveyRequest) Reset()        { *m = QuerySurveyRequest{} }
func (m *QuerySurveyRequest) ProtoMessage() {}
func (m *QuerySurveyRequest) String() string {
	return fmt.Sprintf("QuerySurveyRequest{%s}", m.SurveyID)
}

func (m *QuerySurveyResponse) Reset()         { *m = QuerySurveyResponse{} }
func (m *QuerySurveyResponse) ProtoMessage()  {}
func (m *QuerySurveyResponse) String() string { return "QuerySurveyResponse" }

func (m *QuerySurveysRequest) Reset()         { *m = QuerySurveysRequest{} }
func (m *QuerySurveysRequest) ProtoMessage()  {}
func (m *QuerySurveysRequest) String() string { return "QuerySurveysRequest" }

func (m *QuerySurveysResponse) Reset()         { *m = QuerySurveysResponse{} }
func (m *QuerySurveysResponse) ProtoMessage()  {}
func (m *QuerySurveysResponse) String() string { return "QuerySurveysResponse" }

func (m *QueryRewardMembershipRequest) Reset()        { *m = QueryRewardMembershipRequest{} }
func (m *QueryRewardMembershipRequest) ProtoMessage() {}
func (m *QueryRewardMembershipRequest) String() string {
	return fmt.Sprintf("QueryRewardMembershipRequest{%s %s}", m.SurveyID, m.Participant)
}

func (m *QueryRewardMembershipResponse) Reset()        { *m = QueryRewardMembershipResponse{} }
func (m *QueryRewardMembershipResponse) ProtoMessage() {}
func (m *QueryRewardMembershipResponse) String() string {
	return fmt.Sprintf("QueryRewardMembershipResponse{%t}", m.Rewarded)
}

func (m *QueryRouteRequest) Reset()         { *m = QueryRouteRequest{} }
func (m *QueryRouteRequest) ProtoMessage()  {}
func (m *QueryRouteRequest) String() string { return fmt.Sprintf("QueryRouteRequest{%s}", m.ChainName) }

func (m *QueryRouteResponse) Reset()         { *m = QueryRouteResponse{} }
func (m *QueryRouteResponse) ProtoMessage()  {}
func (m *QueryRouteResponse) String() string { return "QueryRouteResponse" }

func (m *QueryManagersRequest) Reset()         { *m = QueryManagersRequest{} }
func (m *QueryManagersRequest) ProtoMessage()  {}
func (m *QueryManagersRequest) String() string { return "QueryManagersRequest" }

func (m *QueryManagersResponse) Reset()         { *m = QueryManagersResponse{} }
func (m *QueryManagersResponse) ProtoMessage()  {}
func (m *QueryManagersResponse) String() string { return "QueryManagersResponse" }

func (m *QueryParamsRequest) Reset()         { *m = QueryParamsRequest{} }
func (m *QueryParamsRequest) ProtoMessage()  {}
func (m *QueryParamsRequest) String() string { return "QueryParamsRequest" }

func (m *QueryParamsResponse) Reset()         { *m = QueryParamsResponse{} }
func (m *QueryParamsResponse) ProtoMessage()  {}
func (m *QueryParamsResponse) String() string { return "QueryParamsResponse" }

func (m *QueryDisbursementAddressRequest) Reset()        { *m = QueryDisbursementAddressRequest{} }
func (m *QueryDisbursementAddressRequest) ProtoMessage() {}
func (m *QueryDisbursementAddressRequest) String() string {
	return "QueryDisbursementAddressRequest"
}

func (m *QueryDisbursementAddressResponse) Reset()        { *m = QueryDisbursementAddressResponse{} }
func (m *QueryDisbursementAddressResponse) ProtoMessage() {}
func (m *QueryDisbursementAddressResponse) String() string {
	return fmt.Sprintf("QueryDisbursementAddressResponse{%s}", m.Address)
}
