package types

import (
	context "context"

	grpc1 "github.com/cosmos/gogoproto/grpc"
	grpc "google.golang.org/grpc"
)

// MsgClient is the client API for the Msg service
type MsgClient interface {
	SubmitEnvelope(ctx context.Context, in *MsgSubmitEnvelope, opts ...grpc.CallOption) (*MsgSubmitEnvelopeResponse, error)
	SetManager(ctx context.Context, in *MsgSetManager, opts ...grpc.CallOption) (*MsgSetManagerResponse, error)
	SetDisbursementAddress(ctx context.Context, in *MsgSetDisbursementAddress, opts ...grpc.CallOption) (*MsgSetDisbursementAddressResponse, error)
	RegisterRoute(ctx context.Context, in *MsgRegisterRoute, opts ...grpc.CallOption) (*MsgRegisterRouteResponse, error)
	UpdateParams(ctx context.Context, in *MsgUpdateParams, opts ...grpc.CallOption) (*MsgUpdateParamsResponse, error)
}

type msgClient struct {
	cc grpc1.ClientConn
}

// NewMsgClient creates a new Msg service client
func NewMsgClient(cc grpc1.ClientConn) MsgClient {
	return &msgClient{cc}
}

func (c *msgClient) SubmitEnvelope(ctx context.Context, in *MsgSubmitEnvelope, opts ...grpc.CallOption) (*MsgSubmitEnvelopeResponse, error) {
	out := new(MsgSubmitEnvelopeResponse)
	err := c.cc.Invoke(ctx, "/qstn.survey.v1.Msg/SubmitEnvelope", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *msgClient) SetManager(ctx context.Context, in *MsgSetManager, opts ...grpc.CallOption) (*MsgSetManagerResponse, error) {
	out := new(MsgSetManagerResponse)
	err := c.cc.Invoke(ctx, "/qstn.survey.v1.Msg/SetManager", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *msgClient) SetDisbursementAddress(ctx context.Context, in *MsgSetDisbursementAddress, opts ...grpc.CallOption) (*MsgSetDisbursementAddressResponse, error) {
	out := new(MsgSetDisbursementAddressResponse)
	err := c.cc.Invoke(ctx, "/qstn.survey.v1.Msg/SetDisbursementAddress", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *msgClient) RegisterRoute(ctx context.Context, in *MsgRegisterRoute, opts ...grpc.CallOption) (*MsgRegisterRouteResponse, error) {
	out := new(MsgRegisterRouteResponse)
	err := c.cc.Invoke(ctx, "/qstn.survey.v1.Msg/RegisterRoute", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *msgClient) UpdateParams(ctx context.Context, in *MsgUpdateParams, opts ...grpc.CallOption) (*MsgUpdateParamsResponse, error) {
	out := new(MsgUpdateParamsResponse)
	err := c.cc.Invoke(ctx, "/qstn.survey.v1.Msg/UpdateParams", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// QueryClient is the client API for the Query service
type QueryClient interface {
	Survey(ctx context.Context, in *QuerySurveyRequest, opts ...grpc.CallOption) (*QuerySurveyResponse, error)
	Surveys(ctx context.Context, in *QuerySurveysRequest, opts ...grpc.CallOption) (*QuerySurveysResponse, error)
	RewardMembership(ctx context.Context, in *QueryRewardMembershipRequest, opts ...grpc.CallOption) (*QueryRewardMembershipResponse, error)
	Route(ctx context.Context, in *QueryRouteRequest, opts ...grpc.CallOption) (*QueryRouteResponse, error)
	Managers(ctx context.Context, in *QueryManagersRequest, opts ...grpc.CallOption) (*QueryManagersResponse, error)
	Params(ctx context.Context, in *QueryParamsRequest, opts ...grpc.CallOption) (*QueryParamsResponse, error)
	DisbursementAddress(ctx context.Context, in *QueryDisbursementAddressRequest, opts ...grpc.CallOption) (*QueryDisbursementAddressResponse, error)
}

type queryClient struct {
	cc grpc1.ClientConn
}

// NewQueryClient creates a new Query service client
func NewQueryClient(cc grpc1.ClientConn) QueryClient {
	return &queryClient{cc}
}

func (c *queryClient) Survey(ctx context.Context, in *QuerySurveyRequest, opts ...grpc.CallOption) (*QuerySurveyResponse, error) {
	out := new(QuerySurveyResponse)
	err := c.cc.Invoke(ctx, "/qstn.survey.v1.Query/Survey", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *queryClient) Surveys(ctx context.Context, in *QuerySurveysRequest, opts ...grpc.CallOption) (*QuerySurveysResponse, error) {
	out := new(QuerySurveysResponse)
	err := c.cc.Invoke(ctx, "/qstn.survey.v1.Query/Surveys", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *queryClient) RewardMembership(ctx context.Context, in *QueryRewardMembershipRequest, opts ...grpc.CallOption) (*QueryRewardMembershipResponse, error) {
	out := new(QueryRewardMembershipResponse)
	err := c.cc.Invoke(ctx, "/qstn.survey.v1.Query/RewardMembership", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *queryClient) Route(ctx context.Context, in *QueryRouteRequest, opts ...grpc.CallOption) (*QueryRouteResponse, error) {
	out := new(QueryRouteResponse)
	err := c.cc.Invoke(ctx, "/qstn.survey.v1.Query/Route", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *queryClient) Managers(ctx context.Context, in *QueryManagersRequest, opts ...grpc.CallOption) (*QueryManagersResponse, error) {
	out := new(QueryManagersResponse)
	err := c.cc.Invoke(ctx, "/qstn.survey.v1.Query/Managers", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *queryClient) Params(ctx context.Context, in *QueryParamsRequest, opts ...grpc.CallOption) (*QueryParamsResponse, error) {
	out := new(QueryParamsResponse)
	err := c.cc.Invoke(ctx, "/qstn.survey.v1.Query/Params", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *queryClient) DisbursementAddress(ctx context.Context, in *QueryDisbursementAddressRequest, opts ...grpc.CallOption) (*QueryDisbursementAddressResponse, error) {
	out := new(QueryDisbursementAddressResponse)
	err := c.cc.Invoke(ctx, "/qstn.survey.v1.Query/DisbursementAddress", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// RegisterMsgServer registers the Msg service implementation with a gRPC server
func RegisterMsgServer(s grpc1.Server, srv MsgServer) {
	s.RegisterService(&_Msg_serviceDesc, srv)
}

// RegisterQueryServer registers the Query service implementation with a gRPC server
func RegisterQueryServer(s grpc1.Server, srv QueryServer) {
	s.RegisterService(&_Query_serviceDesc, srv)
}

func _Msg_SubmitEnvelope_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(MsgSubmitEnvelope)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(MsgServer).SubmitEnvelope(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/qstn.survey.v1.Msg/SubmitEnvelope",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(MsgServer).SubmitEnvelope(ctx, req.(*MsgSubmitEnvelope))
	}
	return interceptor(ctx, in, info, handler)
}

func _Msg_SetManager_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(MsgSetManager)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(MsgServer).SetManager(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/qstn.survey.v1.Msg/SetManager",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(MsgServer).SetManager(ctx, req.(*MsgSetManager))
	}
	return interceptor(ctx, in, info, handler)
}

func _Msg_SetDisbursementAddress_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(MsgSetDisbursementAddress)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(MsgServer).SetDisbursementAddress(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/qstn.survey.v1.Msg/SetDisbursementAddress",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(MsgServer).SetDisbursementAddress(ctx, req.(*MsgSetDisbursementAddress))
	}
	return interceptor(ctx, in, info, handler)
}

func _Msg_RegisterRoute_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(MsgRegisterRoute)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(MsgServer).RegisterRoute(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/qstn.survey.v1.Msg/RegisterRoute",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(MsgServer).RegisterRoute(ctx, req.(*MsgRegisterRoute))
	}
	return interceptor(ctx, in, info, handler)
}

func _Msg_UpdateParams_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(MsgUpdateParams)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(MsgServer).UpdateParams(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/qstn.survey.v1.Msg/UpdateParams",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(MsgServer).UpdateParams(ctx, req.(*MsgUpdateParams))
	}
	return interceptor(ctx, in, info, handler)
}

var _Msg_serviceDesc = grpc.ServiceDesc{
	ServiceName: "qstn.survey.v1.Msg",
	HandlerType: (*MsgServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "SubmitEnvelope",
			Handler:    _Msg_SubmitEnvelope_Handler,
		},
		{
			MethodName: "SetManager",
			Handler:    _Msg_SetManager_Handler,
		},
		{
			MethodName: "SetDisbursementAddress",
			Handler:    _Msg_SetDisbursementAddress_Handler,
		},
		{
			MethodName: "RegisterRoute",
			Handler:    _Msg_RegisterRoute_Handler,
		},
		{
			MethodName: "UpdateParams",
			Handler:    _Msg_UpdateParams_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "qstn/survey/v1/tx.proto",
}

func _Query_Survey_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(QuerySurveyRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(QueryServer).Survey(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/qstn.survey.v1.Query/Survey",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(QueryServer).Survey(ctx, req.(*QuerySurveyRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _Query_Surveys_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(QuerySurveysRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(QueryServer).Surveys(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/qstn.survey.v1.Query/Surveys",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(QueryServer).Surveys(ctx, req.(*QuerySurveysRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _Query_RewardMembership_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(QueryRewardMembershipRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(QueryServer).RewardMembership(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/qstn.survey.v1.Query/RewardMembership",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(QueryServer).RewardMembership(ctx, req.(*QueryRewardMembershipRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _Query_Route_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(QueryRouteRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(QueryServer).Route(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/qstn.survey.v1.Query/Route",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(QueryServer).Route(ctx, req.(*QueryRouteRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _Query_Managers_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(QueryManagersRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(QueryServer).Managers(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/qstn.survey.v1.Query/Managers",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(QueryServer).Managers(ctx, req.(*QueryManagersRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _Query_Params_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(QueryParamsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(QueryServer).Params(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/qstn.survey.v1.Query/Params",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(QueryServer).Params(ctx, req.(*QueryParamsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _Query_DisbursementAddress_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(QueryDisbursementAddressRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(QueryServer).DisbursementAddress(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/qstn.survey.v1.Query/DisbursementAddress",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(QueryServer).DisbursementAddress(ctx, req.(*QueryDisbursementAddressRequest))
	}
	return interceptor(ctx, in, info, handler)
}

var _Query_serviceDesc = grpc.ServiceDesc{
	ServiceName: "qstn.survey.v1.Query",
	HandlerType: (*QueryServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "Survey",
			Handler:    _Query_Survey_Handler,
		},
		{
			MethodName: "Surveys",
			Handler:    _Query_Surveys_Handler,
		},
		{
			MethodName: "RewardMembership",
			Handler:    _Query_RewardMembership_Handler,
		},
		{
			MethodName: "Route",
			Handler:    _Query_Route_Handler,
		},
		{
			MethodName: "Managers",
			Handler:    _Query_Managers_Handler,
		},
		{
			MethodName: "Params",
			Handler:    _Query_Params_Handler,
		},
		{
			MethodName: "DisbursementAddress",
			Handler:    _Query_DisbursementAddress_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "qstn/survey/v1/query.proto",
}
