package pb

import (
	context "context"
	grpc "google.golang.org/grpc"
	codes "google.golang.org/grpc/codes"
	status "google.golang.org/grpc/status"
)

const (
	SerdePlugin_Metadata_FullMethodName    = "/kafkaui.v1.SerdePlugin/Metadata"
	SerdePlugin_Health_FullMethodName      = "/kafkaui.v1.SerdePlugin/Health"
	SerdePlugin_Deserialize_FullMethodName = "/kafkaui.v1.SerdePlugin/Deserialize"
)

type SerdePluginClient interface {
	Metadata(ctx context.Context, in *MetadataRequest, opts ...grpc.CallOption) (*MetadataResponse, error)
	Health(ctx context.Context, in *HealthRequest, opts ...grpc.CallOption) (*HealthResponse, error)
	Deserialize(ctx context.Context, in *DeserializeRequest, opts ...grpc.CallOption) (*DeserializeResponse, error)
}

type serdePluginClient struct {
	cc grpc.ClientConnInterface
}

func NewSerdePluginClient(cc grpc.ClientConnInterface) SerdePluginClient {
	return &serdePluginClient{cc}
}

func (c *serdePluginClient) Metadata(ctx context.Context, in *MetadataRequest, opts ...grpc.CallOption) (*MetadataResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(MetadataResponse)
	err := c.cc.Invoke(ctx, SerdePlugin_Metadata_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *serdePluginClient) Health(ctx context.Context, in *HealthRequest, opts ...grpc.CallOption) (*HealthResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(HealthResponse)
	err := c.cc.Invoke(ctx, SerdePlugin_Health_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *serdePluginClient) Deserialize(ctx context.Context, in *DeserializeRequest, opts ...grpc.CallOption) (*DeserializeResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(DeserializeResponse)
	err := c.cc.Invoke(ctx, SerdePlugin_Deserialize_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

type SerdePluginServer interface {
	Metadata(context.Context, *MetadataRequest) (*MetadataResponse, error)
	Health(context.Context, *HealthRequest) (*HealthResponse, error)
	Deserialize(context.Context, *DeserializeRequest) (*DeserializeResponse, error)
	mustEmbedUnimplementedSerdePluginServer()
}

type UnimplementedSerdePluginServer struct{}

func (UnimplementedSerdePluginServer) Metadata(context.Context, *MetadataRequest) (*MetadataResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method Metadata not implemented")
}
func (UnimplementedSerdePluginServer) Health(context.Context, *HealthRequest) (*HealthResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method Health not implemented")
}
func (UnimplementedSerdePluginServer) Deserialize(context.Context, *DeserializeRequest) (*DeserializeResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method Deserialize not implemented")
}
func (UnimplementedSerdePluginServer) mustEmbedUnimplementedSerdePluginServer() {}
func (UnimplementedSerdePluginServer) testEmbeddedByValue()                     {}

type UnsafeSerdePluginServer interface {
	mustEmbedUnimplementedSerdePluginServer()
}

func RegisterSerdePluginServer(s grpc.ServiceRegistrar, srv SerdePluginServer) {

	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&SerdePlugin_ServiceDesc, srv)
}

func _SerdePlugin_Metadata_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(MetadataRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(SerdePluginServer).Metadata(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: SerdePlugin_Metadata_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(SerdePluginServer).Metadata(ctx, req.(*MetadataRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _SerdePlugin_Health_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(HealthRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(SerdePluginServer).Health(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: SerdePlugin_Health_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(SerdePluginServer).Health(ctx, req.(*HealthRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _SerdePlugin_Deserialize_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(DeserializeRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(SerdePluginServer).Deserialize(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: SerdePlugin_Deserialize_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(SerdePluginServer).Deserialize(ctx, req.(*DeserializeRequest))
	}
	return interceptor(ctx, in, info, handler)
}

var SerdePlugin_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "kafkaui.v1.SerdePlugin",
	HandlerType: (*SerdePluginServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "Metadata",
			Handler:    _SerdePlugin_Metadata_Handler,
		},
		{
			MethodName: "Health",
			Handler:    _SerdePlugin_Health_Handler,
		},
		{
			MethodName: "Deserialize",
			Handler:    _SerdePlugin_Deserialize_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "v1/serde.proto",
}
