package pb

import (
	context "context"
	grpc "google.golang.org/grpc"
	codes "google.golang.org/grpc/codes"
	status "google.golang.org/grpc/status"
)

const _ = grpc.SupportPackageIsVersion9

const (
	Tail_Tail_FullMethodName = "/kafkaui.v1.Tail/Tail"
)

type TailClient interface {
	Tail(ctx context.Context, in *TailRequest, opts ...grpc.CallOption) (grpc.ServerStreamingClient[TailEvent], error)
}

type tailClient struct {
	cc grpc.ClientConnInterface
}

func NewTailClient(cc grpc.ClientConnInterface) TailClient {
	return &tailClient{cc}
}

func (c *tailClient) Tail(ctx context.Context, in *TailRequest, opts ...grpc.CallOption) (grpc.ServerStreamingClient[TailEvent], error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	stream, err := c.cc.NewStream(ctx, &Tail_ServiceDesc.Streams[0], Tail_Tail_FullMethodName, cOpts...)
	if err != nil {
		return nil, err
	}
	x := &grpc.GenericClientStream[TailRequest, TailEvent]{ClientStream: stream}
	if err := x.ClientStream.SendMsg(in); err != nil {
		return nil, err
	}
	if err := x.ClientStream.CloseSend(); err != nil {
		return nil, err
	}
	return x, nil
}

type Tail_TailClient = grpc.ServerStreamingClient[TailEvent]

type TailServer interface {
	Tail(*TailRequest, grpc.ServerStreamingServer[TailEvent]) error
	mustEmbedUnimplementedTailServer()
}

type UnimplementedTailServer struct{}

func (UnimplementedTailServer) Tail(*TailRequest, grpc.ServerStreamingServer[TailEvent]) error {
	return status.Errorf(codes.Unimplemented, "method Tail not implemented")
}
func (UnimplementedTailServer) mustEmbedUnimplementedTailServer() {}
func (UnimplementedTailServer) testEmbeddedByValue()              {}

type UnsafeTailServer interface {
	mustEmbedUnimplementedTailServer()
}

func RegisterTailServer(s grpc.ServiceRegistrar, srv TailServer) {

	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&Tail_ServiceDesc, srv)
}

func _Tail_Tail_Handler(srv interface{}, stream grpc.ServerStream) error {
	m := new(TailRequest)
	if err := stream.RecvMsg(m); err != nil {
		return err
	}
	return srv.(TailServer).Tail(m, &grpc.GenericServerStream[TailRequest, TailEvent]{ServerStream: stream})
}

type Tail_TailServer = grpc.ServerStreamingServer[TailEvent]

var Tail_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "kafkaui.v1.Tail",
	HandlerType: (*TailServer)(nil),
	Methods:     []grpc.MethodDesc{},
	Streams: []grpc.StreamDesc{
		{
			StreamName:    "Tail",
			Handler:       _Tail_Tail_Handler,
			ServerStreams: true,
		},
	},
	Metadata: "v1/tail.proto",
}
