package keysvc

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/anypb"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

const serviceName = "xdao.cosmoskey.keysvc.v1.Keys"

// KeysServer is the server API for the Keys gRPC service.
//
// Keys travel as google.protobuf.Any and results as well-known wrapper types,
// so this package does not require a protoc/codegen toolchain.
//
// Proto definition: keysvc.proto.
type KeysServer interface {
	Normalize(context.Context, *anypb.Any) (*anypb.Any, error)
	Fingerprint(context.Context, *anypb.Any) (*wrapperspb.StringValue, error)
	Render(context.Context, *anypb.Any) (*wrapperspb.StringValue, error)
	Types(context.Context, *emptypb.Empty) (*wrapperspb.StringValue, error)
}

// UnimplementedKeysServer can be embedded to have forward compatible implementations.
type UnimplementedKeysServer struct{}

func (UnimplementedKeysServer) Normalize(context.Context, *anypb.Any) (*anypb.Any, error) {
	return nil, status.Error(codes.Unimplemented, "method Normalize not implemented")
}
func (UnimplementedKeysServer) Fingerprint(context.Context, *anypb.Any) (*wrapperspb.StringValue, error) {
	return nil, status.Error(codes.Unimplemented, "method Fingerprint not implemented")
}
func (UnimplementedKeysServer) Render(context.Context, *anypb.Any) (*wrapperspb.StringValue, error) {
	return nil, status.Error(codes.Unimplemented, "method Render not implemented")
}
func (UnimplementedKeysServer) Types(context.Context, *emptypb.Empty) (*wrapperspb.StringValue, error) {
	return nil, status.Error(codes.Unimplemented, "method Types not implemented")
}

// RegisterKeysServer registers the Keys service on a gRPC server.
func RegisterKeysServer(s grpc.ServiceRegistrar, srv KeysServer) {
	s.RegisterService(&Keys_ServiceDesc, srv)
}

// KeysClient is the client API for the Keys gRPC service.
type KeysClient interface {
	Normalize(ctx context.Context, in *anypb.Any, opts ...grpc.CallOption) (*anypb.Any, error)
	Fingerprint(ctx context.Context, in *anypb.Any, opts ...grpc.CallOption) (*wrapperspb.StringValue, error)
	Render(ctx context.Context, in *anypb.Any, opts ...grpc.CallOption) (*wrapperspb.StringValue, error)
	Types(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*wrapperspb.StringValue, error)
}

type keysClient struct{ cc grpc.ClientConnInterface }

func NewKeysClient(cc grpc.ClientConnInterface) KeysClient { return &keysClient{cc: cc} }

func (c *keysClient) Normalize(ctx context.Context, in *anypb.Any, opts ...grpc.CallOption) (*anypb.Any, error) {
	out := new(anypb.Any)
	err := c.cc.Invoke(ctx, "/"+serviceName+"/Normalize", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *keysClient) Fingerprint(ctx context.Context, in *anypb.Any, opts ...grpc.CallOption) (*wrapperspb.StringValue, error) {
	out := new(wrapperspb.StringValue)
	err := c.cc.Invoke(ctx, "/"+serviceName+"/Fingerprint", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *keysClient) Render(ctx context.Context, in *anypb.Any, opts ...grpc.CallOption) (*wrapperspb.StringValue, error) {
	out := new(wrapperspb.StringValue)
	err := c.cc.Invoke(ctx, "/"+serviceName+"/Render", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *keysClient) Types(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*wrapperspb.StringValue, error) {
	out := new(wrapperspb.StringValue)
	err := c.cc.Invoke(ctx, "/"+serviceName+"/Types", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func _Keys_Normalize_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(anypb.Any)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(KeysServer).Normalize(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/" + serviceName + "/Normalize"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(KeysServer).Normalize(ctx, req.(*anypb.Any))
	}
	return interceptor(ctx, in, info, handler)
}

func _Keys_Fingerprint_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(anypb.Any)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(KeysServer).Fingerprint(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/" + serviceName + "/Fingerprint"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(KeysServer).Fingerprint(ctx, req.(*anypb.Any))
	}
	return interceptor(ctx, in, info, handler)
}

func _Keys_Render_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(anypb.Any)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(KeysServer).Render(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/" + serviceName + "/Render"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(KeysServer).Render(ctx, req.(*anypb.Any))
	}
	return interceptor(ctx, in, info, handler)
}

func _Keys_Types_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(emptypb.Empty)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(KeysServer).Types(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/" + serviceName + "/Types"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(KeysServer).Types(ctx, req.(*emptypb.Empty))
	}
	return interceptor(ctx, in, info, handler)
}

// Keys_ServiceDesc is the grpc.ServiceDesc for the Keys service.
var Keys_ServiceDesc = grpc.ServiceDesc{
	ServiceName: serviceName,
	HandlerType: (*KeysServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "Normalize", Handler: _Keys_Normalize_Handler},
		{MethodName: "Fingerprint", Handler: _Keys_Fingerprint_Handler},
		{MethodName: "Render", Handler: _Keys_Render_Handler},
		{MethodName: "Types", Handler: _Keys_Types_Handler},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "keysvc.proto",
}
