package grpcparse

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

// ParserServer is the server API for the Parser gRPC service.
//
// We intentionally use protobuf well-known types (Struct, ListValue,
// wrappers) so this package does not require a protoc/codegen toolchain.
//
// Proto definition: parser.proto.
type ParserServer interface {
	ClassifyRecord(context.Context, *structpb.Struct) (*structpb.Struct, error)
	ClassifyRecords(context.Context, *structpb.ListValue) (*structpb.ListValue, error)
	ClassifyMessage(context.Context, *structpb.Struct) (*structpb.Struct, error)
	RecordTypes(context.Context, *wrapperspb.StringValue) (*structpb.ListValue, error)
	GetMetadata(context.Context, *wrapperspb.StringValue) (*structpb.Struct, error)
}

// UnimplementedParserServer can be embedded to have forward compatible implementations.
type UnimplementedParserServer struct{}

func (UnimplementedParserServer) ClassifyRecord(context.Context, *structpb.Struct) (*structpb.Struct, error) {
	return nil, status.Error(codes.Unimplemented, "method ClassifyRecord not implemented")
}
func (UnimplementedParserServer) ClassifyRecords(context.Context, *structpb.ListValue) (*structpb.ListValue, error) {
	return nil, status.Error(codes.Unimplemented, "method ClassifyRecords not implemented")
}
func (UnimplementedParserServer) ClassifyMessage(context.Context, *structpb.Struct) (*structpb.Struct, error) {
	return nil, status.Error(codes.Unimplemented, "method ClassifyMessage not implemented")
}
func (UnimplementedParserServer) RecordTypes(context.Context, *wrapperspb.StringValue) (*structpb.ListValue, error) {
	return nil, status.Error(codes.Unimplemented, "method RecordTypes not implemented")
}
func (UnimplementedParserServer) GetMetadata(context.Context, *wrapperspb.StringValue) (*structpb.Struct, error) {
	return nil, status.Error(codes.Unimplemented, "method GetMetadata not implemented")
}

// RegisterParserServer registers the Parser service on a gRPC server.
func RegisterParserServer(s grpc.ServiceRegistrar, srv ParserServer) {
	s.RegisterService(&Parser_ServiceDesc, srv)
}

// ParserClient is the client API for the Parser gRPC service.
type ParserClient interface {
	ClassifyRecord(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
	ClassifyRecords(ctx context.Context, in *structpb.ListValue, opts ...grpc.CallOption) (*structpb.ListValue, error)
	ClassifyMessage(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
	RecordTypes(ctx context.Context, in *wrapperspb.StringValue, opts ...grpc.CallOption) (*structpb.ListValue, error)
	GetMetadata(ctx context.Context, in *wrapperspb.StringValue, opts ...grpc.CallOption) (*structpb.Struct, error)
}

type parserClient struct{ cc grpc.ClientConnInterface }

func NewParserClient(cc grpc.ClientConnInterface) ParserClient { return &parserClient{cc: cc} }

func (c *parserClient) ClassifyRecord(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	err := c.cc.Invoke(ctx, "/bindec.v1.Parser/ClassifyRecord", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *parserClient) ClassifyRecords(ctx context.Context, in *structpb.ListValue, opts ...grpc.CallOption) (*structpb.ListValue, error) {
	out := new(structpb.ListValue)
	err := c.cc.Invoke(ctx, "/bindec.v1.Parser/ClassifyRecords", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *parserClient) ClassifyMessage(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	err := c.cc.Invoke(ctx, "/bindec.v1.Parser/ClassifyMessage", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *parserClient) RecordTypes(ctx context.Context, in *wrapperspb.StringValue, opts ...grpc.CallOption) (*structpb.ListValue, error) {
	out := new(structpb.ListValue)
	err := c.cc.Invoke(ctx, "/bindec.v1.Parser/RecordTypes", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *parserClient) GetMetadata(ctx context.Context, in *wrapperspb.StringValue, opts ...grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	err := c.cc.Invoke(ctx, "/bindec.v1.Parser/GetMetadata", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func _Parser_ClassifyRecord_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(structpb.Struct)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ParserServer).ClassifyRecord(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/bindec.v1.Parser/ClassifyRecord"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ParserServer).ClassifyRecord(ctx, req.(*structpb.Struct))
	}
	return interceptor(ctx, in, info, handler)
}

func _Parser_ClassifyRecords_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(structpb.ListValue)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ParserServer).ClassifyRecords(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/bindec.v1.Parser/ClassifyRecords"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ParserServer).ClassifyRecords(ctx, req.(*structpb.ListValue))
	}
	return interceptor(ctx, in, info, handler)
}

func _Parser_ClassifyMessage_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(structpb.Struct)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ParserServer).ClassifyMessage(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/bindec.v1.Parser/ClassifyMessage"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ParserServer).ClassifyMessage(ctx, req.(*structpb.Struct))
	}
	return interceptor(ctx, in, info, handler)
}

func _Parser_RecordTypes_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(wrapperspb.StringValue)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ParserServer).RecordTypes(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/bindec.v1.Parser/RecordTypes"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ParserServer).RecordTypes(ctx, req.(*wrapperspb.StringValue))
	}
	return interceptor(ctx, in, info, handler)
}

func _Parser_GetMetadata_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(wrapperspb.StringValue)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ParserServer).GetMetadata(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/bindec.v1.Parser/GetMetadata"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ParserServer).GetMetadata(ctx, req.(*wrapperspb.StringValue))
	}
	return interceptor(ctx, in, info, handler)
}

// Parser_ServiceDesc is the grpc.ServiceDesc for the Parser service.
var Parser_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "bindec.v1.Parser",
	HandlerType: (*ParserServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "ClassifyRecord", Handler: _Parser_ClassifyRecord_Handler},
		{MethodName: "ClassifyRecords", Handler: _Parser_ClassifyRecords_Handler},
		{MethodName: "ClassifyMessage", Handler: _Parser_ClassifyMessage_Handler},
		{MethodName: "RecordTypes", Handler: _Parser_RecordTypes_Handler},
		{MethodName: "GetMetadata", Handler: _Parser_GetMetadata_Handler},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "parser.proto",
}
