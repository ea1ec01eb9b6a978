// Code generated by protoc-gen-go-grpc. DO NOT EDIT.
// versions:
// - protoc-gen-go-grpc v1.6.0
// - protoc             (unknown)
// source: marketplace/v1/marketplace.proto

package marketplacev1

import (
	context "context"
	grpc "google.golang.org/grpc"
	codes "google.golang.org/grpc/codes"
	status "google.golang.org/grpc/status"
)

// This is a compile-time assertion to ensure that this generated file
// is compatible with the grpc package it is being compiled against.
// Requires gRPC-Go v1.64.0 or later.
const _ = grpc.SupportPackageIsVersion9

const (
	ShopDirectoryService_GetShopInfo_FullMethodName = "/marketplace.v1.ShopDirectoryService/GetShopInfo"
)

// ShopDirectoryServiceClient is the client API for ShopDirectoryService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
//
// ShopDirectoryService serves shop/catalog lookups to internal callers
// (booking-service view assembly and working-hours validation).
type ShopDirectoryServiceClient interface {
	GetShopInfo(ctx context.Context, in *ShopInfoRequest, opts ...grpc.CallOption) (*ShopInfoResponse, error)
}

type shopDirectoryServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewShopDirectoryServiceClient(cc grpc.ClientConnInterface) ShopDirectoryServiceClient {
	return &shopDirectoryServiceClient{cc}
}

func (c *shopDirectoryServiceClient) GetShopInfo(ctx context.Context, in *ShopInfoRequest, opts ...grpc.CallOption) (*ShopInfoResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ShopInfoResponse)
	err := c.cc.Invoke(ctx, ShopDirectoryService_GetShopInfo_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// ShopDirectoryServiceServer is the server API for ShopDirectoryService service.
// All implementations must embed UnimplementedShopDirectoryServiceServer
// for forward compatibility.
//
// ShopDirectoryService serves shop/catalog lookups to internal callers
// (booking-service view assembly and working-hours validation).
type ShopDirectoryServiceServer interface {
	GetShopInfo(context.Context, *ShopInfoRequest) (*ShopInfoResponse, error)
	mustEmbedUnimplementedShopDirectoryServiceServer()
}

// UnimplementedShopDirectoryServiceServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedShopDirectoryServiceServer struct{}

func (UnimplementedShopDirectoryServiceServer) GetShopInfo(context.Context, *ShopInfoRequest) (*ShopInfoResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetShopInfo not implemented")
}
func (UnimplementedShopDirectoryServiceServer) mustEmbedUnimplementedShopDirectoryServiceServer() {}
func (UnimplementedShopDirectoryServiceServer) testEmbeddedByValue()                              {}

// UnsafeShopDirectoryServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to ShopDirectoryServiceServer will
// result in compilation errors.
type UnsafeShopDirectoryServiceServer interface {
	mustEmbedUnimplementedShopDirectoryServiceServer()
}

func RegisterShopDirectoryServiceServer(s grpc.ServiceRegistrar, srv ShopDirectoryServiceServer) {
	// If the following call panics, it indicates UnimplementedShopDirectoryServiceServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&ShopDirectoryService_ServiceDesc, srv)
}

func _ShopDirectoryService_GetShopInfo_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ShopInfoRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ShopDirectoryServiceServer).GetShopInfo(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ShopDirectoryService_GetShopInfo_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ShopDirectoryServiceServer).GetShopInfo(ctx, req.(*ShopInfoRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// ShopDirectoryService_ServiceDesc is the grpc.ServiceDesc for ShopDirectoryService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var ShopDirectoryService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "marketplace.v1.ShopDirectoryService",
	HandlerType: (*ShopDirectoryServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "GetShopInfo",
			Handler:    _ShopDirectoryService_GetShopInfo_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "marketplace/v1/marketplace.proto",
}
