package grpc

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

// The service has a single unary method, so it is declared directly on top
// of the well-known wrapper messages:
//
//	service DomainChecker {
//	  rpc Check(google.protobuf.StringValue) returns (google.protobuf.BoolValue);
//	}
const (
	ServiceName     = "forbiddendomains.v1.DomainChecker"
	checkFullMethod = "/" + ServiceName + "/Check"
)

// DomainCheckerServer is the server API for the DomainChecker service.
type DomainCheckerServer interface {
	Check(ctx context.Context, req *wrapperspb.StringValue) (*wrapperspb.BoolValue, error)
}

func RegisterDomainCheckerServer(s grpc.ServiceRegistrar, srv DomainCheckerServer) {
	s.RegisterService(&domainCheckerServiceDesc, srv)
}

var domainCheckerServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*DomainCheckerServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "Check",
			Handler:    checkHandler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "forbiddendomains/v1/checker.proto",
}

func checkHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(wrapperspb.StringValue)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(DomainCheckerServer).Check(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: checkFullMethod,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(DomainCheckerServer).Check(ctx, req.(*wrapperspb.StringValue))
	}
	return interceptor(ctx, in, info, handler)
}

// Client calls the DomainChecker service.
type Client struct {
	cc grpc.ClientConnInterface
}

func NewClient(cc grpc.ClientConnInterface) *Client {
	return &Client{cc: cc}
}

// Check reports whether domain is forbidden.
func (c *Client) Check(ctx context.Context, domain string, opts ...grpc.CallOption) (bool, error) {
	out := new(wrapperspb.BoolValue)
	if err := c.cc.Invoke(ctx, checkFullMethod, wrapperspb.String(domain), out, opts...); err != nil {
		return false, err
	}
	return out.GetValue(), nil
}
