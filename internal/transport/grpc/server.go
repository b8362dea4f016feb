package grpc

import (
	"context"
	"log"
	"net"
	"strings"

	"forbidden-domains/internal/domain"
	"forbidden-domains/internal/registry"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

type Server struct {
	holder *registry.Holder
}

func NewServer(holder *registry.Holder) *Server {
	return &Server{holder: holder}
}

const maxDomainLen = 1024

// Lookup parses raw and checks it against the current registry. It returns
// the blocklist entry covering the domain when it is forbidden.
func (s *Server) Lookup(ctx context.Context, raw string) (query, matched domain.Key, forbidden bool, err error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return query, matched, false, status.Error(codes.InvalidArgument, "domain is required")
	}
	if len(raw) > maxDomainLen {
		return query, matched, false, status.Error(codes.InvalidArgument, "domain is too long")
	}

	query, err = domain.ParseKey(raw)
	if err != nil {
		return query, matched, false, status.Errorf(codes.InvalidArgument, "%v", err)
	}

	reg := s.holder.Get()
	if reg == nil {
		return query, matched, false, status.Error(codes.Unavailable, "registry not initialized")
	}

	matched, forbidden = reg.Blocklist.Match(query)
	return query, matched, forbidden, nil
}

func (s *Server) Check(ctx context.Context, req *wrapperspb.StringValue) (*wrapperspb.BoolValue, error) {
	_, _, forbidden, err := s.Lookup(ctx, req.GetValue())
	if err != nil {
		return nil, err
	}
	return wrapperspb.Bool(forbidden), nil
}

// NewHealthServer returns a health server that reports NOT_SERVING for the
// checker until MarkServing is called.
func NewHealthServer() *health.Server {
	hs := health.NewServer()
	hs.SetServingStatus(ServiceName, healthpb.HealthCheckResponse_NOT_SERVING)
	hs.SetServingStatus("", healthpb.HealthCheckResponse_NOT_SERVING)
	return hs
}

// MarkServing flips the checker to SERVING, typically after the first load.
func MarkServing(hs *health.Server) {
	hs.SetServingStatus(ServiceName, healthpb.HealthCheckResponse_SERVING)
	hs.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
}

func newGRPCServer(holder *registry.Holder, hs *health.Server) *grpc.Server {
	s := grpc.NewServer()
	RegisterDomainCheckerServer(s, NewServer(holder))
	healthpb.RegisterHealthServer(s, hs)
	reflection.Register(s)
	return s
}

// RunGRPCServer starts a gRPC server on the given address and
// shuts it down gracefully when the context is canceled.
func RunGRPCServer(ctx context.Context, addr string, holder *registry.Holder, hs *health.Server) error {
	if addr == "" {
		addr = ":9090"
	}

	lis, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}

	s := newGRPCServer(holder, hs)

	// Stop the server once the context is done (SIGTERM, timeout, etc.).
	go func() {
		<-ctx.Done()
		hs.Shutdown()
		s.GracefulStop()
	}()

	log.Printf("gRPC server listening on %s", lis.Addr().String())
	return s.Serve(lis)
}
