// Package server assembles the characters gRPC server: service registration,
// health reporting, and lifecycle management.
package server

import (
	"context"
	"fmt"
	"log"
	"net"

	pb "github.com/louisbranch/zelda-characters/api/gen/go/characters/v1"
	"github.com/louisbranch/zelda-characters/internal/characters/service"
	"github.com/louisbranch/zelda-characters/internal/storage"
	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// Server wraps the gRPC server and its listener.
type Server struct {
	listener net.Listener
	grpc     *grpc.Server
	health   *health.Server
}

// New creates a server listening on the given TCP port.
func New(port int, store storage.CharacterStore) (*Server, error) {
	return NewWithAddr(fmt.Sprintf(":%d", port), store)
}

// NewWithAddr creates a server listening on the given TCP address.
func NewWithAddr(addr string, store storage.CharacterStore) (*Server, error) {
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("listen on %s: %w", addr, err)
	}
	return NewWithListener(listener, store), nil
}

// NewWithListener creates a server on an existing listener. The caller keeps
// ownership of the listener until Serve is called.
func NewWithListener(listener net.Listener, store storage.CharacterStore) *Server {
	grpcServer := grpc.NewServer(
		grpc.StatsHandler(otelgrpc.NewServerHandler()),
	)

	pb.RegisterCharacterServiceServer(grpcServer, service.NewCharacterService(store))

	healthServer := health.NewServer()
	healthpb.RegisterHealthServer(grpcServer, healthServer)
	healthServer.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)

	return &Server{
		listener: listener,
		grpc:     grpcServer,
		health:   healthServer,
	}
}

// Addr returns the bound listener address.
func (s *Server) Addr() net.Addr {
	return s.listener.Addr()
}

// Serve blocks serving gRPC until the context ends, then drains in-flight
// RPCs with a graceful stop.
func (s *Server) Serve(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- s.grpc.Serve(s.listener)
	}()

	select {
	case <-ctx.Done():
		s.health.Shutdown()
		s.grpc.GracefulStop()
		log.Printf("gRPC server stopped")
		return nil
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("serve gRPC: %w", err)
		}
		return nil
	}
}
