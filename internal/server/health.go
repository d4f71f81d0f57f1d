package server

import (
	"fmt"
	"net"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"max.ks1230/expense-tracker/internal/logger"
)

// HealthServer exposes the standard gRPC health service for a worker
// process. The overall status and each named service start as SERVING.
type HealthServer struct {
	health *health.Server
	server *grpc.Server
	lis    net.Listener
}

func NewHealthServer(port int, services ...string) (*HealthServer, error) {
	lis, err := net.Listen("tcp", fmt.Sprintf(":%d", port))
	if err != nil {
		return nil, errors.Wrap(err, "cannot create server")
	}

	rpcServer := grpc.NewServer()
	hs := health.NewServer()
	healthpb.RegisterHealthServer(rpcServer, hs)
	for _, name := range services {
		hs.SetServingStatus(name, healthpb.HealthCheckResponse_SERVING)
	}

	return &HealthServer{
		health: hs,
		server: rpcServer,
		lis:    lis,
	}, nil
}

func (s *HealthServer) Addr() net.Addr {
	return s.lis.Addr()
}

func (s *HealthServer) Serve() error {
	logger.Info("gRPC server listening", zap.Any("addr", s.lis.Addr()))
	if err := s.server.Serve(s.lis); err != nil {
		return errors.Wrap(err, "serve gRPC")
	}
	return nil
}

// Shutdown reports NOT_SERVING to watchers and stops the server.
func (s *HealthServer) Shutdown() {
	s.health.Shutdown()
	s.server.GracefulStop()
	logger.Info("grpc server stopped")
}
