// Package grpc implements the gRPC transport of the data service. The only
// surface is the standard health protocol, used as a liveness probe by
// deployment tooling.
package grpc

import (
	"context"

	"google.golang.org/grpc/health/grpc_health_v1"

	"github.com/promptdeck/promptdeck/internal/logger"
	"github.com/promptdeck/promptdeck/internal/service"
)

// Handler serves the grpc.health.v1.Health protocol.
//
// A handler instance is created once at startup and shared by the gRPC
// server. The service container is kept for future readiness checks; the
// current probes report liveness only.
type Handler struct {
	grpc_health_v1.UnimplementedHealthServer

	services *service.Services

	logger *logger.Logger
}

func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	logger.Debug().Msg("gRPC handler created")
	return &Handler{
		services: services,
		logger:   logger,
	}
}

// Check reports SERVING as long as the process is up.
func (h *Handler) Check(ctx context.Context, req *grpc_health_v1.HealthCheckRequest) (*grpc_health_v1.HealthCheckResponse, error) {
	return &grpc_health_v1.HealthCheckResponse{
		Status: grpc_health_v1.HealthCheckResponse_SERVING,
	}, nil
}

// Watch sends the current status once and closes the stream. The status
// never changes while the process lives, so a single report is sufficient.
func (h *Handler) Watch(req *grpc_health_v1.HealthCheckRequest, stream grpc_health_v1.Health_WatchServer) error {
	return stream.Send(&grpc_health_v1.HealthCheckResponse{
		Status: grpc_health_v1.HealthCheckResponse_SERVING,
	})
}
