package server

import (
	"net"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health/grpc_health_v1"

	"github.com/promptdeck/promptdeck/internal/config"
	healthHandler "github.com/promptdeck/promptdeck/internal/handler/grpc"
	"github.com/promptdeck/promptdeck/internal/logger"
)

type grpcServer struct {
	address string
	server  *grpc.Server

	logger *logger.Logger
}

func newGRPCServer(handler *healthHandler.Handler, cfg config.Server, logger *logger.Logger) *grpcServer {
	server := grpc.NewServer()
	grpc_health_v1.RegisterHealthServer(server, handler)

	return &grpcServer{
		address: cfg.GRPCAddress,
		server:  server,
		logger:  logger,
	}
}

func (g *grpcServer) RunServer() {
	listener, err := net.Listen("tcp", g.address)
	if err != nil {
		g.logger.Error().Err(err).Str("address", g.address).Msg("gRPC server Listen")
		return
	}

	if err := g.server.Serve(listener); err != nil {
		g.logger.Error().Err(err).Msg("gRPC server Serve")
	}
}

func (g *grpcServer) Shutdown() {
	g.logger.Info().Msg("gRPC server Shutdown")
	g.server.GracefulStop()
}
