package server

import (
	"fmt"
	"net"

	"github.com/MKhiriev/go-card-validator/internal/config"
	myGRPC "github.com/MKhiriev/go-card-validator/internal/handler/grpc"
	"github.com/MKhiriev/go-card-validator/internal/logger"

	"google.golang.org/grpc"
)

type grpcServer struct {
	handler *myGRPC.Handler

	server          *grpc.Server
	gRPCNetListener net.Listener

	logger *logger.Logger
}

func newGRPCServer(handler *myGRPC.Handler, cfg config.Server, logger *logger.Logger) (*grpcServer, error) {
	listener, err := net.Listen("tcp", cfg.GRPCAddress)
	if err != nil {
		return nil, fmt.Errorf("%w %s: %w", errListen, cfg.GRPCAddress, err)
	}

	server := grpc.NewServer(grpc.UnaryInterceptor(handler.UnaryLogging))
	handler.Register(server)

	return &grpcServer{
		handler:         handler,
		server:          server,
		gRPCNetListener: listener,
		logger:          logger,
	}, nil
}

func (g *grpcServer) RunServer() {
	g.logger.Info().Str("address", g.gRPCNetListener.Addr().String()).Msg("gRPC server listening")
	if err := g.server.Serve(g.gRPCNetListener); err != nil {
		g.logger.Error().Err(err).Msg("gRPC server Serve")
	}
}

func (g *grpcServer) Shutdown() {
	g.logger.Info().Msg("gRPC server Shutdown")
	g.handler.Shutdown()
	g.server.GracefulStop()
}
