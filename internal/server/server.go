package server

import (
	"context"
	"os/signal"
	"sync"
	"syscall"

	"github.com/MKhiriev/go-card-validator/internal/config"
	"github.com/MKhiriev/go-card-validator/internal/handler"
	"github.com/MKhiriev/go-card-validator/internal/logger"
)

type server struct {
	httpServer *httpServer
	gRPCServer *grpcServer
	logger     *logger.Logger
}

// NewServer binds a listener for every transport that has both a handler
// and an address. Listening errors are returned immediately so a busy port
// fails startup instead of a background goroutine.
func NewServer(handlers *handler.Handlers, cfg config.Server, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")
	servers := &server{logger: logger}

	if cfg.HTTPAddress != "" && handlers.HTTP != nil {
		httpSrv, err := newHTTPServer(handlers.HTTP.Init(), cfg, logger)
		if err != nil {
			return nil, err
		}
		servers.httpServer = httpSrv
	}
	if cfg.GRPCAddress != "" && handlers.GRPC != nil {
		grpcSrv, err := newGRPCServer(handlers.GRPC, cfg, logger)
		if err != nil {
			if servers.httpServer != nil {
				servers.httpServer.listener.Close()
			}
			return nil, err
		}
		servers.gRPCServer = grpcSrv
	}

	if servers.httpServer == nil && servers.gRPCServer == nil {
		return nil, errNoServersAreCreated
	}

	return servers, nil
}

// RunServer serves until a stop signal arrives.
func (s *server) RunServer() {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	s.run(ctx)
}

func (s *server) Shutdown() {
	// finish HTTP server
	if s.httpServer != nil {
		s.httpServer.Shutdown()
	}

	// finish gRPC server
	if s.gRPCServer != nil {
		s.gRPCServer.Shutdown()
	}
}

// run serves until ctx is done, then shuts every transport down and waits
// for their Serve loops to return.
func (s *server) run(ctx context.Context) {
	var wg sync.WaitGroup

	if s.httpServer != nil {
		s.logger.Info().Msg("Launching HTTP server")
		wg.Go(s.httpServer.RunServer)
	}
	if s.gRPCServer != nil {
		s.logger.Info().Msg("Launching GRPC server")
		wg.Go(s.gRPCServer.RunServer)
	}

	<-ctx.Done()
	s.Shutdown()
	wg.Wait()

	s.logger.Info().Msg("server Shutdown gracefully")
}
