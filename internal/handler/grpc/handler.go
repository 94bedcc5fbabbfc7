package grpc

import (
	"context"
	"time"

	"github.com/MKhiriev/go-card-validator/internal/logger"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/status"
)

// ServiceName is the name under which the card validator reports its health,
// in addition to the overall ("") status.
const ServiceName = "cardvalidator.CardValidator"

// Handler is the root gRPC transport handler.
//
// It exposes the standard grpc.health.v1 service. The status starts as
// SERVING and flips to NOT_SERVING on Shutdown so that probes see the
// server draining before it stops.
type Handler struct {
	health *health.Server

	logger *logger.Logger
}

// NewHandler constructs a [Handler] reporting SERVING for both the overall
// server and [ServiceName].
func NewHandler(logger *logger.Logger) *Handler {
	h := &Handler{
		health: health.NewServer(),
		logger: logger,
	}
	h.health.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	h.health.SetServingStatus(ServiceName, healthpb.HealthCheckResponse_SERVING)

	logger.Debug().Msg("gRPC handler created")
	return h
}

// Register attaches the health service to srv.
func (h *Handler) Register(srv *grpc.Server) {
	healthpb.RegisterHealthServer(srv, h.health)
}

// Shutdown marks every service NOT_SERVING and ignores later updates.
func (h *Handler) Shutdown() {
	h.health.Shutdown()
}

// UnaryLogging logs one entry per unary call with its method, status code
// and duration.
func (h *Handler) UnaryLogging(ctx context.Context, req any, info *grpc.UnaryServerInfo, next grpc.UnaryHandler) (any, error) {
	start := time.Now()
	resp, err := next(ctx, req)

	h.logger.Info().
		Str("method", info.FullMethod).
		Str("code", status.Code(err).String()).
		Dur("duration", time.Since(start)).
		Send()

	return resp, err
}
