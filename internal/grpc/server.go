package grpc

import (
	"fmt"
	"net"

	"github.com/rs/zerolog"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"github.com/weiawesome/wes-io-live/ulid-service/internal/generator"
	pkglog "github.com/weiawesome/wes-io-live/ulid-service/pkg/log"
)

// ServiceName is the health service name for the process as a whole.
// Each format is reported under ServiceName + "." + format.
const ServiceName = "ulid.v1.ULIDService"

// NewServer builds the gRPC server with logging interceptors and a health
// service that reports SERVING for every format in the registry. Health is
// the only gRPC surface; ids are generated over HTTP and by ulidctl.
func NewServer(registry generator.Registry, logger zerolog.Logger) (*grpc.Server, *health.Server) {
	s := grpc.NewServer(
		grpc.UnaryInterceptor(pkglog.UnaryServerInterceptor(logger)),
		grpc.StreamInterceptor(pkglog.StreamServerInterceptor(logger)),
	)

	hs := health.NewServer()
	for format := range registry {
		hs.SetServingStatus(FormatServiceName(format), healthpb.HealthCheckResponse_SERVING)
	}
	hs.SetServingStatus(ServiceName, healthpb.HealthCheckResponse_SERVING)
	healthpb.RegisterHealthServer(s, hs)

	return s, hs
}

// FormatServiceName returns the health service name for one format.
func FormatServiceName(f generator.Format) string {
	return ServiceName + "." + string(f)
}

// StartGRPCServer creates and starts the gRPC server in a background goroutine.
func StartGRPCServer(addr string, registry generator.Registry, logger zerolog.Logger) (*grpc.Server, *health.Server, error) {
	lis, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to listen on %s: %w", addr, err)
	}

	s, hs := NewServer(registry, logger)

	go func() {
		logger.Info().Str("addr", addr).Msg("grpc server listening")
		if err := s.Serve(lis); err != nil {
			logger.Error().Err(err).Msg("grpc server error")
		}
	}()

	return s, hs, nil
}
