package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/weiawesome/wes-io-live/ulid-service/internal/config"
	"github.com/weiawesome/wes-io-live/ulid-service/internal/generator"
	ulidgrpc "github.com/weiawesome/wes-io-live/ulid-service/internal/grpc"
	"github.com/weiawesome/wes-io-live/ulid-service/internal/handler"
	pkglog "github.com/weiawesome/wes-io-live/ulid-service/pkg/log"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		l := pkglog.L()
		l.Fatal().Err(err).Msg("failed to load config")
	}

	pkglog.Init(pkglog.Config{
		Level:       cfg.Log.Level,
		Pretty:      cfg.Log.Pretty,
		ServiceName: "ulid-service",
	})
	logger := pkglog.L()

	logger.Info().Msg("starting ulid-service")

	// Initialize entropy source
	entropy, err := generator.NewEntropy(cfg.Entropy.Source, cfg.Entropy.Seed)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to create entropy source")
	}
	if cfg.Entropy.Source == generator.EntropySeeded {
		logger.Warn().Int64("seed", cfg.Entropy.Seed).Msg("seeded entropy is deterministic, do not use in production")
	}

	// Initialize generators, one per format
	registry, err := generator.NewRegistry(time.Now, entropy)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to create generators")
	}
	if _, _, err := registry.Get(cfg.Generator.Format); err != nil {
		logger.Fatal().Err(err).Msg("invalid default format")
	}
	logger.Info().
		Str(pkglog.FieldIDFormat, cfg.Generator.Format).
		Str(pkglog.FieldEntropy, cfg.Entropy.Source).
		Int("max_batch", cfg.Generator.MaxBatch).
		Msg("generators initialized")

	// Start gRPC server
	grpcAddr := fmt.Sprintf("%s:%d", cfg.GRPC.Host, cfg.GRPC.Port)
	grpcServer, healthServer, err := ulidgrpc.StartGRPCServer(grpcAddr, registry, logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to start grpc server")
	}

	// Setup Gin router
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(pkglog.GinMiddleware(logger))
	handler.NewHandler(registry, cfg.Generator.Format, cfg.Generator.MaxBatch).RegisterRoutes(r)

	httpAddr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	httpServer := &http.Server{Addr: httpAddr, Handler: r}
	go func() {
		logger.Info().Str("addr", httpAddr).Msg("http server listening")
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal().Err(err).Msg("failed to start http server")
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info().Msg("shutting down ulid-service")
	healthServer.Shutdown()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(ctx); err != nil {
		logger.Error().Err(err).Msg("http server shutdown error")
	}
	grpcServer.GracefulStop()
	logger.Info().Msg("ulid-service stopped")
}
