package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/ogurasousui/gymledger/internal/adapters/export/xlsx"
	"github.com/ogurasousui/gymledger/internal/adapters/grpc/handler"
	"github.com/ogurasousui/gymledger/internal/core/ledger"
	"github.com/ogurasousui/gymledger/internal/platform/config"
	"github.com/ogurasousui/gymledger/internal/platform/logging"
	"github.com/ogurasousui/gymledger/internal/platform/server"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "assets/local.yaml"
	}

	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatal().Err(err).Str("path", cfgPath).Msg("failed to load config")
	}

	logger, logCloser, err := logging.New(cfg.Logging)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize logger")
	}
	defer logCloser.Close()

	if err := run(logger.WithContext(ctx), cfg, logger); err != nil {
		event := logger.Error().Err(err)
		if errors.Is(err, ledger.ErrStoreUnavailable) {
			event = event.Str("driver", cfg.Database.Driver)
		}
		event.Msg("server stopped with error")
		_ = logCloser.Close()
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, logger zerolog.Logger) error {
	st, err := openStore(ctx, cfg.Database)
	if err != nil {
		return err
	}
	defer func() {
		if err := st.Close(); err != nil {
			logger.Warn().Err(err).Msg("failed to close store")
		}
	}()
	logger.Info().Str("driver", cfg.Database.Driver).Msg("store ready")

	svc := ledger.NewService(st.repo, nil, st.tx,
		ledger.WithExporter(xlsx.NewExporter()),
		ledger.WithDashboardOptions(ledger.DashboardOptions{
			Location:             cfg.Dashboard.Location(),
			TodoWindowDays:       cfg.Dashboard.TodoWindowDays,
			UpcomingAppointments: cfg.Dashboard.UpcomingAppointments,
		}),
	)

	grpcServer := server.New(cfg.Server.ListenAddr, handler.NewLedgerGrpcHandler(svc), logger)
	logger.Info().Str("addr", cfg.Server.ListenAddr).Msg("gRPC server listening")

	return grpcServer.Run(ctx)
}
