package main

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"
	"gorm.io/gorm"

	"github.com/KirkDiggler/rpg-toolkit/dice"
	"github.com/KirkDiggler/rpg-toolkit/events"
	grpc_logging "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/logging"
	grpc_recovery "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/recovery"

	"github.com/KirkDiggler/swn-ship-api/internal/config"
	"github.com/KirkDiggler/swn-ship-api/internal/engine/rpgtoolkit"
	"github.com/KirkDiggler/swn-ship-api/internal/entities/swn"
	"github.com/KirkDiggler/swn-ship-api/internal/handlers/ship/v1alpha1"
	shiporchestrator "github.com/KirkDiggler/swn-ship-api/internal/orchestrators/ship"
	"github.com/KirkDiggler/swn-ship-api/internal/pkg/clock"
	"github.com/KirkDiggler/swn-ship-api/internal/pkg/idgen"
	redisclient "github.com/KirkDiggler/swn-ship-api/internal/redis"
	"github.com/KirkDiggler/swn-ship-api/internal/repositories/crew"
	"github.com/KirkDiggler/swn-ship-api/internal/repositories/ledger"
	rolllog "github.com/KirkDiggler/swn-ship-api/internal/repositories/roll_log"
	shiprepo "github.com/KirkDiggler/swn-ship-api/internal/repositories/ship"
)

var (
	grpcPort int
)

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Start the gRPC server",
	Long:  `Start the ship operations gRPC server backed by Redis and the SQLite ledger.`,
	RunE:  runServer,
}

func init() {
	serverCmd.Flags().IntVar(&grpcPort, "port", 0, "gRPC server port (overrides server.port)")
}

func runServer(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("port") {
		cfg.Server.Port = grpcPort
	}

	logger := cfg.Logging.NewLogger(os.Stderr)
	slog.SetDefault(logger)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigChan
		slog.Info("received shutdown signal, gracefully stopping")
		cancel()
	}()

	redisClient, err := newRedisClient(&cfg.Redis)
	if err != nil {
		return err
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			slog.Warn("failed to close redis client", "error", err)
		}
	}()
	if err := redisclient.Ping(ctx, redisClient, cfg.Redis.PingTimeout); err != nil {
		return err
	}

	db, err := ledger.OpenSQLite(cfg.Ledger.DSN)
	if err != nil {
		return fmt.Errorf("failed to open ledger: %w", err)
	}
	defer func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close() // nolint:errcheck // process is exiting
		}
	}()

	hulls, err := loadHullTable(cfg.Rules.HullTablePath)
	if err != nil {
		return err
	}

	shipService, err := buildShipService(redisClient, db, hulls, cfg)
	if err != nil {
		return err
	}

	shipHandler, err := v1alpha1.NewHandler(&v1alpha1.HandlerConfig{
		ShipService: shipService,
	})
	if err != nil {
		return fmt.Errorf("failed to create ship handler: %w", err)
	}

	lis, err := net.Listen("tcp", fmt.Sprintf(":%d", cfg.Server.Port))
	if err != nil {
		return fmt.Errorf("failed to listen: %w", err)
	}

	grpcLogger := grpc_logging.LoggerFunc(logFunc(logger))
	srv := grpc.NewServer(
		grpc.ChainUnaryInterceptor(
			grpc_logging.UnaryServerInterceptor(grpcLogger),
			grpc_recovery.UnaryServerInterceptor(),
		),
		grpc.ChainStreamInterceptor(
			grpc_logging.StreamServerInterceptor(grpcLogger),
			grpc_recovery.StreamServerInterceptor(),
		),
	)

	v1alpha1.RegisterShipServiceServer(srv, shipHandler)

	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(srv, healthServer)

	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	healthServer.SetServingStatus(v1alpha1.ServiceName, grpc_health_v1.HealthCheckResponse_SERVING)

	if cfg.Server.Reflection {
		reflection.Register(srv)
	}

	errChan := make(chan error, 1)
	go func() {
		slog.Info("gRPC server starting", "port", cfg.Server.Port)
		if err := srv.Serve(lis); err != nil {
			errChan <- fmt.Errorf("failed to serve: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		slog.Info("shutting down gRPC server")
		healthServer.Shutdown()

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer shutdownCancel()

		stopped := make(chan struct{})
		go func() {
			srv.GracefulStop()
			close(stopped)
		}()

		select {
		case <-shutdownCtx.Done():
			slog.Warn("graceful shutdown timeout exceeded, forcing stop")
			srv.Stop()
		case <-stopped:
			slog.Info("server stopped gracefully")
		}

		return nil
	case err := <-errChan:
		return err
	}
}

func newRedisClient(cfg *config.RedisConfig) (redisclient.Client, error) {
	opts := &redisclient.Options{
		Password: cfg.Password,
		DB:       cfg.DB,
		PoolSize: cfg.PoolSize,
		UseTLS:   cfg.UseTLS,
	}

	switch cfg.Mode {
	case "cluster":
		return redisclient.NewClusterClient(cfg.Addrs, opts)
	case "failover":
		return redisclient.NewFailoverClient(cfg.Master, cfg.Addrs, opts)
	default:
		return redisclient.NewClient(cfg.Addr, opts)
	}
}

func loadHullTable(path string) (*swn.HullTable, error) {
	if path == "" {
		return swn.DefaultHullTable(), nil
	}

	data, err := os.ReadFile(path) // #nosec G304 operator supplied config path
	if err != nil {
		return nil, fmt.Errorf("failed to read hull table: %w", err)
	}
	table, err := swn.ParseHullTable(data)
	if err != nil {
		return nil, err
	}

	slog.Info("loaded hull table", "path", path, "hulls", len(table.Hulls))
	return table, nil
}

func buildShipService(
	client redisclient.Client,
	db *gorm.DB,
	hulls *swn.HullTable,
	cfg *config.Config,
) (*shiporchestrator.Orchestrator, error) {
	clk := clock.New()

	bus := events.NewBus()
	rpgtoolkit.SubscribeAudit(bus, slog.Default())

	shipEngine, err := rpgtoolkit.NewAdapter(&rpgtoolkit.AdapterConfig{
		HullTable:  hulls,
		DiceRoller: dice.DefaultRoller,
		EventBus:   bus,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create engine: %w", err)
	}

	ships, err := shiprepo.NewRedis(&shiprepo.RedisConfig{Client: client, Clock: clk})
	if err != nil {
		return nil, fmt.Errorf("failed to create ship repository: %w", err)
	}

	crewRepo, err := crew.NewRedisRepository(&crew.Config{Client: client})
	if err != nil {
		return nil, fmt.Errorf("failed to create crew repository: %w", err)
	}

	rolls, err := rolllog.NewRedisRepository(&rolllog.Config{
		Client:     client,
		Clock:      clk,
		MaxEntries: cfg.RollLog.MaxEntries,
		TTL:        cfg.RollLog.TTL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create roll log repository: %w", err)
	}

	ledgerRepo, err := ledger.NewGorm(&ledger.GormConfig{DB: db, Clock: clk})
	if err != nil {
		return nil, fmt.Errorf("failed to create ledger repository: %w", err)
	}

	orchestrator, err := shiporchestrator.New(&shiporchestrator.Config{
		Engine:      shipEngine,
		ShipRepo:    ships,
		CrewRepo:    crewRepo,
		RollLogRepo: rolls,
		LedgerRepo:  ledgerRepo,
		IDGenerator: idgen.NewUUID(""),
		Clock:       clk,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create ship orchestrator: %w", err)
	}

	return orchestrator, nil
}

func logFunc(logger *slog.Logger) func(ctx context.Context, level grpc_logging.Level, msg string, fields ...any) {
	return func(ctx context.Context, level grpc_logging.Level, msg string, fields ...any) {
		logger.Log(ctx, slog.Level(level), msg, fields...)
	}
}
