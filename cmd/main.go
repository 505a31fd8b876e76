package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jmoiron/sqlx"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"

	"github.com/sbilibin2017/gw-currency-converter/docs"
	"github.com/sbilibin2017/gw-currency-converter/internal/config"
	"github.com/sbilibin2017/gw-currency-converter/internal/facades"
	"github.com/sbilibin2017/gw-currency-converter/internal/handlers"
	"github.com/sbilibin2017/gw-currency-converter/internal/logger"
	"github.com/sbilibin2017/gw-currency-converter/internal/metrics"
	"github.com/sbilibin2017/gw-currency-converter/internal/middlewares"
	"github.com/sbilibin2017/gw-currency-converter/internal/repositories"
	"github.com/sbilibin2017/gw-currency-converter/internal/services"

	_ "github.com/jackc/pgx/v5/stdlib"
	pb "github.com/sbilibin2017/proto-exchange/exchange"
	httpSwagger "github.com/swaggo/http-swagger"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// @title gw-currency-converter API
// @version 1.0.0
// @description Currency conversion and comparison service
// @host localhost:8080
// @BasePath /api/v1
// @schemes http
func main() {
	printBuildInfo()
	configPath := parseFlags()

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(), cfg); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Version: %s\nCommit: %s\nBuild: %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// closer releases a resource opened during start-up.
type closer func()

// newStore opens the configured key-value backend. For postgres it also
// returns the transaction middleware for persisting routes.
func newStore(ctx context.Context, cfg *config.Config) (services.KeyValueStore, []func(http.Handler) http.Handler, closer, error) {
	switch cfg.Store.Backend {
	case config.StoreRedis:
		rdb := redis.NewClient(&redis.Options{
			Addr:         fmt.Sprintf("%s:%d", cfg.Redis.Host, cfg.Redis.Port),
			Password:     cfg.Redis.Password,
			DB:           cfg.Redis.DB,
			PoolSize:     cfg.Redis.PoolSize,
			MinIdleConns: cfg.Redis.MinIdleConns,
		})
		if err := rdb.Ping(ctx).Err(); err != nil {
			rdb.Close()
			return nil, nil, nil, fmt.Errorf("redis connection error: %w", err)
		}
		return repositories.NewRedisKVRepository(rdb), nil, func() { rdb.Close() }, nil

	case config.StorePostgres:
		db, err := sqlx.ConnectContext(ctx, "pgx", cfg.Postgres.DSN())
		if err != nil {
			return nil, nil, nil, fmt.Errorf("postgres connection error: %w", err)
		}
		db.SetMaxOpenConns(cfg.Postgres.MaxOpenConns)
		db.SetMaxIdleConns(cfg.Postgres.MaxIdleConns)
		if err := repositories.EnsurePreferencesSchema(ctx, db); err != nil {
			db.Close()
			return nil, nil, nil, err
		}
		repo := repositories.NewPostgresKVRepository(db, middlewares.GetTxFromContext)
		mws := []func(http.Handler) http.Handler{middlewares.TxMiddleware(db)}
		return repo, mws, func() { db.Close() }, nil

	default:
		db, err := repositories.OpenBolt(cfg.Store.BoltPath)
		if err != nil {
			return nil, nil, nil, err
		}
		return repositories.NewBoltKVRepository(db), nil, func() { db.Close() }, nil
	}
}

// newGateway builds the configured exchange rate gateway.
func newGateway(cfg *config.Config, m *metrics.Metrics) (services.RateGateway, closer, error) {
	if cfg.Gateway.Kind == config.GatewayGRPC {
		grpcAddr := fmt.Sprintf("%s:%s", cfg.Gateway.GRPCHost, cfg.Gateway.GRPCPort)
		conn, err := grpc.NewClient(grpcAddr, grpc.WithTransportCredentials(insecure.NewCredentials()))
		if err != nil {
			return nil, nil, fmt.Errorf("failed to connect to gRPC service at %s: %w", grpcAddr, err)
		}
		client := pb.NewExchangeServiceClient(conn)
		return facades.NewExchangeRatesGRPCFacade(client, m), func() { conn.Close() }, nil
	}

	httpClient := &http.Client{Timeout: cfg.Gateway.Timeout}
	return facades.NewExchangeRatesHTTPFacade(cfg.Gateway.BaseURL, httpClient, m), func() {}, nil
}

// newKafkaWriter returns nil when no brokers are configured.
func newKafkaWriter(cfg *config.Config) services.KafkaWriter {
	if len(cfg.Kafka.Brokers) == 0 {
		return nil
	}
	return &kafka.Writer{
		Addr:                   kafka.TCP(cfg.Kafka.Brokers...),
		Topic:                  cfg.Kafka.Topic,
		Balancer:               &kafka.LeastBytes{},
		AllowAutoTopicCreation: true,
	}
}

// run initializes the logger, storage, rate gateway and HTTP server.
// It sets up routes, applies middleware, and handles graceful shutdown.
func run(ctx context.Context, cfg *config.Config) error {
	// Initialize logger
	if err := logger.Initialize(cfg.App.LogLevel); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	log := logger.Log
	defer log.Sync()
	log.Infof("Logger initialized with level %s", cfg.App.LogLevel)

	// Metrics
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	m := metrics.New(reg)

	// Storage
	store, writeMiddlewares, closeStore, err := newStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeStore()
	log.Infow("preferences store ready", "backend", cfg.Store.Backend)

	// Rate gateway
	gateway, closeGateway, err := newGateway(cfg, m)
	if err != nil {
		return err
	}
	defer closeGateway()
	log.Infow("rate gateway ready", "kind", cfg.Gateway.Kind)

	// Conversion events
	kafkaWriter := newKafkaWriter(cfg)
	if kafkaWriter != nil {
		defer kafkaWriter.Close()
	}

	// Initialize services
	catalog := services.NewCatalogService(gateway)
	favorites := services.NewFavoritesService(store, m)
	history := services.NewHistoryService(store, m)
	conversion := services.NewConversionController(gateway, history, kafkaWriter, m)
	comparison := services.NewComparisonAggregator(gateway, catalog, m)

	favorites.Load(ctx)
	history.Load(ctx)
	if _, err := catalog.Refresh(ctx); err != nil {
		log.Warnw("starting without currency catalog", "error", err)
	}
	if _, err := comparison.Refresh(ctx); err != nil {
		log.Warnw("initial comparison refresh failed", "error", err)
	}

	// Setup router
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware(log))

	r.Route("/api/v1", func(r chi.Router) {
		handlers.RegisterRoutes(r, handlers.Services{
			Catalog:    catalog,
			Favorites:  favorites,
			History:    history,
			Conversion: conversion,
			Comparison: comparison,
		}, writeMiddlewares...)
	})

	r.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))

	docs.SwaggerInfo.Host = cfg.App.Addr()
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://%s/swagger/doc.json", cfg.App.Addr())),
	))

	srv := &http.Server{
		Addr:    cfg.App.Addr(),
		Handler: r,
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		log.Infof("HTTP server listening on %s", cfg.App.Addr())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()

	select {
	case <-ctxShutdown.Done():
		log.Info("Shutdown signal received, stopping HTTP server...")
	case serveErr := <-errChan:
		return serveErr
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Errorw("HTTP server shutdown error", "error", err)
	}

	log.Info("HTTP server stopped gracefully")
	return nil
}
