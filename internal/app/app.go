package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	httpapi "github.com/shestoi/GoBigTech/braintree/internal/api/http"
	"github.com/shestoi/GoBigTech/braintree/internal/braintree"
	"github.com/shestoi/GoBigTech/braintree/internal/config"
	"github.com/shestoi/GoBigTech/braintree/internal/event"
	eventkafka "github.com/shestoi/GoBigTech/braintree/internal/event/kafka"
	"github.com/shestoi/GoBigTech/braintree/internal/gateway"
	"github.com/shestoi/GoBigTech/braintree/internal/gateway/response"
	"github.com/shestoi/GoBigTech/braintree/internal/idempotency"
	"github.com/shestoi/GoBigTech/braintree/internal/report"
	"github.com/shestoi/GoBigTech/braintree/internal/repository"
	"github.com/shestoi/GoBigTech/braintree/internal/repository/memory"
	"github.com/shestoi/GoBigTech/braintree/internal/repository/postgres"
	"github.com/shestoi/GoBigTech/braintree/internal/service"
	platformhealth "github.com/shestoi/GoBigTech/braintree/platform/health/http"
	platformkafka "github.com/shestoi/GoBigTech/braintree/platform/kafka"
	platformlogging "github.com/shestoi/GoBigTech/braintree/platform/logging"
	platformobservability "github.com/shestoi/GoBigTech/braintree/platform/observability"
	platformshutdown "github.com/shestoi/GoBigTech/braintree/platform/shutdown"
)

const pingTimeout = 5 * time.Second

// App содержит зависимости сервиса и порядок их остановки
type App struct {
	logger      *zap.Logger
	httpServer  *http.Server
	shutdownMgr *platformshutdown.Manager
	wg          sync.WaitGroup
}

// Build собирает граф зависимостей. При ошибке уже созданные ресурсы закрываются.
func Build(ctx context.Context, cfg config.Config) (*App, error) {
	logger, err := platformlogging.New(cfg.Log)
	if err != nil {
		return nil, err
	}
	logger.Info("Building braintree service",
		zap.String("http_addr", cfg.HTTPAddr),
		zap.String("payment_storage", cfg.PaymentStorage),
		zap.String("processed_storage", cfg.ProcessedStorage),
		zap.Bool("kafka_enabled", cfg.KafkaEnabled),
		zap.String("braintree_environment", cfg.Braintree.Environment),
	)

	shutdownMgr := platformshutdown.New(cfg.ShutdownTimeout, logger)
	a := &App{logger: logger, shutdownMgr: shutdownMgr}
	if err := a.build(ctx, cfg); err != nil {
		if shutdownErr := shutdownMgr.Shutdown(context.Background()); shutdownErr != nil {
			logger.Error("Failed to release resources after build error", zap.Error(shutdownErr))
		}
		return nil, err
	}
	return a, nil
}

// build регистрирует ресурсы в shutdown manager сразу после создания;
// остановка идёт в обратном порядке: HTTP сервер первым, OTel последним.
func (a *App) build(ctx context.Context, cfg config.Config) error {
	otelShutdown, err := platformobservability.Init(ctx, cfg.OTel)
	if err != nil {
		return fmt.Errorf("init observability: %w", err)
	}
	a.shutdownMgr.Add("otel", otelShutdown)

	var checks []platformhealth.Check

	repo, check, err := a.buildPaymentRepository(ctx, cfg)
	if err != nil {
		return err
	}
	if check != nil {
		checks = append(checks, *check)
	}

	processed, check, err := a.buildProcessedStore(ctx, cfg)
	if err != nil {
		return err
	}
	if check != nil {
		checks = append(checks, *check)
	}

	publisher := a.buildPublisher(cfg)

	client, err := braintree.NewClient(cfg.Braintree.ClientConfig())
	if err != nil {
		return fmt.Errorf("create braintree client: %w", err)
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	adapter := gateway.NewAdapter(client, a.logger, gateway.NewMetrics(registry))

	paymentService := service.NewPaymentService(
		a.logger,
		repo,
		adapter,
		response.NewPayPalDetailsHandler(gateway.NewSubjectReader(), adapter),
		processed,
		publisher,
		cfg.ProcessedTTL,
	)
	reportService := service.NewReportService(a.logger, adapter, report.NewFilterMapper(), report.NewDocumentFactory())

	router := httpapi.NewRouter(httpapi.NewHandler(paymentService, reportService, a.logger), httpapi.RouterConfig{
		ServiceName:     config.ServiceName,
		AllowedOrigins:  cfg.CORSAllowedOrigins,
		ReportRateLimit: cfg.ReportRateLimit,
		HealthTimeout:   2 * time.Second,
		HealthChecks:    checks,
		Metrics:         promhttp.HandlerFor(registry, promhttp.HandlerOpts{Registry: registry}),
	}, a.logger)

	a.httpServer = &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		// поиск по шлюзу может занимать столько же, сколько таймаут клиента
		WriteTimeout: cfg.Braintree.Timeout + 15*time.Second,
		IdleTimeout:  60 * time.Second,
	}
	a.shutdownMgr.Add("http_server", platformshutdown.ShutdownHTTPServer(a.httpServer))
	return nil
}

func (a *App) buildPaymentRepository(ctx context.Context, cfg config.Config) (repository.PaymentRepository, *platformhealth.Check, error) {
	if cfg.PaymentStorage == config.StorageMemory {
		a.logger.Warn("Using in-memory payment repository, data is lost on restart")
		return memory.NewMemoryRepository(), nil, nil
	}

	a.logger.Info("Running migrations", zap.String("dsn", config.MaskDSN(cfg.PostgresDSN)))
	if err := postgres.Migrate(ctx, cfg.PostgresDSN); err != nil {
		return nil, nil, fmt.Errorf("migrate postgres: %w", err)
	}

	pool, err := pgxpool.New(ctx, cfg.PostgresDSN)
	if err != nil {
		return nil, nil, fmt.Errorf("create postgres pool: %w", err)
	}
	a.shutdownMgr.Add("postgres_pool", platformshutdown.ClosePool(pool))

	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()
	if err := pool.Ping(pingCtx); err != nil {
		return nil, nil, fmt.Errorf("ping postgres: %w", err)
	}
	a.logger.Info("PostgreSQL connection established")

	return postgres.NewRepository(pool), &platformhealth.Check{Name: "postgres", Fn: pool.Ping}, nil
}

func (a *App) buildProcessedStore(ctx context.Context, cfg config.Config) (service.ProcessedStore, *platformhealth.Check, error) {
	if cfg.ProcessedStorage == config.StorageMemory {
		a.logger.Warn("Using in-memory processed store, duplicates are detected per instance only")
		return idempotency.NewMemoryStore(), nil, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
	})
	a.shutdownMgr.Add("redis", platformshutdown.Close(client))

	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		return nil, nil, fmt.Errorf("ping redis: %w", err)
	}
	a.logger.Info("Redis connection established", zap.String("addr", cfg.RedisAddr))

	check := &platformhealth.Check{Name: "redis", Fn: func(ctx context.Context) error {
		return client.Ping(ctx).Err()
	}}
	return idempotency.NewRedisStore(client, a.logger), check, nil
}

func (a *App) buildPublisher(cfg config.Config) service.EventPublisher {
	if !cfg.KafkaEnabled {
		a.logger.Info("Kafka disabled, events are written to log")
		return event.NewLogPublisher(a.logger)
	}

	publisher := eventkafka.NewPaymentEventPublisher(a.logger, platformkafka.NewWriter(cfg.Kafka), cfg.EventsTopic)
	a.shutdownMgr.Add("kafka_writer", platformshutdown.Close(publisher))
	a.logger.Info("Kafka publisher created",
		zap.Strings("brokers", cfg.Kafka.Brokers),
		zap.String("topic", cfg.EventsTopic),
	)
	return publisher
}

// Run запускает HTTP сервер и блокируется до сигнала или ошибки сервера
func (a *App) Run(ctx context.Context) error {
	defer platformlogging.Sync(a.logger)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	a.logger.Info("Starting braintree service", zap.String("addr", a.httpServer.Addr))

	var serveErr error
	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		if err := a.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.logger.Error("HTTP server error", zap.Error(err))
			serveErr = err
			cancel()
		}
	}()

	shutdownErr := a.shutdownMgr.Wait(ctx)
	a.wg.Wait()

	a.logger.Info("Braintree service stopped")
	return errors.Join(serveErr, shutdownErr)
}
