package main

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	httpAdapter "github.com/lmukoya96/FixedAssetsModule/internal/adapter/http"
	"github.com/lmukoya96/FixedAssetsModule/internal/adapter/http/handler"
	"github.com/lmukoya96/FixedAssetsModule/internal/adapter/http/middleware"
	postgresRepo "github.com/lmukoya96/FixedAssetsModule/internal/adapter/repository/postgres"
	redisRepo "github.com/lmukoya96/FixedAssetsModule/internal/adapter/repository/redis"
	"github.com/lmukoya96/FixedAssetsModule/internal/infrastructure/auth"
	"github.com/lmukoya96/FixedAssetsModule/internal/infrastructure/config"
	"github.com/lmukoya96/FixedAssetsModule/internal/infrastructure/eventpublisher"
	"github.com/lmukoya96/FixedAssetsModule/internal/infrastructure/metrics"
	"github.com/lmukoya96/FixedAssetsModule/internal/infrastructure/postgres"
	"github.com/lmukoya96/FixedAssetsModule/internal/infrastructure/redis"
	"github.com/lmukoya96/FixedAssetsModule/internal/usecase"
)

const (
	limiterCleanupInterval = 10 * time.Minute
	limiterIdleTimeout     = time.Hour
	workerStopTimeout      = 5 * time.Second
)

// app owns the process-wide resources of the server.
type app struct {
	cfg         *config.Config
	logger      zerolog.Logger
	pool        *pgxpool.Pool
	redisClient *goredis.Client
	metrics     *metrics.Metrics
	outboxRepo  usecase.OutboxRepository
	rateLimiter *middleware.RateLimiter
	router      http.Handler

	workers sync.WaitGroup
}

func newApp(ctx context.Context, cfg *config.Config, logger zerolog.Logger) (*app, error) {
	if cfg.RunMigrations {
		if err := postgres.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath, logger); err != nil {
			return nil, err
		}
	}

	// Connect to PostgreSQL
	pool, err := postgres.NewPoolWithConfig(ctx, postgres.PoolConfig{
		DatabaseURL:    cfg.DatabaseURL,
		MaxConns:       cfg.DatabaseMaxConns,
		MinConns:       cfg.DatabaseMinConns,
		ConnectTimeout: cfg.DatabaseTimeout,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to postgres: %w", err)
	}
	logger.Info().Msg("connected to postgres")

	// Connect to Redis
	redisClient, err := redis.NewClient(ctx, redis.Config{URL: cfg.RedisURL, PoolSize: cfg.RedisPoolSize})
	if err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}
	logger.Info().Msg("connected to redis")

	a := &app{
		cfg:         cfg,
		logger:      logger,
		pool:        pool,
		redisClient: redisClient,
		metrics:     metrics.New(),
		outboxRepo:  newOutboxRepository(cfg.EventsEnabled, pool),
	}
	a.router = a.buildRouter()

	return a, nil
}

// newOutboxRepository returns the Postgres outbox, or a discarding one when
// events are disabled.
func newOutboxRepository(enabled bool, pool *pgxpool.Pool) usecase.OutboxRepository {
	if !enabled || pool == nil {
		return postgresRepo.NewNullOutboxRepository()
	}
	return postgresRepo.NewOutboxRepository(pool)
}

func (a *app) buildRouter() http.Handler {
	cfg := a.cfg

	// Initialize repositories
	txManager := postgresRepo.NewTxManager(a.pool, postgresRepo.WithLockTimeout(cfg.DatabaseLockTimeout))
	periodRepo := postgresRepo.NewPeriodRepository(a.pool)
	assetRepo := postgresRepo.NewAssetRepository(a.pool)
	policyRepo := postgresRepo.NewPolicyRepository(a.pool)
	costRepo := postgresRepo.NewCostRepository(a.pool)
	depRepo := postgresRepo.NewDepreciationRepository(a.pool)
	txLogRepo := postgresRepo.NewTransactionLogRepository(a.pool)
	cache := redisRepo.NewCache(a.redisClient)
	idempotencyStore := redisRepo.NewIdempotencyStore(a.redisClient)
	idGen := postgresRepo.NewULIDGenerator()

	// Initialize use cases
	calendar := usecase.NewPeriodCalendar(periodRepo, cache, cfg.PeriodCacheTTL, a.logger, a.metrics)
	policies := usecase.NewPolicyLookup(policyRepo, a.logger, a.metrics)

	scheduleUC := usecase.NewScheduleUseCase(usecase.ScheduleDependencies{
		TxManager:  txManager,
		Calendar:   calendar,
		Policies:   policies,
		AssetRepo:  assetRepo,
		PolicyRepo: policyRepo,
		CostRepo:   costRepo,
		DepRepo:    depRepo,
		TxLogRepo:  txLogRepo,
		OutboxRepo: a.outboxRepo,
		IDGen:      idGen,
		Retrier:    postgresRepo.NewRetrier(a.logger),
		Logger:     a.logger,
		Metrics:    a.metrics,
	}, usecase.ScheduleConfig{
		MaxYears:               cfg.ScheduleMaxYears,
		Workers:                cfg.RateChangeWorkers,
		RateChangeCostFeedback: cfg.RateChangeCostFeedback,
	})

	assetUC := usecase.NewAssetUseCase(txManager, assetRepo, a.outboxRepo, idGen, scheduleUC, a.logger, a.metrics)
	policyUC := usecase.NewPolicyUseCase(txManager, policyRepo, a.outboxRepo, idGen, scheduleUC, a.logger, a.metrics)
	reportUC := usecase.NewReportUseCase(assetRepo, costRepo, depRepo, txLogRepo)

	routerCfg := httpAdapter.RouterConfig{
		AssetHandler:  handler.NewAssetHandler(assetUC),
		ReportHandler: handler.NewReportHandler(reportUC),
		PolicyHandler: handler.NewPolicyHandler(policyUC),
		HealthHandler: handler.NewHealthHandler(
			handler.PingerFunc(a.pool.Ping),
			handler.PingerFunc(func(ctx context.Context) error { return a.redisClient.Ping(ctx).Err() }),
		),
		Idempotency:    middleware.NewIdempotencyMiddleware(idempotencyStore, cfg.IdempotencyTTL, a.logger),
		HTTPMetrics:    middleware.NewHTTPMetrics(prometheus.DefaultRegisterer),
		AllowedOrigins: cfg.CORSAllowedOrigins,
		Logger:         a.logger,
	}

	if cfg.RateLimitRPS > 0 {
		a.rateLimiter = middleware.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst)
		routerCfg.RateLimiter = a.rateLimiter
	}

	if cfg.AuthEnabled {
		routerCfg.TokenVerifier = auth.NewJWTManager(cfg.JWTSecret, cfg.JWTExpiration)
		a.logger.Info().Msg("bearer authentication enabled")
	}

	return httpAdapter.NewRouter(routerCfg)
}

// startWorkers runs the outbox publisher and limiter cleanup until ctx ends.
func (a *app) startWorkers(ctx context.Context) {
	if a.cfg.EventsEnabled {
		publisher := eventpublisher.NewEventPublisher(eventpublisher.Config{
			OutboxRepo: a.outboxRepo,
			Publisher:  a.eventSink(),
			Logger:     a.logger.With().Str("component", "event_publisher").Logger(),
			Metrics:    a.metrics,
			BatchSize:  a.cfg.EventsBatchSize,
			Interval:   a.cfg.EventsInterval,
			Retention:  a.cfg.EventsRetention,
		})

		a.workers.Add(1)
		go func() {
			defer a.workers.Done()
			_ = publisher.Start(ctx)
		}()
	}

	if a.rateLimiter != nil {
		a.workers.Add(1)
		go func() {
			defer a.workers.Done()
			a.rateLimiter.RunCleanup(ctx, limiterCleanupInterval, limiterIdleTimeout)
		}()
	}
}

// eventSink publishes to the Redis channel, or only logs when no channel is set.
func (a *app) eventSink() eventpublisher.Publisher {
	if a.cfg.EventsChannel == "" {
		return eventpublisher.NewLogPublisher(a.logger)
	}
	return eventpublisher.NewRedisPublisher(a.redisClient, a.cfg.EventsChannel, eventpublisher.BreakerConfig{}, a.logger)
}

// wait blocks until workers exit or timeout elapses.
func (a *app) wait(timeout time.Duration) {
	done := make(chan struct{})
	go func() {
		a.workers.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(timeout):
		a.logger.Warn().Msg("workers did not stop in time")
	}
}

func (a *app) Close() {
	if err := a.redisClient.Close(); err != nil {
		a.logger.Warn().Err(err).Msg("failed to close redis client")
	}
	a.pool.Close()
}

func serverAddr(port string) string {
	return fmt.Sprintf(":%s", port)
}
