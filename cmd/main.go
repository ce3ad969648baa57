package main

import (
	"context"
	"crypto/tls"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/extra/redisotel/v9"
	"github.com/redis/go-redis/v9"

	"github.com/KasumiMercury/primind-notification-scheduler/internal/config"
	"github.com/KasumiMercury/primind-notification-scheduler/internal/handler"
	"github.com/KasumiMercury/primind-notification-scheduler/internal/health"
	"github.com/KasumiMercury/primind-notification-scheduler/internal/infra/platform"
	"github.com/KasumiMercury/primind-notification-scheduler/internal/infra/repository"
	"github.com/KasumiMercury/primind-notification-scheduler/internal/infra/sweeprecorder"
	"github.com/KasumiMercury/primind-notification-scheduler/internal/observability"
	"github.com/KasumiMercury/primind-notification-scheduler/internal/observability/logging"
	"github.com/KasumiMercury/primind-notification-scheduler/internal/observability/metrics"
	"github.com/KasumiMercury/primind-notification-scheduler/internal/observability/middleware"
	"github.com/KasumiMercury/primind-notification-scheduler/internal/service/generator"
	"github.com/KasumiMercury/primind-notification-scheduler/internal/service/horizon"
	"github.com/KasumiMercury/primind-notification-scheduler/internal/service/reminder"
	"github.com/KasumiMercury/primind-notification-scheduler/internal/service/response"
	"github.com/KasumiMercury/primind-notification-scheduler/internal/service/sweep"
)

// Version is set via ldflags at build time
var Version = "dev"

const (
	serviceModule      = logging.Module("notification-scheduler")
	defaultServiceName = "scheduler"
)

func main() {
	os.Exit(run())
}

func run() int {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	obs, err := observability.Init(ctx, observabilityConfig())
	if err != nil {
		slog.Error("failed to initialize observability", slog.String("error", err.Error()))
		return 1
	}
	defer func() {
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer shutdownCancel()
		if err := obs.Shutdown(shutdownCtx); err != nil {
			slog.Warn("observability shutdown error", slog.String("error", err.Error()))
		}
	}()

	slog.SetDefault(obs.Logger())

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", slog.String("error", err.Error()))
		return 1
	}
	obs.SetLogLevel(cfg.LogLevel)

	if err := config.ValidateForRun(cfg); err != nil {
		slog.Error("configuration validation error", slog.String("error", err.Error()))
		return 1
	}

	httpMetrics, err := metrics.NewHTTPMetrics()
	if err != nil {
		slog.Error("failed to initialize HTTP metrics", slog.String("error", err.Error()))
		return 1
	}

	schedulerMetrics, err := metrics.NewSchedulerMetrics()
	if err != nil {
		slog.Error("failed to initialize scheduler metrics", slog.String("error", err.Error()))
		return 1
	}

	// Sweep result recorder: InfluxDB for local, BigQuery for gcloud
	resultRecorder, err := sweeprecorder.NewRecorder(ctx, sweeprecorder.LoadConfig())
	if err != nil {
		slog.Error("failed to initialize sweep result recorder", slog.String("error", err.Error()))
		return 1
	}
	defer func() {
		if err := resultRecorder.Close(); err != nil {
			slog.Warn("failed to close sweep result recorder", slog.String("error", err.Error()))
		}
	}()

	store, err := repository.Open(cfg.Database.Driver, cfg.Database.DSN)
	if err != nil {
		slog.Error("failed to open database",
			slog.String("event", "database.open.fail"),
			slog.String("driver", cfg.Database.Driver),
			slog.String("error", err.Error()),
		)
		return 1
	}
	defer func() {
		if err := store.Close(); err != nil {
			slog.Warn("failed to close database", slog.String("error", err.Error()))
		}
	}()

	slog.Info("database connected", slog.String("driver", cfg.Database.Driver))

	taskQueue, closeQueue, err := newAlarmQueue(ctx, cfg.TaskQueue)
	if err != nil {
		slog.Error("failed to initialize alarm delivery queue", slog.String("error", err.Error()))
		return 1
	}
	if closeQueue != nil {
		defer func() {
			if err := closeQueue(); err != nil {
				slog.Warn("failed to close alarm delivery queue", slog.String("error", err.Error()))
			}
		}()
	}

	redisOpts := &redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	}
	if cfg.Redis.TLS {
		redisOpts.TLSConfig = &tls.Config{MinVersion: tls.VersionTLS12}
	}
	redisClient := redis.NewClient(redisOpts)

	if err := redisotel.InstrumentTracing(redisClient); err != nil {
		slog.Error("failed to instrument redis tracing",
			slog.String("event", "redis.otel.tracing.fail"),
			slog.String("error", err.Error()),
		)
		return 1
	}

	if err := redisotel.InstrumentMetrics(redisClient); err != nil {
		slog.Error("failed to instrument redis metrics",
			slog.String("event", "redis.otel.metrics.fail"),
			slog.String("error", err.Error()),
		)
		return 1
	}

	if err := redisClient.Ping(ctx).Err(); err != nil {
		slog.Error("failed to connect redis",
			slog.String("event", "redis.connect.fail"),
			slog.String("error", err.Error()),
		)
		return 1
	}

	defer func() {
		if err := redisClient.Close(); err != nil {
			slog.Warn("failed to close redis client", slog.String("error", err.Error()))
		}
	}()

	slog.Info("redis connected",
		slog.String("addr", cfg.Redis.Addr),
		slog.String("alarm_registry", cfg.Redis.RegistryKey),
	)

	alarms := platform.NewAlarmScheduler(redisClient, taskQueue, platform.WithRegistryKey(cfg.Redis.RegistryKey))

	gen := generator.New(nil, cfg.Location)
	horizonService := horizon.NewService(store, store, store, gen,
		horizon.WithMaxIterations(cfg.Horizon.MaxIterations),
		horizon.WithMetrics(schedulerMetrics),
	)

	sweepService := sweep.NewService(store, store, horizonService, alarms, resultRecorder, schedulerMetrics, sweep.Config{
		DesiredCount:         cfg.Horizon.DesiredCount,
		Bias:                 cfg.Horizon.Bias,
		PlatformHorizonLimit: cfg.Sweep.PlatformHorizonLimit,
	})
	sweepRunner := sweep.NewRunner(sweepService, cfg.Sweep.Interval)

	reminderService := reminder.NewService(store, store, store, horizonService, sweepRunner,
		cfg.Horizon.DesiredCount, cfg.Horizon.Bias)
	responseService := response.NewService(store, store, horizonService, sweepRunner,
		cfg.Horizon.DesiredCount, cfg.Horizon.Bias)

	// Setup router with observability middleware
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(middleware.Gin(middleware.GinConfig{
		SkipPaths:   []string{"/health", "/health/live", "/health/ready"},
		Module:      serviceModule,
		TracerName:  "github.com/KasumiMercury/primind-notification-scheduler/internal/observability/middleware",
		HTTPMetrics: httpMetrics,
	}))
	r.Use(middleware.PanicRecoveryGin())

	healthChecker := health.NewChecker(redisClient, store, Version)
	r.GET("/health/live", healthChecker.LiveHandler())
	r.GET("/health/ready", healthChecker.ReadyHandler())
	r.GET("/health", healthChecker.ReadyHandler())

	handler.Handlers{
		Reminders:     handler.NewReminderHandler(reminderService, horizonService, cfg.Horizon.DesiredCount, cfg.Horizon.Bias),
		Schedules:     handler.NewScheduleHandler(reminderService),
		Notifications: handler.NewNotificationHandler(responseService),
		Sweep:         handler.NewSweepHandler(sweepService),
	}.Register(r.Group("/api/v1"))

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	var wg sync.WaitGroup
	wg.Go(func() {
		sweepRunner.Start(logging.WithModule(ctx, "sweep"))
	})

	serverErr := make(chan error, 1)
	go func() {
		slog.Info("starting server",
			slog.String("port", cfg.Port),
			slog.String("timezone", cfg.Location.String()),
			slog.Int("desired_count", cfg.Horizon.DesiredCount),
			slog.Float64("bias", cfg.Horizon.Bias),
			slog.Duration("sweep_interval", cfg.Sweep.Interval),
		)
		serverErr <- srv.ListenAndServe()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	exitCode := 0
	select {
	case sig := <-quit:
		slog.Info("shutdown signal received", slog.String("signal", sig.String()))

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			slog.Error("failed to shutdown server", slog.String("error", err.Error()))
			exitCode = 1
		} else {
			slog.Info("server exited properly")
		}

	case err := <-serverErr:
		if !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server exited with error", slog.String("error", err.Error()))
			exitCode = 1
		}
	}

	cancel()
	wg.Wait()
	return exitCode
}
