package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/filmtv1308-cmyk/Big-TeleSales/internal/calendar"
	"github.com/filmtv1308-cmyk/Big-TeleSales/internal/config"
	"github.com/filmtv1308-cmyk/Big-TeleSales/internal/handler"
	"github.com/filmtv1308-cmyk/Big-TeleSales/internal/health"
	"github.com/filmtv1308-cmyk/Big-TeleSales/internal/infra/messaging"
	"github.com/filmtv1308-cmyk/Big-TeleSales/internal/infra/runrecorder"
	"github.com/filmtv1308-cmyk/Big-TeleSales/internal/jobs"
	"github.com/filmtv1308-cmyk/Big-TeleSales/internal/observability/logging"
	"github.com/filmtv1308-cmyk/Big-TeleSales/internal/observability/metrics"
	"github.com/filmtv1308-cmyk/Big-TeleSales/internal/observability/middleware"
	"github.com/filmtv1308-cmyk/Big-TeleSales/internal/service/cleanup"
	"github.com/filmtv1308-cmyk/Big-TeleSales/internal/service/migration"
	"github.com/filmtv1308-cmyk/Big-TeleSales/internal/service/plan"
	"github.com/filmtv1308-cmyk/Big-TeleSales/internal/session"
)

// Version is set via ldflags at build time
var Version = "dev"

func main() {
	os.Exit(run())
}

func run() int {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		slog.Warn("failed to load .env file", slog.String("error", err.Error()))
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", slog.String("error", err.Error()))
		return 1
	}

	obs, err := initObservability(ctx, cfg)
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

	if err := config.ValidateForRun(cfg); err != nil {
		slog.Error("configuration validation error", slog.String("error", err.Error()))
		return 1
	}

	httpMetrics, err := metrics.NewHTTPMetrics()
	if err != nil {
		slog.Error("failed to initialize HTTP metrics", slog.String("error", err.Error()))
		return 1
	}

	planMetrics, err := metrics.NewPlanMetrics()
	if err != nil {
		slog.Error("failed to initialize plan metrics", slog.String("error", err.Error()))
		return 1
	}

	// InfluxDB for local builds, BigQuery for gcloud
	runRecorder, err := runrecorder.NewRecorder(ctx, runrecorder.LoadConfig())
	if err != nil {
		slog.Error("failed to initialize plan run recorder", slog.String("error", err.Error()))
		return 1
	}
	defer func() {
		if err := runRecorder.Close(); err != nil {
			slog.Warn("failed to close plan run recorder", slog.String("error", err.Error()))
		}
	}()

	store, err := openStorage(ctx, cfg)
	if err != nil {
		slog.Error("failed to open storage",
			slog.String("backend", string(cfg.Storage.Backend)),
			slog.String("error", err.Error()),
		)
		return 1
	}
	defer func() {
		if err := store.close(); err != nil {
			slog.Warn("failed to close storage", slog.String("error", err.Error()))
		}
	}()

	zones := calendar.NewSource(store.settings, cfg.Schedule.TimeZone)
	if _, err := zones.Resolver(ctx); err != nil {
		slog.Error("invalid time zone configuration", slog.String("error", err.Error()))
		return 1
	}

	planService := plan.NewService(
		store.routes,
		store.outlets,
		store.visits,
		session.NewContextProvider(),
		runRecorder,
		planMetrics,
	)
	reaper := cleanup.NewReaper(store.visits, planMetrics)
	routeMigration := migration.NewService(store.routes)

	if cfg.Schedule.MaintenanceEnabled {
		maintenance := jobs.NewMaintenanceJob(jobs.MaintenanceConfig{
			Spec:          cfg.Schedule.MaintenanceCron,
			HorizonDays:   cfg.Schedule.PlanningHorizonDays,
			RetentionDays: cfg.Schedule.StaleRetentionDays,
		}, reaper, planService, zones)
		if err := maintenance.Start(ctx); err != nil {
			slog.Error("failed to start maintenance job", slog.String("error", err.Error()))
			return 1
		}
		defer maintenance.Stop()
	}

	if cfg.Messaging.Enabled() {
		importHandler := messaging.NewRouteImportHandler(planService, zones, cfg.Schedule.PlanningHorizonDays)
		consumer, err := messaging.NewConsumer(cfg.Messaging.URL, cfg.Messaging.RouteImportQueue, cfg.Messaging.Prefetch, importHandler)
		if err != nil {
			slog.Error("failed to start route import consumer", slog.String("error", err.Error()))
			return 1
		}
		defer func() {
			if err := consumer.Close(); err != nil {
				slog.Warn("failed to close route import consumer", slog.String("error", err.Error()))
			}
		}()

		go func() {
			if err := consumer.Run(ctx); err != nil {
				slog.Error("route import consumer stopped",
					slog.String("event", "route_import.consumer.stop"),
					slog.String("error", err.Error()),
				)
			}
		}()
	}

	tokens := session.NewTokenManager(cfg.Session.Secret, cfg.Session.Issuer, cfg.Session.TTL)

	r := gin.New()
	r.Use(middleware.Gin(middleware.GinConfig{
		SkipPaths:   []string{"/health", "/health/live", "/health/ready"},
		Module:      logging.Module("visit-planning"),
		TracerName:  "github.com/filmtv1308-cmyk/Big-TeleSales/internal/observability/middleware",
		HTTPMetrics: httpMetrics,
	}))
	r.Use(middleware.PanicRecoveryGin())

	healthChecker := health.NewChecker(Version, store.deps...)
	r.GET("/health/live", healthChecker.LiveHandler())
	r.GET("/health/ready", healthChecker.ReadyHandler())
	r.GET("/health", healthChecker.ReadyHandler())

	v1 := r.Group("/api/v1", session.Middleware(tokens))
	handler.NewPlanHandler(planService, reaper, zones, cfg.Schedule.PlanningHorizonDays, cfg.Schedule.StaleRetentionDays).Register(v1)
	handler.NewVisitHandler(planService, zones).Register(v1)
	handler.NewRouteHandler(routeMigration).Register(v1)
	handler.NewSettingsHandler(zones).Register(v1)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		slog.Info("starting server",
			slog.String("port", cfg.Port),
			slog.String("storage_backend", string(cfg.Storage.Backend)),
			slog.String("fallback_time_zone", cfg.Schedule.TimeZone),
			slog.Int("planning_horizon_days", cfg.Schedule.PlanningHorizonDays),
		)
		serverErr <- srv.ListenAndServe()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-quit:
		slog.Info("shutdown signal received", slog.String("signal", sig.String()))
		cancel()

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			slog.Error("failed to shutdown server", slog.String("error", err.Error()))
			return 1
		}

		slog.Info("server exited properly")
		return 0

	case err := <-serverErr:
		if errors.Is(err, http.ErrServerClosed) {
			return 0
		}
		slog.Error("server exited with error", slog.String("error", err.Error()))
		return 1
	}
}
