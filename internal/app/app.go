package app

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"jewelstore/internal/adapters/cache"
	"jewelstore/internal/adapters/httpclient"
	"jewelstore/internal/adapters/postgres"
	"jewelstore/internal/analytics"
	analyticshandler "jewelstore/internal/analytics/handler"
	"jewelstore/internal/api"
	"jewelstore/internal/auth"
	authhandler "jewelstore/internal/auth/handler"
	"jewelstore/internal/category"
	categoryhandler "jewelstore/internal/category/handler"
	"jewelstore/internal/config"
	"jewelstore/internal/domain"
	"jewelstore/internal/platform/db"
	httpserver "jewelstore/internal/platform/http"
	"jewelstore/internal/platform/logging"
	"jewelstore/internal/product"
	producthandler "jewelstore/internal/product/handler"
	"jewelstore/internal/rate"
	ratehandler "jewelstore/internal/rate/handler"

	"github.com/sirupsen/logrus"
)

// Run wires the application components, starts HTTP server and scheduler
func Run() error {
	appCfg, err := config.Init()
	if err != nil {
		return err
	}
	logCloser, err := logging.Setup(appCfg.Logging)
	if err != nil {
		return err
	}
	defer logCloser.Close()
	logrus.Info("✅ Config initialization successful")

	settings, err := rateSettings(appCfg.Rates)
	if err != nil {
		logrus.WithError(err).Error("Invalid rates configuration")
		return err
	}
	if appCfg.Auth.JWTSecret == "" {
		return fmt.Errorf("jwt secret is required")
	}

	// Root context bound to OS signals for graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Bounded context for startup operations (DB connect, migrations)
	startupCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	pool, err := db.CreatePoolAndPing(startupCtx, appCfg.DbServer)
	if err != nil {
		logrus.WithError(err).Error("Error connecting to db")
		return err
	}
	defer pool.Close()
	logrus.Info("✅ Postgres connection successful")

	if err = db.Migrate(startupCtx, pool); err != nil {
		logrus.WithError(err).Error("Failed to apply migrations")
		return err
	}
	logrus.Info("✅ Migrations applied")

	latestCache, err := cache.NewLatestRateCache(int64(len(settings.metals)*len(domain.Karats)*4), appCfg.Rates.CacheTTL())
	if err != nil {
		return err
	}
	defer latestCache.Close()

	// External clients share one timeout-bound HTTP client
	baseHTTPClient := &http.Client{Timeout: appCfg.HTTPClient.Timeout()}
	metalClient := httpclient.NewMetalPriceClient(baseHTTPClient, appCfg.MetalAPI.BaseURL, appCfg.MetalAPI.APIKey, appCfg.MetalAPI.Currency)
	otpClient := httpclient.NewOTPClient(baseHTTPClient, appCfg.OTP.BaseURL, appCfg.OTP.APIKey, appCfg.OTP.Template)
	imageStore := httpclient.NewCloudinaryStore(baseHTTPClient, appCfg.ObjectStore.BaseURL, appCfg.ObjectStore.CloudName, appCfg.ObjectStore.APIKey, appCfg.ObjectStore.APISecret)

	// Repositories
	rateRepo := postgres.NewRateRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	categoryRepo := postgres.NewCategoryRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	analyticsRepo := postgres.NewAnalyticsRepository(pool)

	// Services
	rateService := rate.NewService(rateRepo, latestCache, settings.metals, settings.service)
	productService := product.NewService(productRepo, rateService, product.NewValidator(settings.metals))
	categoryService := category.NewService(categoryRepo, imageStore)
	tokens := auth.NewTokenIssuer(appCfg.Auth.JWTSecret, time.Duration(appCfg.Auth.TokenTTLHours)*time.Hour)
	authService := auth.NewService(otpClient, userRepo, tokens)
	analyticsService := analytics.NewService(analyticsRepo)

	scheduler := rate.NewScheduler(rateRepo, metalClient, latestCache, settings.metals, rate.SchedulerSettings{
		IngestCron:    appCfg.Scheduler.IngestCron,
		RetentionCron: appCfg.Scheduler.RetentionCron,
		Retention:     time.Duration(appCfg.Scheduler.RetentionDays) * 24 * time.Hour,
	})
	// Ensure scheduler stops before DB pool closes
	defer func() {
		if shutDownErr := scheduler.Shutdown(); shutDownErr != nil {
			logrus.Errorf("Scheduler shutdown error: %v", shutDownErr)
		}
	}()
	if appCfg.MetalAPI.APIKey == "" {
		logrus.Warn("Metal price api key is empty, rate ingestion requests will be rejected upstream")
	}
	if startErr := scheduler.Start(ctx); startErr != nil {
		logrus.WithError(startErr).Error("Failed to start scheduler")
		return startErr
	}
	logrus.Info("✅ Scheduler activation successful")

	router := api.NewRouter(api.Handlers{
		Rates:      ratehandler.NewRateHandler(rate.NewValidator(settings.metals), rateService, settings.cutoff),
		Products:   producthandler.NewProductHandler(productService),
		Categories: categoryhandler.NewCategoryHandler(categoryService),
		Auth:       authhandler.NewAuthHandler(authService, tokens),
		Analytics:  analyticshandler.NewAnalyticsHandler(analyticsService),
	}, appCfg.HTTPServer.AllowedOrigins)

	logrus.Info("Starting http server")
	// Block until context is canceled, then perform graceful shutdown.
	if serverErr := httpserver.Start(ctx, appCfg.HTTPServer, router); serverErr != nil {
		// Cancel the root context to stop scheduler and other in-flight work
		stop()
		logrus.Errorf("HTTP server error: %v", serverErr)
		return serverErr
	}
	return nil
}

type resolvedRates struct {
	metals  []domain.Metal
	cutoff  domain.TimeOfDay
	service rate.Settings
}

// rateSettings turns the rates section of the config into typed values.
func rateSettings(cfg config.Rates) (resolvedRates, error) {
	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		return resolvedRates{}, fmt.Errorf("failed to load timezone %q: %w", cfg.Timezone, err)
	}
	cutoff, err := domain.ParseTimeOfDay(cfg.DefaultCutoff)
	if err != nil {
		return resolvedRates{}, fmt.Errorf("invalid default cutoff: %w", err)
	}

	known := rate.NewValidator(domain.Metals)
	metals := make([]domain.Metal, 0, len(cfg.Metals))
	for _, raw := range cfg.Metals {
		m, metalErr := known.ValidateMetal(raw)
		if metalErr != nil {
			return resolvedRates{}, fmt.Errorf("invalid metal %q: %w", raw, metalErr)
		}
		metals = append(metals, m)
	}
	if len(metals) == 0 {
		metals = domain.Metals
	}

	return resolvedRates{
		metals: metals,
		cutoff: cutoff,
		service: rate.Settings{
			WindowDays: cfg.WindowDays,
			Grace:      time.Duration(cfg.GraceMinutes) * time.Minute,
			Location:   loc,
		},
	}, nil
}
