package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"

	"gridgate/internal/config"
	"gridgate/internal/modules/grid/application/usecase"
	"gridgate/internal/modules/grid/infrastructure"
	transport "gridgate/internal/modules/grid/interface"
	"gridgate/internal/shared/logging"
)

func main() {
	// Attempt to load variables from .env so local runs honour configuration tweaks.
	if err := godotenv.Overload(); err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			fmt.Fprintf(os.Stderr, ".env load warning: %v\n", err)
		}
	}
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config load error: %v\n", err)
		os.Exit(1)
	}

	logFile, logger, err := setupLogging(cfg.Logging)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logging setup error: %v\n", err)
		os.Exit(1)
	}
	if logFile != nil {
		defer logFile.Close()
	}
	slog.SetDefault(logger)
	slog.Info("logging initialized", slog.String("level", cfg.Logging.Level), slog.String("format", cfg.Logging.Format))

	fetcher := infrastructure.NewRESTClient(cfg.Upstream.Timeout, nil)
	registry := infrastructure.NewRegistry(fetcher)
	tenants := infrastructure.NewInMemoryTenantStore()

	if cfg.Tenants.File != "" {
		configs, err := infrastructure.LoadTenantsFile(cfg.Tenants.File)
		if err != nil {
			slog.Error("tenants file load failed", slog.String("file", cfg.Tenants.File), slog.Any("error", err))
			os.Exit(1)
		}
		for _, tenant := range configs {
			tenants.Register(tenant)
		}
		slog.Info("tenants file loaded", slog.String("file", cfg.Tenants.File), slog.Int("tenants", len(configs)))
	}

	availability := usecase.NewAvailabilityUseCase(tenants, registry)

	e := echo.New()
	e.HideBanner = true
	e.Logger.SetOutput(log.Writer())

	e.GET("/api/v1/availability", transport.NewAvailabilityHandler(availability))
	e.GET("/health", transport.NewHealthHandler())

	go func() {
		if err := e.Start(":" + cfg.Server.Port); err != nil {
			slog.Error("http server stopped", slog.Any("error", err))
		}
	}()
	slog.Info("gateway listening", slog.String("port", cfg.Server.Port), slog.Any("providers", registry.Providers()))

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop
	slog.Info("shutting down")
	e.Close()
}

func setupLogging(cfg config.LoggingConfig) (*os.File, *slog.Logger, error) {
	var writer io.Writer = os.Stdout
	var file *os.File

	if cfg.Directory != "" {
		opened, err := logging.OpenDailyFile(cfg.Directory)
		if err != nil {
			return nil, nil, err
		}
		file = opened
		writer = io.MultiWriter(os.Stdout, file)
	}

	logger := logging.New(writer, logging.Config{
		Level:     cfg.Level,
		Format:    cfg.Format,
		AddSource: true,
	})
	log.SetOutput(writer)
	log.SetFlags(0)
	log.SetPrefix("")

	return file, logger, nil
}
