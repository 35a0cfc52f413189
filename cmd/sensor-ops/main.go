package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"sensor-ops/internal/api/router"
	"sensor-ops/internal/pkg/config"
	"sensor-ops/internal/pkg/logger"
	"sensor-ops/internal/pkg/sheets"
	"sensor-ops/internal/scheduler"

	_ "sensor-ops/docs" // Swagger docs
)

// @title Sensor Ops API
// @version 1.0
// @description Field-team operations dashboard backed by the team spreadsheet
// @description Covers PM planning, workload, tool inventory and the knowledge base

// @host localhost:8080
// @BasePath /api/v1

// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the JWT token.

var (
	configFile = flag.String("config", "", "config file path (e.g. -config=configs/config.yaml)")
	version    = flag.Bool("version", false, "print version and exit")
)

const (
	appVersion = "1.0.0"
	appName    = "sensor-ops"
)

func main() {
	flag.Parse()

	if *version {
		fmt.Printf("%s version %s\n", appName, appVersion)
		os.Exit(0)
	}

	// Config path priority: flag > env > default
	configPath := getConfigPath()
	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Printf("failed to load config: %v\n", err)
		fmt.Println("\nusage:")
		fmt.Println("  ./sensor-ops -config=configs/config.yaml")
		fmt.Println("  CONFIG_FILE=configs/config.yaml ./sensor-ops")
		os.Exit(1)
	}

	if err := logger.Init(&cfg.Log); err != nil {
		fmt.Printf("failed to init logger: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = logger.Close()
	}()
	logger.Info(fmt.Sprintf("loaded config from %s", configPath))

	logger.Info(fmt.Sprintf("%s starting", appName), zap.String("version", appVersion))

	loader, err := sheets.NewClient(&cfg.Sheets, logger.Log)
	if err != nil {
		logger.Fatal("failed to init sheet client", zap.Error(err))
	}
	writer := sheets.NewWriter(&cfg.Sheets, logger.Log, loader.InvalidateAll)
	spreadsheetID, _ := cfg.Sheets.SpreadsheetID()
	logger.Info("sheet client ready", zap.String("spreadsheet_id", spreadsheetID))

	prewarm := scheduler.New(loader, logger.Log)
	if err := prewarm.Start(cfg); err != nil {
		logger.Warn("scheduler failed to start", zap.Error(err))
	}

	r := router.Setup(cfg, loader, writer)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:    addr,
		Handler: r,
	}

	go func() {
		logger.Info(fmt.Sprintf("%s listening", cfg.Server.Name),
			zap.String("address", addr),
			zap.String("mode", cfg.Server.Mode),
		)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down")

	prewarm.Stop()
	logger.Info("scheduler stopped")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("shutdown error", zap.Error(err))
	}

	logger.Info("stopped")
}

// getConfigPath resolves flag > CONFIG_FILE env > default.
func getConfigPath() string {
	if *configFile != "" {
		return *configFile
	}
	if envConfig := os.Getenv("CONFIG_FILE"); envConfig != "" {
		return envConfig
	}
	return "configs/config.yaml"
}
