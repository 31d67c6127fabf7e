package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"mousespa/internal/commons"
	"mousespa/internal/config"
	"mousespa/internal/infrastructure/logger"
	"mousespa/internal/infrastructure/mysql"
	"mousespa/internal/order"
	"mousespa/internal/server"
	"mousespa/internal/web"
)

func main() {
	cfg, err := loadConfig()
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}

	zapLogger, err := logger.New(cfg.Log.Level)
	if err != nil {
		log.Fatalf("creating logger: %v", err)
	}
	defer zapLogger.Sync()

	db, err := mysql.NewConnection(cfg.Database)
	if err != nil {
		zapLogger.Fatal("connecting to database", zap.Error(err))
	}
	defer db.Close()
	zapLogger.Info("database connected")

	if err := mysql.EnsureSchema(db); err != nil {
		zapLogger.Fatal("ensuring schema", zap.Error(err))
	}

	orderCtrl, orderSvc := order.NewModule(db, zapLogger)

	pages, err := web.NewHandler(orderSvc, zapLogger)
	if err != nil {
		zapLogger.Fatal("creating web handler", zap.Error(err))
	}

	router := server.NewRouter(orderCtrl, pages, zapLogger)

	srv := server.New(cfg.Server.Port, router, zapLogger)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := srv.Start(); err != nil {
			zapLogger.Fatal("server error", zap.Error(err))
		}
	}()

	<-quit
	zapLogger.Info("received shutdown signal")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		zapLogger.Fatal("server shutdown failed", zap.Error(err))
	}

	zapLogger.Info("server stopped gracefully")
}

// loadConfig prefers a yaml config file when MOUSESPA_CONFIG points at one
// and falls back to environment variables otherwise.
func loadConfig() (*config.Config, error) {
	if path := os.Getenv("MOUSESPA_CONFIG"); path != "" {
		return commons.LoadConfig(path)
	}
	return config.Load()
}
