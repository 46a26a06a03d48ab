package main

import (
	"log"

	_ "warsto_quotation/docs"
	"warsto_quotation/internal/adapter/http/routes"
	"warsto_quotation/internal/infrastructure/config"
	"warsto_quotation/internal/infrastructure/logger"

	_ "github.com/joho/godotenv/autoload"
	"go.uber.org/zap"
)

// @title           Warsto Quotation API
// @version         1.0
// @description     Interior design options, custom options per visitor and 15-day quotations.

// @contact.name   Warsto Support

// @host      localhost:8080
// @BasePath  /api

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	zapLogger, err := logger.New(cfg.LogLevel, cfg.GinMode)
	if err != nil {
		log.Fatalf("failed to create logger: %v", err)
	}
	defer func() { _ = zapLogger.Sync() }()

	if err := routes.Run(cfg, zapLogger); err != nil {
		zapLogger.Fatal("[server] stopped with error", zap.Error(err))
	}
	zapLogger.Info("[server] shutdown complete")
}
