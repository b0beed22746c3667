package main

import (
	"context"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"ongeo_api/internal/adapter/http/routes"
	"ongeo_api/internal/config"
	"ongeo_api/internal/logger"
)

// @title           OnGeo Budgets API
// @version         1.0
// @description     Georeferencing budget lifecycle (budgets, items, clients, public forms, payments) backed by DynamoDB.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.Log.Fatal().Err(err).Msg("failed to load configuration")
	}

	logger.SetLevel(cfg.LogLevel)
	if strings.EqualFold(cfg.LogFormat, "json") {
		logger.SetJSON()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := routes.Run(ctx, cfg); err != nil {
		logger.Log.Fatal().Err(err).Msg("failed to startup the application")
	}
}
