package main

import (
	"log"

	_ "supplylink/docs"
	"supplylink/internal/adapter/http/routes"
	"supplylink/internal/infrastructure/config"
	"supplylink/internal/infrastructure/obs"

	_ "github.com/joho/godotenv/autoload"
)

// @title           SupplyLink Escrow API
// @version         1.0
// @description     Booking and escrow payment service (hold-then-release) backed by DynamoDB and Mercado Pago.

// @host localhost:8080

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	logger := obs.NewLogger(cfg.IsProduction())

	if err := routes.Run(cfg, logger); err != nil {
		logger.Error("server exited", "error", err)
	}
}
