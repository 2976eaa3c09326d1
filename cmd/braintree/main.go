package main

import (
	"context"
	"log"

	"github.com/joho/godotenv"

	"github.com/shestoi/GoBigTech/braintree/internal/app"
	"github.com/shestoi/GoBigTech/braintree/internal/config"
)

func main() {
	// .env опционален: в docker переменные приходят из compose
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	ctx := context.Background()
	application, err := app.Build(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to build app: %v", err)
	}

	if err := application.Run(ctx); err != nil {
		log.Fatalf("Service error: %v", err)
	}
}
