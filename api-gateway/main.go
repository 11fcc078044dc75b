package main

import (
	"log"
	"net/http"

	"nutrilens/api-gateway/internal/gateway"
	"nutrilens/config"
	"nutrilens/server"

	"github.com/rs/cors"
)

func main() {
	settings, err := config.Load("8080")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	gw, err := gateway.NewGateway(gateway.Config{
		MealSvcURL:      settings.Gateway.MealSvcURL,
		AdvisorSvcURL:   settings.Gateway.AdvisorSvcURL,
		DashboardSvcURL: settings.Gateway.DashboardSvcURL,
		FrontendDir:     settings.Gateway.FrontendDir,
	}, &http.Client{})
	if err != nil {
		log.Fatalf("Failed to configure gateway: %v", err)
	}

	c := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "OPTIONS"},
		AllowedHeaders: []string{"Authorization", "Content-Type"},
	})

	server.Run("API Gateway", server.New(settings.Server, c.Handler(gw.SetupRoutes())))
}
