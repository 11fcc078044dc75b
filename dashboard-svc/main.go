package main

import (
	"context"
	"log"

	httpapi "nutrilens/dashboard-svc/internal/api/http"
	"nutrilens/dashboard-svc/internal/service"
	"nutrilens/dashboard-svc/internal/storage"
	"nutrilens/config"
	"nutrilens/server"
	"nutrilens/session"

	"github.com/shopspring/decimal"
)

func main() {
	decimal.MarshalJSONWithoutQuotes = true

	settings, err := config.Load("8083")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if settings.Auth.JWTSecret == "" {
		log.Fatal("AUTH_JWT_SECRET is required")
	}

	db := config.MustInitPostgres(settings.DB)
	defer db.Close()

	rdb := config.MustInitRedis(settings.Redis)
	defer rdb.Close()

	redisStore := storage.NewRedisStore(rdb)
	dashboard := service.NewDashboardService(storage.NewPostgresRepository(db), redisStore)

	hub := service.NewHub()
	ctx, cancel := context.WithCancel(context.Background())
	go service.NewRelay(redisStore, hub).Start(ctx)

	handler := httpapi.NewHandler(dashboard, hub)
	router := httpapi.NewRouter(handler, session.NewAuthenticator(settings.Auth.JWTSecret))

	server.Run("Dashboard Service", server.New(settings.Server, router), cancel)
}
