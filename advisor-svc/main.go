package main

import (
	"context"
	"log"

	httpapi "nutrilens/advisor-svc/internal/api/http"
	"nutrilens/advisor-svc/internal/clients"
	"nutrilens/advisor-svc/internal/service"
	"nutrilens/advisor-svc/internal/storage"
	"nutrilens/config"
	"nutrilens/server"
	"nutrilens/session"
)

const consumerGroup = "advisor-svc"

func main() {
	settings, err := config.Load("8082")
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

	var llm service.LanguageModel
	if settings.OpenAI.APIKey != "" {
		llm = clients.NewOpenAIClient(settings.OpenAI.BaseURL, settings.OpenAI.APIKey, settings.OpenAI.Model)
	} else {
		log.Println("OPENAI_API_KEY not set, advisor will answer with fallbacks")
	}

	repo := storage.NewPostgresRepository(db)
	redisStore := storage.NewRedisStore(rdb)
	advisor := service.NewAdvisorService(repo, repo, llm, redisStore, redisStore)

	reader := config.NewKafkaReader(settings.Kafka, consumerGroup)
	ctx, cancel := context.WithCancel(context.Background())
	consumer := service.NewConsumer(reader, advisor)
	go consumer.Start(ctx)

	handler := httpapi.NewHandler(advisor)
	router := httpapi.NewRouter(handler, session.NewAuthenticator(settings.Auth.JWTSecret))

	server.Run("Advisor Service", server.New(settings.Server, router), func() {
		cancel()
		if err := reader.Close(); err != nil {
			log.Printf("Error closing Kafka reader: %v", err)
		}
	})
}
