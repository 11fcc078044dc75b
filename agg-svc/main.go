package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"nutrilens/agg-svc/internal/service"
	"nutrilens/agg-svc/internal/storage"
	"nutrilens/config"

	"github.com/shopspring/decimal"
)

const consumerGroup = "agg-svc"

func main() {
	decimal.MarshalJSONWithoutQuotes = true

	settings, err := config.Load("8084")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	db := config.MustInitPostgres(settings.DB)
	defer db.Close()

	rdb := config.MustInitRedis(settings.Redis)
	defer rdb.Close()

	reader := config.NewKafkaReader(settings.Kafka, consumerGroup)
	defer reader.Close()

	totals := service.NewTotalsService(storage.NewPostgresRepository(db), storage.NewRedisStore(rdb))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	service.NewConsumer(reader, totals).Start(ctx)
	log.Println("Aggregation Service exited")
}
