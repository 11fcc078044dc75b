package main

import (
	"context"
	"log"
	"time"

	"nutrilens/config"
	httpapi "nutrilens/meal-svc/internal/api/http"
	"nutrilens/meal-svc/internal/clients"
	"nutrilens/meal-svc/internal/service"
	"nutrilens/meal-svc/internal/storage"
	"nutrilens/server"
	"nutrilens/session"

	"github.com/aws/aws-sdk-go-v2/service/rekognition"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/shopspring/decimal"
)

const nutritionCacheTTL = 7 * 24 * time.Hour

func main() {
	decimal.MarshalJSONWithoutQuotes = true

	settings, err := config.Load("8081")
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

	writer := config.NewKafkaWriter(settings.Kafka)

	ctx := context.Background()
	awsCfg := config.MustLoadAWS(ctx, settings.AWS)

	repo := storage.NewPostgresRepository(db)
	if err := repo.EnsureSchema(ctx); err != nil {
		log.Fatalf("Failed to ensure schema: %v", err)
	}

	var photos service.PhotoStore
	if settings.AWS.S3Bucket != "" {
		photos = storage.NewS3PhotoStore(s3.NewFromConfig(awsCfg), settings.AWS.S3Bucket, settings.AWS.Region, settings.AWS.S3PublicURL)
	} else {
		log.Println("AWS_S3_BUCKET not set, meal photos will not be stored")
	}

	mealSvc := service.NewMealService(
		repo,
		clients.NewRekognitionDetector(rekognition.NewFromConfig(awsCfg)),
		clients.NewNutritionixClient(settings.Nutritionix.BaseURL, settings.Nutritionix.AppID, settings.Nutritionix.AppKey),
		storage.NewRedisCache(rdb, nutritionCacheTTL),
		photos,
		storage.NewKafkaPublisher(writer),
	)
	profileSvc := service.NewProfileService(repo)
	shareSvc := service.NewShareService(settings.PublicURL, service.DefaultQRGenerator{})

	handler := httpapi.NewHandler(mealSvc, profileSvc, shareSvc)
	router := httpapi.NewRouter(handler, session.NewAuthenticator(settings.Auth.JWTSecret))

	server.Run("Meal Service", server.New(settings.Server, router), func() {
		if err := writer.Close(); err != nil {
			log.Printf("Error closing Kafka writer: %v", err)
		}
	})
}
