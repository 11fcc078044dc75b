package config

import (
	"context"
	"database/sql"
	"log"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"
)

func MustInitPostgres(s DBSettings) *sql.DB {
	db, err := sql.Open("postgres", s.ConnString())
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	if err = db.Ping(); err != nil {
		log.Fatal("Failed to ping database:", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(time.Hour)

	return db
}

func NewRedisClient(s RedisSettings) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     s.Host + ":" + s.Port,
		Password: s.Password,
		DB:       s.DB,
	})
}

func MustInitRedis(s RedisSettings) *redis.Client {
	client := NewRedisClient(s)

	if err := client.Ping(context.Background()).Err(); err != nil {
		log.Fatal("Failed to connect to Redis:", err)
	}

	return client
}

func NewKafkaReader(s KafkaSettings, groupID string) *kafka.Reader {
	return kafka.NewReader(kafka.ReaderConfig{
		Brokers: []string{s.Broker},
		Topic:   s.Topic,
		GroupID: groupID,
	})
}

func NewKafkaWriter(s KafkaSettings) *kafka.Writer {
	return &kafka.Writer{
		Addr:     kafka.TCP(s.Broker),
		Topic:    s.Topic,
		Balancer: &kafka.LeastBytes{},
	}
}

func MustLoadAWS(ctx context.Context, s AWSSettings) aws.Config {
	cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(s.Region))
	if err != nil {
		log.Fatal("Unable to load AWS config:", err)
	}
	return cfg
}
