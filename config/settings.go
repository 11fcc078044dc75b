package config

import (
	"errors"
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Settings struct {
	Server      ServerSettings      `mapstructure:"server"`
	DB          DBSettings          `mapstructure:"db"`
	Redis       RedisSettings       `mapstructure:"redis"`
	Kafka       KafkaSettings       `mapstructure:"kafka"`
	Auth        AuthSettings        `mapstructure:"auth"`
	AWS         AWSSettings         `mapstructure:"aws"`
	Nutritionix NutritionixSettings `mapstructure:"nutritionix"`
	OpenAI      OpenAISettings      `mapstructure:"openai"`
	Gateway     GatewaySettings     `mapstructure:"gateway"`
	PublicURL   string              `mapstructure:"public_url"`
}

type ServerSettings struct {
	Port         string        `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
}

func (s ServerSettings) Addr() string {
	return ":" + s.Port
}

type DBSettings struct {
	Host     string `mapstructure:"host"`
	Port     string `mapstructure:"port"`
	Name     string `mapstructure:"name"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	SSLMode  string `mapstructure:"sslmode"`
}

func (s DBSettings) ConnString() string {
	return "host=" + s.Host + " port=" + s.Port + " user=" + s.User +
		" password=" + s.Password + " dbname=" + s.Name + " sslmode=" + s.SSLMode
}

type RedisSettings struct {
	Host     string `mapstructure:"host"`
	Port     string `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

type KafkaSettings struct {
	Broker string `mapstructure:"broker"`
	Topic  string `mapstructure:"topic"`
}

type AuthSettings struct {
	JWTSecret string `mapstructure:"jwt_secret"`
}

type AWSSettings struct {
	Region      string `mapstructure:"region"`
	S3Bucket    string `mapstructure:"s3_bucket"`
	S3PublicURL string `mapstructure:"s3_public_url"`
}

type NutritionixSettings struct {
	AppID   string `mapstructure:"app_id"`
	AppKey  string `mapstructure:"app_key"`
	BaseURL string `mapstructure:"base_url"`
}

type OpenAISettings struct {
	APIKey  string `mapstructure:"api_key"`
	BaseURL string `mapstructure:"base_url"`
	Model   string `mapstructure:"model"`
}

type GatewaySettings struct {
	MealSvcURL      string `mapstructure:"meal_svc_url"`
	AdvisorSvcURL   string `mapstructure:"advisor_svc_url"`
	DashboardSvcURL string `mapstructure:"dashboard_svc_url"`
	FrontendDir     string `mapstructure:"frontend_dir"`
}

// Load reads .env (if present), an optional config.yaml and the environment.
// Environment keys are the upper-cased setting paths, e.g. DB_HOST.
func Load(defaultPort string) (*Settings, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Printf("Warning: could not read .env file: %v", err)
	}

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("/etc/nutrilens")

	setDefaults(v, defaultPort)

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			log.Printf("Warning: could not read config file: %v", err)
		}
	}

	var settings Settings
	if err := v.Unmarshal(&settings); err != nil {
		return nil, err
	}
	return &settings, nil
}

func setDefaults(v *viper.Viper, defaultPort string) {
	v.SetDefault("server.port", defaultPort)
	v.SetDefault("server.read_timeout", 10*time.Second)
	v.SetDefault("server.write_timeout", 30*time.Second)

	v.SetDefault("db.host", "localhost")
	v.SetDefault("db.port", "5432")
	v.SetDefault("db.name", "postgres")
	v.SetDefault("db.user", "postgres")
	v.SetDefault("db.password", "")
	v.SetDefault("db.sslmode", "disable")

	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", "6379")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)

	v.SetDefault("kafka.broker", "localhost:9092")
	v.SetDefault("kafka.topic", "meal-events")

	v.SetDefault("auth.jwt_secret", "")

	v.SetDefault("aws.region", "us-east-1")
	v.SetDefault("aws.s3_bucket", "")
	v.SetDefault("aws.s3_public_url", "")

	v.SetDefault("nutritionix.app_id", "")
	v.SetDefault("nutritionix.app_key", "")
	v.SetDefault("nutritionix.base_url", "https://trackapi.nutritionix.com/v2")

	v.SetDefault("openai.api_key", "")
	v.SetDefault("openai.base_url", "https://api.openai.com/v1")
	v.SetDefault("openai.model", "gpt-4o-mini")

	v.SetDefault("gateway.meal_svc_url", "http://localhost:8081")
	v.SetDefault("gateway.advisor_svc_url", "http://localhost:8082")
	v.SetDefault("gateway.dashboard_svc_url", "http://localhost:8083")
	v.SetDefault("gateway.frontend_dir", "./frontend")

	v.SetDefault("public_url", "http://localhost:8080")
}
