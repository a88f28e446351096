package config

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

type Config struct {
	HTTPAddr string

	DBHost     string
	DBPort     string
	DBName     string
	DBUser     string
	DBPassword string

	RedisHost string
	RedisPort string

	KafkaBroker string
	OrdersTopic string

	MenuSvcURL    string
	StatsSvcURL   string
	PublicBaseURL string

	CartTTL         time.Duration
	CheckoutLockTTL time.Duration
}

// Load reads an optional .env file and then the process environment.
func Load(defaultAddr string) Config {
	_ = godotenv.Load()

	return Config{
		HTTPAddr: getEnv("HTTP_ADDR", defaultAddr),

		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBName:     getEnv("DB_NAME", "overcooked"),
		DBUser:     getEnv("DB_USER", "postgres"),
		DBPassword: os.Getenv("DB_PASSWORD"),

		RedisHost: getEnv("REDIS_HOST", "localhost"),
		RedisPort: getEnv("REDIS_PORT", "6379"),

		KafkaBroker: getEnv("KAFKA_BROKER", "localhost:9092"),
		OrdersTopic: getEnv("ORDERS_TOPIC", "orders"),

		MenuSvcURL:    getEnv("MENU_SVC_URL", "http://localhost:8081"),
		StatsSvcURL:   getEnv("STATS_SVC_URL", "http://localhost:8083"),
		PublicBaseURL: getEnv("PUBLIC_BASE_URL", "http://localhost"),

		CartTTL:         getDuration("CART_TTL", 7*24*time.Hour),
		CheckoutLockTTL: getDuration("CHECKOUT_LOCK_TTL", 30*time.Second),
	}
}

func (c Config) PostgresDSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName)
}

func (c Config) RedisAddr() string {
	return c.RedisHost + ":" + c.RedisPort
}

func NewLogger(service string) *zap.Logger {
	logger, err := zap.NewProduction()
	if err != nil {
		logger = zap.NewNop()
	}
	return logger.With(zap.String("service", service))
}

func MustInitPostgres(cfg Config, logger *zap.Logger) *sql.DB {
	db, err := sql.Open("postgres", cfg.PostgresDSN())
	if err != nil {
		logger.Fatal("failed to connect to database", zap.Error(err))
	}

	if err = db.Ping(); err != nil {
		logger.Fatal("failed to ping database", zap.Error(err))
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(time.Hour)

	return db
}

func MustInitRedis(cfg Config, logger *zap.Logger) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr: cfg.RedisAddr(),
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		logger.Fatal("failed to connect to redis", zap.Error(err))
	}

	return client
}

func NewKafkaReader(cfg Config, groupID string) *kafka.Reader {
	return kafka.NewReader(kafka.ReaderConfig{
		Brokers: []string{cfg.KafkaBroker},
		Topic:   cfg.OrdersTopic,
		GroupID: groupID,
	})
}

func NewKafkaWriter(cfg Config) *kafka.Writer {
	return &kafka.Writer{
		Addr:     kafka.TCP(cfg.KafkaBroker),
		Topic:    cfg.OrdersTopic,
		Balancer: &kafka.LeastBytes{},
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fallback
	}
	return d
}
