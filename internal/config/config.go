package config

import (
	"log"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type PaymentConfig struct {
	Env         string `yaml:"env" env:"APP_ENV" env-default:"local"`
	HTTPServer  `yaml:"http_server"`
	PaymentDB   `yaml:"payment_db"`
	Redis       `yaml:"redis"`
	Stripe      `yaml:"stripe"`
	OrdersHook  `yaml:"orders_hook"`
	Retry       `yaml:"retry"`
	Idempotency `yaml:"idempotency"`
	Kafka       `yaml:"kafka"`
	LogConfig   `yaml:"log_config"`
	Expiry      `yaml:"expiry"`
}

type OrderConfig struct {
	Env         string `yaml:"env" env:"APP_ENV" env-default:"local"`
	HTTPServer  `yaml:"http_server"`
	OrderDB     `yaml:"order_db"`
	Redis       `yaml:"redis"`
	InternalAPI `yaml:"internal_api"`
	Idempotency `yaml:"idempotency"`
	Kafka       `yaml:"kafka"`
	LogConfig   `yaml:"log_config"`
}

type HTTPServer struct {
	Host string `yaml:"host" env-default:"0.0.0.0"`
	Port string `yaml:"port" env-default:"8080"`
}

type PaymentDB struct {
	Dsn            string `yaml:"dsn" env:"PAYMENT_DB_DSN"`
	MigrationsPath string `yaml:"migrations_path"`
}

type OrderDB struct {
	Dsn            string `yaml:"dsn" env:"ORDER_DB_DSN"`
	MigrationsPath string `yaml:"migrations_path"`
}

type Redis struct {
	Addr     string `yaml:"addr" env:"REDIS_ADDR" env-default:"localhost:6379"`
	Password string `yaml:"password" env:"REDIS_PASSWORD"`
	DB       int    `yaml:"db"`
}

type Stripe struct {
	SecretKey     string `yaml:"secret_key" env:"STRIPE_SECRET_KEY"`
	WebhookSecret string `yaml:"webhook_secret" env:"STRIPE_WEBHOOK_SECRET"`
	SuccessURL    string `yaml:"success_url"`
	CancelURL     string `yaml:"cancel_url"`
}

type OrdersHook struct {
	URL    string `yaml:"url"`
	APIKey string `yaml:"api_key" env:"ORDERS_API_KEY"`
}

// InternalAPI guards the order service's internal webhook endpoint.
type InternalAPI struct {
	APIKey string `yaml:"api_key" env:"ORDERS_API_KEY"`
}

type Retry struct {
	MaxAttempts int           `yaml:"max_attempts" env-default:"3"`
	BaseDelay   time.Duration `yaml:"base_delay" env-default:"1s"`
}

type Idempotency struct {
	KeyPrefix     string        `yaml:"key_prefix"`
	LockTTL       time.Duration `yaml:"lock_ttl" env-default:"30s"`
	RecordTTL     time.Duration `yaml:"record_ttl" env-default:"168h"`
	LockRetryWait time.Duration `yaml:"lock_retry_wait" env-default:"200ms"`
}

type Kafka struct {
	Brokers []string `yaml:"brokers" env-default:"localhost:9092"`
	Topic   string   `yaml:"topic"`
}

type LogConfig struct {
	LogLevel  string `yaml:"log_level" env-default:"info"`
	LogFormat string `yaml:"log_format" env-default:"json"`
	LogOutput string `yaml:"log_output" env-default:"stdout"`
}

type Expiry struct {
	StaleAfter    time.Duration `yaml:"stale_after" env-default:"24h"`
	SweepInterval time.Duration `yaml:"sweep_interval" env-default:"10m"`
}

// IsProduction gates webhook signature enforcement.
func (c *PaymentConfig) IsProduction() bool {
	return c.Env == "production"
}

func (c *OrderConfig) IsProduction() bool {
	return c.Env == "production"
}

func MustLoadPayment() *PaymentConfig {
	configPath := os.Getenv("PAYMENT_CONFIG_PATH")
	if configPath == "" {
		log.Fatalf("PAYMENT_CONFIG_PATH was not found\n")
	}

	if _, err := os.Stat(configPath); err != nil {
		log.Fatalf("failed to find config file: %v\n", err)
	}

	var cfg PaymentConfig
	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		log.Fatalf("failed to read config file: %v", err)
	}

	return &cfg
}

func MustLoadOrder() *OrderConfig {
	configPath := os.Getenv("ORDER_CONFIG_PATH")
	if configPath == "" {
		log.Fatalf("ORDER_CONFIG_PATH was not found\n")
	}

	if _, err := os.Stat(configPath); err != nil {
		log.Fatalf("failed to find config file: %v\n", err)
	}

	var cfg OrderConfig
	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		log.Fatalf("failed to read config file: %v", err)
	}

	return &cfg
}
