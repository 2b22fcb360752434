package setup

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/quickcart/payments/internal/config"
	"github.com/quickcart/payments/internal/domain"
	"github.com/quickcart/payments/internal/infrastructure/idempotency"
	"github.com/quickcart/payments/internal/infrastructure/kafka"
	"github.com/quickcart/payments/internal/infrastructure/logger"
	"github.com/quickcart/payments/internal/infrastructure/metrics"
	"github.com/quickcart/payments/internal/infrastructure/migrate"
	"github.com/quickcart/payments/internal/infrastructure/notifier"
	"github.com/quickcart/payments/internal/infrastructure/postgres"
	"github.com/quickcart/payments/internal/infrastructure/postgres/repository"
	"github.com/quickcart/payments/internal/infrastructure/retry"
	"github.com/quickcart/payments/internal/infrastructure/stripegateway"
)

type PaymentDependencies struct {
	Config      *config.PaymentConfig
	DB          *gorm.DB
	RedisClient *redis.Client
	Metrics     *metrics.PaymentMetrics
	Gateway     *stripegateway.Gateway
	Publisher   *kafka.DefaultKafkaPublisher
	Store       *idempotency.RedisStore
	Notifier    *notifier.HTTPOrderNotifier
	PaymentRepo domain.PaymentRepository
	EventLog    logger.WebhookEventLogger
}

func InitializePaymentDependencies() (*PaymentDependencies, error) {
	cfg := config.MustLoadPayment()
	logger.Setup(cfg.LogConfig)

	db := postgres.MustInitPaymentDB(cfg)
	if cfg.PaymentDB.MigrationsPath != "" {
		if err := migrate.RunMigrations(db, cfg.PaymentDB.MigrationsPath); err != nil {
			return nil, fmt.Errorf("payment migrations: %w", err)
		}
	}

	redisClient, err := initRedis(cfg.Redis)
	if err != nil {
		return nil, err
	}

	paymentMetrics := metrics.NewPaymentMetrics()
	store := idempotency.NewRedisStore(redisClient, idempotency.Config{
		KeyPrefix: cfg.Idempotency.KeyPrefix,
		LockTTL:   cfg.Idempotency.LockTTL,
		RecordTTL: cfg.Idempotency.RecordTTL,
	}, &paymentMetrics.IdempotencyFailuresTotal)

	executor := retry.NewExecutor(cfg.Retry.MaxAttempts, cfg.Retry.BaseDelay)
	orderNotifier := notifier.NewHTTPOrderNotifier(cfg.OrdersHook.URL, cfg.OrdersHook.APIKey, executor)

	return &PaymentDependencies{
		Config:      cfg,
		DB:          db,
		RedisClient: redisClient,
		Metrics:     paymentMetrics,
		Gateway:     stripegateway.NewGateway(cfg.Stripe.SecretKey, cfg.Stripe.WebhookSecret, cfg.IsProduction()),
		Publisher:   kafka.NewDefaultKafkaPublisher(cfg.Kafka.Brokers),
		Store:       store,
		Notifier:    orderNotifier,
		PaymentRepo: repository.NewDefaultPaymentRepository(db),
		EventLog:    logger.NewPGWebhookEventLogger(db),
	}, nil
}

type OrderDependencies struct {
	Config      *config.OrderConfig
	DB          *gorm.DB
	RedisClient *redis.Client
	Metrics     *metrics.OrderServiceMetrics
	Publisher   *kafka.DefaultKafkaPublisher
	Store       *idempotency.RedisStore
	OrderRepo   domain.OrderRepository
	EventLog    logger.WebhookEventLogger
}

func InitializeOrderDependencies() (*OrderDependencies, error) {
	cfg := config.MustLoadOrder()
	logger.Setup(cfg.LogConfig)

	db := postgres.MustInitOrderDB(cfg)
	if cfg.OrderDB.MigrationsPath != "" {
		if err := migrate.RunMigrations(db, cfg.OrderDB.MigrationsPath); err != nil {
			return nil, fmt.Errorf("order migrations: %w", err)
		}
	}

	redisClient, err := initRedis(cfg.Redis)
	if err != nil {
		return nil, err
	}

	orderMetrics := metrics.NewOrderServiceMetrics()
	store := idempotency.NewRedisStore(redisClient, idempotency.Config{
		KeyPrefix: cfg.Idempotency.KeyPrefix,
		LockTTL:   cfg.Idempotency.LockTTL,
		RecordTTL: cfg.Idempotency.RecordTTL,
	}, &orderMetrics.IdempotencyFailuresTotal)

	return &OrderDependencies{
		Config:      cfg,
		DB:          db,
		RedisClient: redisClient,
		Metrics:     orderMetrics,
		Publisher:   kafka.NewDefaultKafkaPublisher(cfg.Kafka.Brokers),
		Store:       store,
		OrderRepo:   repository.NewDefaultOrderRepository(db),
		EventLog:    logger.NewPGWebhookEventLogger(db),
	}, nil
}

func initRedis(cfg config.Redis) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("redis ping %s: %w", cfg.Addr, err)
	}
	return client, nil
}
