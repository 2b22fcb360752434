package usecase

import (
	"context"
	"time"

	"github.com/quickcart/payments/internal/domain"
	"github.com/quickcart/payments/internal/infrastructure/logger"
	"github.com/quickcart/payments/internal/infrastructure/metrics"
)

type WebhookUsecase interface {
	ProcessWebhook(ctx context.Context, event domain.VendorEvent) (domain.WebhookResult, error)
}

type DefaultWebhookUsecase struct {
	PaymentRepo domain.PaymentRepository
	Store       domain.IdempotencyStore
	Notifier    domain.OrderNotifier
	Publisher   domain.PublisherPort
	EventLog    logger.WebhookEventLogger
	Metrics     *metrics.PaymentMetrics

	KafkaTopic    string
	LockRetryWait time.Duration
}

func NewDefaultWebhookUsecase(
	paymentRepo domain.PaymentRepository,
	store domain.IdempotencyStore,
	orderNotifier domain.OrderNotifier,
	publisher domain.PublisherPort,
	eventLog logger.WebhookEventLogger,
	paymentMetrics *metrics.PaymentMetrics,
	kafkaTopic string,
	lockRetryWait time.Duration) *DefaultWebhookUsecase {

	if lockRetryWait <= 0 {
		lockRetryWait = 200 * time.Millisecond
	}

	return &DefaultWebhookUsecase{
		PaymentRepo:   paymentRepo,
		Store:         store,
		Notifier:      orderNotifier,
		Publisher:     publisher,
		EventLog:      eventLog,
		Metrics:       paymentMetrics,
		KafkaTopic:    kafkaTopic,
		LockRetryWait: lockRetryWait,
	}
}
