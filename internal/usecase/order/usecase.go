package usecase

import (
	"context"

	"github.com/quickcart/payments/internal/domain"
	"github.com/quickcart/payments/internal/infrastructure/logger"
	"github.com/quickcart/payments/internal/infrastructure/metrics"
	orderdto "github.com/quickcart/payments/internal/usecase/dto/order"
)

type OrderUsecase interface {
	CreateOrder(ctx context.Context, input *orderdto.CreateOrderInput) (*orderdto.OrderOutput, error)
	GetOrderByID(ctx context.Context, orderID string) (*domain.Order, error)
	ShipOrder(ctx context.Context, orderID string) error
	ApplyPaymentNotification(ctx context.Context, input *orderdto.PaymentNotificationInput) (domain.WebhookResult, error)
}

type DefaultOrderUsecase struct {
	OrderRepo domain.OrderRepository
	Store     domain.IdempotencyStore
	Publisher domain.PublisherPort
	EventLog  logger.WebhookEventLogger
	Metrics   *metrics.OrderServiceMetrics

	KafkaTopic string
}

func NewDefaultOrderUsecase(
	orderRepo domain.OrderRepository,
	store domain.IdempotencyStore,
	publisher domain.PublisherPort,
	eventLog logger.WebhookEventLogger,
	orderMetrics *metrics.OrderServiceMetrics,
	kafkaTopic string) *DefaultOrderUsecase {

	return &DefaultOrderUsecase{
		OrderRepo:  orderRepo,
		Store:      store,
		Publisher:  publisher,
		EventLog:   eventLog,
		Metrics:    orderMetrics,
		KafkaTopic: kafkaTopic,
	}
}
