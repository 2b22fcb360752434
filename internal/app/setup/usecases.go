package setup

import (
	orderusecase "github.com/quickcart/payments/internal/usecase/order"
	paymentusecase "github.com/quickcart/payments/internal/usecase/payment"
	webhookusecase "github.com/quickcart/payments/internal/usecase/webhook"
)

type PaymentUseCases struct {
	WebhookUsecase webhookusecase.WebhookUsecase
	PaymentUsecase paymentusecase.PaymentUsecase
}

func InitializePaymentUseCases(deps *PaymentDependencies) *PaymentUseCases {
	cfg := deps.Config

	webhookUsecase := webhookusecase.NewDefaultWebhookUsecase(
		deps.PaymentRepo,
		deps.Store,
		deps.Notifier,
		deps.Publisher,
		deps.EventLog,
		deps.Metrics,
		cfg.Kafka.Topic,
		cfg.Idempotency.LockRetryWait,
	)

	paymentUsecase := paymentusecase.NewDefaultPaymentUsecase(
		deps.PaymentRepo,
		deps.Gateway,
		deps.Notifier,
		deps.Publisher,
		deps.Metrics,
		cfg.Kafka.Topic,
		cfg.Stripe.SuccessURL,
		cfg.Stripe.CancelURL,
		cfg.Expiry.StaleAfter,
	)

	return &PaymentUseCases{
		WebhookUsecase: webhookUsecase,
		PaymentUsecase: paymentUsecase,
	}
}

type OrderUseCases struct {
	OrderUsecase orderusecase.OrderUsecase
}

func InitializeOrderUseCases(deps *OrderDependencies) *OrderUseCases {
	orderUsecase := orderusecase.NewDefaultOrderUsecase(
		deps.OrderRepo,
		deps.Store,
		deps.Publisher,
		deps.EventLog,
		deps.Metrics,
		deps.Config.Kafka.Topic,
	)

	return &OrderUseCases{OrderUsecase: orderUsecase}
}
