package usecase

import (
	"context"
	"time"

	"github.com/quickcart/payments/internal/domain"
	"github.com/quickcart/payments/internal/infrastructure/metrics"
	paymentdto "github.com/quickcart/payments/internal/usecase/dto/payment"
)

type PaymentUsecase interface {
	CreatePayment(ctx context.Context, input *paymentdto.CreatePaymentInput) (*paymentdto.PaymentOutput, error)
	GetPaymentByID(ctx context.Context, paymentID string) (*domain.Payment, error)
	RequestRefund(ctx context.Context, paymentID string) (*paymentdto.RefundOutput, error)
	ExpireStalePayments(ctx context.Context) error
}

type DefaultPaymentUsecase struct {
	PaymentRepo domain.PaymentRepository
	Gateway     domain.ProcessorGateway
	Notifier    domain.OrderNotifier
	Publisher   domain.PublisherPort
	Metrics     *metrics.PaymentMetrics

	KafkaTopic string
	SuccessURL string
	CancelURL  string
	StaleAfter time.Duration
}

func NewDefaultPaymentUsecase(
	paymentRepo domain.PaymentRepository,
	gateway domain.ProcessorGateway,
	orderNotifier domain.OrderNotifier,
	publisher domain.PublisherPort,
	paymentMetrics *metrics.PaymentMetrics,
	kafkaTopic string,
	successURL, cancelURL string,
	staleAfter time.Duration) *DefaultPaymentUsecase {

	if staleAfter <= 0 {
		staleAfter = 24 * time.Hour
	}

	return &DefaultPaymentUsecase{
		PaymentRepo: paymentRepo,
		Gateway:     gateway,
		Notifier:    orderNotifier,
		Publisher:   publisher,
		Metrics:     paymentMetrics,
		KafkaTopic:  kafkaTopic,
		SuccessURL:  successURL,
		CancelURL:   cancelURL,
		StaleAfter:  staleAfter,
	}
}
