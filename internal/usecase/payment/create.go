package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/quickcart/payments/internal/domain"
	publisher "github.com/quickcart/payments/internal/infrastructure/kafka"
	paymentdto "github.com/quickcart/payments/internal/usecase/dto/payment"
)

// CreatePayment registers a CREATED payment and opens the processor
// object for it. The processor call happens first so the webhook
// metadata carries a payment ID that is about to exist; a webhook
// racing the insert reports payment_not_found and gets retried.
func (uc *DefaultPaymentUsecase) CreatePayment(ctx context.Context, input *paymentdto.CreatePaymentInput) (*paymentdto.PaymentOutput, error) {
	paymentID := uuid.New().String()
	mode := input.Mode
	if mode == "" {
		mode = paymentdto.ModeCheckout
	}

	now := time.Now().UTC()
	payment := &domain.Payment{
		ID:        paymentID,
		OrderID:   input.OrderID,
		UserID:    input.UserID,
		Amount:    input.Amount,
		Currency:  input.Currency,
		Status:    domain.PaymentCreated,
		CreatedAt: now,
		UpdatedAt: now,
	}

	switch mode {
	case paymentdto.ModeCheckout:
		session, err := uc.Gateway.CreateCheckoutSession(ctx, domain.CheckoutSessionInput{
			PaymentID:   paymentID,
			OrderID:     input.OrderID,
			Amount:      input.Amount,
			Currency:    input.Currency,
			ProductName: input.ProductName,
			SuccessURL:  uc.SuccessURL,
			CancelURL:   uc.CancelURL,
		})
		if err != nil {
			return nil, fmt.Errorf("create checkout session: %w", err)
		}
		payment.ProcessorRef = session.SessionID
		payment.CheckoutURL = session.CheckoutURL

	case paymentdto.ModeIntent:
		intent, err := uc.Gateway.CreatePaymentIntent(ctx, domain.PaymentIntentInput{
			PaymentID: paymentID,
			OrderID:   input.OrderID,
			Amount:    input.Amount,
			Currency:  input.Currency,
		})
		if err != nil {
			return nil, fmt.Errorf("create payment intent: %w", err)
		}
		payment.ProcessorRef = intent.IntentID
		payment.ClientSecret = intent.ClientSecret

	default:
		return nil, fmt.Errorf("unknown payment mode %q", mode)
	}

	if err := uc.PaymentRepo.CreatePayment(ctx, payment); err != nil {
		return nil, fmt.Errorf("persist payment %s: %w", paymentID, err)
	}

	uc.recordPaymentCreated(payment.Currency, mode)

	slog.Info("payment created",
		"payment_id", paymentID,
		"order_id", input.OrderID,
		"amount", input.Amount,
		"currency", input.Currency,
		"mode", mode,
	)

	uc.publishPaymentEvent(payment, "payment.created")

	return paymentdto.ToPaymentOutput(payment), nil
}

func (uc *DefaultPaymentUsecase) publishPaymentEvent(payment *domain.Payment, eventType string) {
	if uc.Publisher == nil {
		return
	}

	go func(pe publisher.PaymentEvent) {
		v, err := json.Marshal(pe)
		if err != nil {
			slog.Error("failed to marshal kafka PaymentEvent", "error", err.Error())
			return
		}
		if err := uc.Publisher.Publish(uc.KafkaTopic, domain.Message{Key: []byte(pe.PaymentID), Value: v}); err != nil {
			slog.Error("failed to publish kafka PaymentEvent", "stage", eventType, "error", err.Error())
		}
	}(publisher.PaymentEvent{
		PaymentID:    payment.ID,
		OrderID:      payment.OrderID,
		UserID:       payment.UserID,
		Status:       string(payment.Status),
		Amount:       payment.Amount,
		Currency:     payment.Currency,
		ProcessorRef: payment.ProcessorRef,
		EventType:    eventType,
	})
}
