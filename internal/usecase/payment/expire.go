package usecase

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/quickcart/payments/internal/domain"
)

// ExpireStalePayments cancels CREATED payments older than StaleAfter.
// Abandoned checkouts never get a terminal webhook, so the sweep is
// what closes them. Each cancellation fans out exactly like a
// webhook-driven CANCELED transition.
func (uc *DefaultPaymentUsecase) ExpireStalePayments(ctx context.Context) error {
	cutoff := time.Now().UTC().Add(-uc.StaleAfter)
	stale, err := uc.PaymentRepo.FindStaleCreated(ctx, cutoff)
	if err != nil {
		return err
	}

	var expired int
	for _, payment := range stale {
		decision := domain.PlanPaymentTransition(payment.Status, domain.PaymentCanceled)
		if !decision.Allowed {
			continue
		}

		upd := domain.PaymentStatusUpdate{Status: domain.PaymentCanceled}
		if err := uc.PaymentRepo.UpdatePaymentStatus(ctx, payment.ID, upd); err != nil {
			slog.Error("failed to cancel stale payment",
				"payment_id", payment.ID,
				"error", err.Error(),
			)
			continue
		}
		expired++
		uc.recordStalePaymentExpired()
		uc.recordPaymentTransition(string(payment.Status), string(domain.PaymentCanceled))

		notification := domain.OrderNotification{
			OrderID:      payment.OrderID,
			PaymentID:    payment.ID,
			Status:       strings.ToLower(string(domain.PaymentCanceled)),
			ProcessorRef: payment.ProcessorRef,
		}
		if err := uc.Notifier.Notify(ctx, notification); err != nil {
			slog.Warn("order service notification failed",
				"payment_id", payment.ID,
				"order_id", payment.OrderID,
				"status", notification.Status,
				"error", err.Error(),
			)
		}

		canceled := *payment
		canceled.Status = domain.PaymentCanceled
		uc.publishPaymentEvent(&canceled, "payment.expired")

		slog.Info("stale payment canceled",
			"payment_id", payment.ID,
			"order_id", payment.OrderID,
			"created_at", payment.CreatedAt,
		)
	}

	if expired > 0 {
		slog.Info("stale payment sweep finished", "expired", expired, "candidates", len(stale))
	}
	return nil
}
