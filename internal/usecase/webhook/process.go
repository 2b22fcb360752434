package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/quickcart/payments/internal/domain"
	publisher "github.com/quickcart/payments/internal/infrastructure/kafka"
	"github.com/quickcart/payments/internal/infrastructure/logger"
	"github.com/quickcart/payments/internal/infrastructure/stripegateway"
)

// ProcessWebhook runs one verified processor event through dedup, the
// per-event lock, transition planning, persistence and fan-out. A
// returned error means a retryable infrastructure failure; every
// business decision comes back as a WebhookResult with a nil error.
func (uc *DefaultWebhookUsecase) ProcessWebhook(ctx context.Context, event domain.VendorEvent) (domain.WebhookResult, error) {
	start := time.Now()
	defer func() {
		uc.recordWebhookDuration(event.Type, time.Since(start).Seconds())
	}()

	if event.PaymentID == "" {
		return uc.finish(ctx, event, domain.Ignored(domain.ReasonNoPaymentID), false), nil
	}

	if uc.Store.IsDuplicate(ctx, event.ID) {
		return uc.finish(ctx, event, domain.WebhookResult{Outcome: domain.OutcomeAlreadyProcessed}, false), nil
	}

	if !uc.Store.AcquireLock(ctx, event.ID) {
		// Another delivery of this event is in flight. Give it one
		// chance to finish before acknowledging contention.
		select {
		case <-ctx.Done():
		case <-time.After(uc.LockRetryWait):
		}
		if uc.Store.IsDuplicate(ctx, event.ID) {
			return uc.finish(ctx, event, domain.WebhookResult{Outcome: domain.OutcomeAlreadyProcessed}, false), nil
		}
		return uc.finish(ctx, event, domain.WebhookResult{Outcome: domain.OutcomeLockContention}, false), nil
	}
	defer uc.Store.ReleaseLock(ctx, event.ID)

	payment, err := uc.PaymentRepo.GetPaymentByID(ctx, event.PaymentID)
	if err != nil {
		if errors.Is(err, domain.ErrPaymentNotFound) {
			// Not marked processed: the payment row can still land
			// after a race with creation, and the processor retries.
			return uc.finish(ctx, event, domain.Ignored(domain.ReasonPaymentNotFound), false), nil
		}
		return domain.WebhookResult{}, fmt.Errorf("load payment %s: %w", event.PaymentID, err)
	}

	target, handled := stripegateway.TransitionTarget(event)
	if !handled {
		return uc.finish(ctx, event, domain.Ignored(domain.ReasonUnhandledEvent), true), nil
	}

	decision := domain.PlanPaymentTransition(payment.Status, target)
	if !decision.Allowed {
		return uc.finish(ctx, event, domain.Ignored(decision.Reason), true), nil
	}

	upd := domain.PaymentStatusUpdate{
		Status:       target,
		ProcessorRef: event.ProcessorRef,
		ReceiptURL:   event.ReceiptURL,
	}
	if err := uc.PaymentRepo.UpdatePaymentStatus(ctx, payment.ID, upd); err != nil {
		return domain.WebhookResult{}, fmt.Errorf("update payment %s to %s: %w", payment.ID, target, err)
	}
	uc.recordPaymentTransition(string(payment.Status), string(target))

	slog.Info("webhook applied payment transition",
		"event_id", event.ID,
		"event_type", event.Type,
		"payment_id", payment.ID,
		"from_status", string(payment.Status),
		"to_status", string(target),
	)

	uc.notifyOrderService(ctx, payment, event, target)
	uc.publishPaymentEvent(payment, event, target)

	return uc.finish(ctx, event, domain.Processed(), true), nil
}

// finish stamps the terminal bookkeeping for one delivery: the
// processed mark when asked for, the audit row and the outcome metric.
// It runs before the deferred lock release.
func (uc *DefaultWebhookUsecase) finish(ctx context.Context, event domain.VendorEvent, result domain.WebhookResult, mark bool) domain.WebhookResult {
	if mark {
		if err := uc.Store.MarkProcessed(ctx, event.ID, event.Type); err != nil {
			slog.Warn("failed to mark webhook event processed",
				"event_id", event.ID,
				"error", err.Error(),
			)
		}
	}
	uc.auditOutcome(ctx, event, result)
	uc.recordWebhookOutcome(event.Type, result)
	return result
}

func (uc *DefaultWebhookUsecase) auditOutcome(ctx context.Context, event domain.VendorEvent, result domain.WebhookResult) {
	if uc.EventLog == nil {
		return
	}
	row := logger.WebhookEventLog{
		EventID:   event.ID,
		EventType: event.Type,
		PaymentID: event.PaymentID,
		OrderID:   event.OrderID,
		Outcome:   string(result.Outcome),
		Reason:    string(result.Reason),
	}
	if err := uc.EventLog.LogWebhookEvent(ctx, row); err != nil {
		slog.Warn("failed to write webhook audit row",
			"event_id", event.ID,
			"error", err.Error(),
		)
	}
}

func (uc *DefaultWebhookUsecase) notifyOrderService(ctx context.Context, payment *domain.Payment, event domain.VendorEvent, target domain.PaymentStatus) {
	ref := event.ProcessorRef
	if ref == "" {
		ref = payment.ProcessorRef
	}

	notification := domain.OrderNotification{
		OrderID:      payment.OrderID,
		PaymentID:    payment.ID,
		Status:       strings.ToLower(string(target)),
		ProcessorRef: ref,
		ReceiptURL:   event.ReceiptURL,
		CheckoutURL:  event.CheckoutURL,
	}
	if err := uc.Notifier.Notify(ctx, notification); err != nil {
		// The payment write stays committed. The order side converges
		// through later notifications or its own reconciliation.
		slog.Warn("order service notification failed",
			"payment_id", payment.ID,
			"order_id", payment.OrderID,
			"status", notification.Status,
			"error", err.Error(),
		)
		uc.recordNotifierDelivery("failed")
		return
	}
	uc.recordNotifierDelivery("delivered")
}

func (uc *DefaultWebhookUsecase) publishPaymentEvent(payment *domain.Payment, event domain.VendorEvent, target domain.PaymentStatus) {
	if uc.Publisher == nil {
		return
	}

	ref := event.ProcessorRef
	if ref == "" {
		ref = payment.ProcessorRef
	}

	go func(pe publisher.PaymentEvent) {
		v, err := json.Marshal(pe)
		if err != nil {
			slog.Error("failed to marshal kafka PaymentEvent", "error", err.Error())
			return
		}
		if err := uc.Publisher.Publish(uc.KafkaTopic, domain.Message{Key: []byte(pe.PaymentID), Value: v}); err != nil {
			slog.Error("failed to publish kafka PaymentEvent", "stage", "webhook", "error", err.Error())
		}
	}(publisher.PaymentEvent{
		PaymentID:    payment.ID,
		OrderID:      payment.OrderID,
		UserID:       payment.UserID,
		Status:       string(target),
		Amount:       payment.Amount,
		Currency:     payment.Currency,
		ProcessorRef: ref,
		EventID:      event.ID,
		EventType:    event.Type,
	})
}
