package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/quickcart/payments/internal/domain"
	"github.com/quickcart/payments/internal/infrastructure/logger"
	orderdto "github.com/quickcart/payments/internal/usecase/dto/order"
)

// ApplyPaymentNotification moves an order in lockstep with its payment.
// Deliveries are deduped by the sender's idempotency key; a contended
// key is reported as lock_contention and the sender retries. Unknown
// payment statuses are an error (the sender is internal, so they mean a
// version skew, not noise).
func (uc *DefaultOrderUsecase) ApplyPaymentNotification(ctx context.Context, input *orderdto.PaymentNotificationInput) (domain.WebhookResult, error) {
	paymentStatus := domain.PaymentStatus(strings.ToUpper(input.Status))
	target, ok := domain.OrderStatusForPayment(paymentStatus)
	if !ok {
		return domain.WebhookResult{}, fmt.Errorf("%w: %q", domain.ErrUnknownStatus, input.Status)
	}

	if uc.Store.IsDuplicate(ctx, input.EventID) {
		return uc.finish(ctx, input, domain.WebhookResult{Outcome: domain.OutcomeAlreadyProcessed}, false), nil
	}
	if !uc.Store.AcquireLock(ctx, input.EventID) {
		return uc.finish(ctx, input, domain.WebhookResult{Outcome: domain.OutcomeLockContention}, false), nil
	}
	defer uc.Store.ReleaseLock(ctx, input.EventID)

	order, err := uc.OrderRepo.GetOrderByID(ctx, input.OrderID)
	if err != nil {
		if errors.Is(err, domain.ErrOrderNotFound) {
			// Unmarked so a retry lands once the order exists.
			return uc.finish(ctx, input, domain.Ignored(domain.ReasonOrderNotFound), false), nil
		}
		return domain.WebhookResult{}, fmt.Errorf("load order %s: %w", input.OrderID, err)
	}

	decision := domain.PlanOrderTransition(order.Status, target)
	if !decision.Allowed {
		return uc.finish(ctx, input, domain.Ignored(decision.Reason), true), nil
	}

	if err := uc.OrderRepo.UpdateOrderStatus(ctx, order.ID, target); err != nil {
		return domain.WebhookResult{}, fmt.Errorf("update order %s to %s: %w", order.ID, target, err)
	}
	uc.recordOrderTransition(string(order.Status), string(target))

	if input.PaymentID != "" {
		if err := uc.OrderRepo.SetPaymentRef(ctx, order.ID, input.PaymentID, input.ReceiptURL, input.CheckoutURL); err != nil {
			// The status write is already committed; the ref columns
			// catch up on the next notification.
			slog.Warn("failed to set payment ref on order",
				"order_id", order.ID,
				"payment_id", input.PaymentID,
				"error", err.Error(),
			)
		}
	}

	slog.Info("payment notification applied",
		"order_id", order.ID,
		"payment_id", input.PaymentID,
		"payment_status", input.Status,
		"from_status", string(order.Status),
		"to_status", string(target),
	)

	updated := *order
	updated.Status = target
	updated.PaymentID = input.PaymentID
	uc.publishOrderEvent(&updated, "order.payment_"+input.Status)

	return uc.finish(ctx, input, domain.Processed(), true), nil
}

// finish stamps the terminal bookkeeping for one notification before
// the deferred lock release runs.
func (uc *DefaultOrderUsecase) finish(ctx context.Context, input *orderdto.PaymentNotificationInput, result domain.WebhookResult, mark bool) domain.WebhookResult {
	if mark {
		if err := uc.Store.MarkProcessed(ctx, input.EventID, "payment_notification"); err != nil {
			slog.Warn("failed to mark notification processed",
				"event_id", input.EventID,
				"error", err.Error(),
			)
		}
	}
	uc.auditOutcome(ctx, input, result)
	uc.recordNotification(string(result.Outcome), string(result.Reason))
	return result
}

func (uc *DefaultOrderUsecase) auditOutcome(ctx context.Context, input *orderdto.PaymentNotificationInput, result domain.WebhookResult) {
	if uc.EventLog == nil {
		return
	}
	row := logger.WebhookEventLog{
		EventID:   input.EventID,
		EventType: "payment_notification",
		PaymentID: input.PaymentID,
		OrderID:   input.OrderID,
		Outcome:   string(result.Outcome),
		Reason:    string(result.Reason),
	}
	if err := uc.EventLog.LogWebhookEvent(ctx, row); err != nil {
		slog.Warn("failed to write notification audit row",
			"event_id", input.EventID,
			"error", err.Error(),
		)
	}
}
