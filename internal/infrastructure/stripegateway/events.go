package stripegateway

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/stripe/stripe-go/v81/webhook"

	"github.com/quickcart/payments/internal/domain"
)

// Sentinel identity for payloads that could not be parsed. The
// orchestrator sees no payment ID on such an event and reports
// ignored/no_payment_id without touching the idempotency store.
const (
	UnknownEventID   = "unknown"
	UnknownEventType = "unknown"
)

// VerifyAndParse turns a raw webhook delivery into a VendorEvent. In
// strict mode an invalid or missing signature is an error
// (domain.ErrInvalidSignature); outside it verification is skipped and
// logged. Malformed bodies never error, they become the unknown event.
func (g *Gateway) VerifyAndParse(body []byte, signature string) (domain.VendorEvent, error) {
	if !g.strict {
		slog.Warn("webhook signature verification skipped outside production",
			"signed", signature != "",
		)
		return parseLenient(body), nil
	}

	event, err := webhook.ConstructEventWithOptions(body, signature, g.webhookSecret,
		webhook.ConstructEventOptions{IgnoreAPIVersionMismatch: true})
	if err != nil {
		if isSignatureError(err) {
			return domain.VendorEvent{}, fmt.Errorf("%w: %v", domain.ErrInvalidSignature, err)
		}
		// signature checked out, body did not parse
		slog.Warn("signed webhook with unparseable payload, treating as unknown event",
			"error", err.Error(),
		)
		return unknownEvent(), nil
	}
	return buildEvent(event.ID, string(event.Type), event.Data.Object), nil
}

func isSignatureError(err error) bool {
	return errors.Is(err, webhook.ErrNotSigned) ||
		errors.Is(err, webhook.ErrNoValidSignature) ||
		errors.Is(err, webhook.ErrInvalidHeader) ||
		errors.Is(err, webhook.ErrTooOld)
}

func unknownEvent() domain.VendorEvent {
	return domain.VendorEvent{ID: UnknownEventID, Type: UnknownEventType}
}

type rawEvent struct {
	ID   string `json:"id"`
	Type string `json:"type"`
	Data struct {
		Object map[string]interface{} `json:"object"`
	} `json:"data"`
}

func parseLenient(body []byte) domain.VendorEvent {
	var raw rawEvent
	if err := json.Unmarshal(body, &raw); err != nil {
		slog.Warn("unparseable webhook payload, treating as unknown event", "error", err.Error())
		return unknownEvent()
	}
	if raw.ID == "" {
		slog.Warn("webhook payload without an event id, treating as unknown event")
		return unknownEvent()
	}
	return buildEvent(raw.ID, raw.Type, raw.Data.Object)
}

func buildEvent(id, eventType string, object map[string]interface{}) domain.VendorEvent {
	ev := domain.VendorEvent{ID: id, Type: eventType}
	if object == nil {
		return ev
	}
	if metadata, ok := object["metadata"].(map[string]interface{}); ok {
		ev.PaymentID, _ = metadata["payment_id"].(string)
		ev.OrderID, _ = metadata["order_id"].(string)
	}
	switch {
	case strings.HasPrefix(eventType, "checkout.session."):
		ev.ProcessorRef, _ = object["payment_intent"].(string)
		ev.CheckoutURL, _ = object["url"].(string)
	case strings.HasPrefix(eventType, "payment_intent."):
		ev.ProcessorRef, _ = object["id"].(string)
	case strings.HasPrefix(eventType, "charge."):
		ev.ProcessorRef, _ = object["payment_intent"].(string)
		ev.ReceiptURL, _ = object["receipt_url"].(string)
		ev.ChargeStatus, _ = object["status"].(string)
		ev.ChargePaid, _ = object["paid"].(bool)
	}
	return ev
}

// PaymentStatusFromVendor maps a Stripe PaymentIntent status string
// onto the internal payment status. Anything unmapped reads as FAILED.
func PaymentStatusFromVendor(vendorStatus string) domain.PaymentStatus {
	switch vendorStatus {
	case "requires_payment_method":
		return domain.PaymentCreated
	case "requires_confirmation", "requires_action", "processing", "requires_capture":
		return domain.PaymentProcessing
	case "canceled":
		return domain.PaymentCanceled
	case "succeeded":
		return domain.PaymentSucceeded
	default:
		return domain.PaymentFailed
	}
}

// TransitionTarget resolves the payment status an event asks for. The
// second return is false for event types outside the handled set and
// for charge updates that do not describe a successful paid charge.
func TransitionTarget(ev domain.VendorEvent) (domain.PaymentStatus, bool) {
	switch ev.Type {
	case "checkout.session.completed":
		return domain.PaymentSucceeded, true
	case "checkout.session.expired":
		return domain.PaymentCanceled, true
	case "checkout.session.async_payment_failed":
		return domain.PaymentFailed, true
	case "payment_intent.payment_failed":
		return domain.PaymentFailed, true
	case "payment_intent.created":
		return domain.PaymentCreated, true
	case "payment_intent.canceled":
		return domain.PaymentCanceled, true
	case "charge.succeeded", "charge.updated":
		if ev.ChargeStatus == "succeeded" && ev.ChargePaid {
			return domain.PaymentSucceeded, true
		}
		return "", false
	case "charge.refunded":
		return domain.PaymentRefunded, true
	default:
		return "", false
	}
}
