package domain

type WebhookOutcome string

const (
	OutcomeProcessed        WebhookOutcome = "processed"
	OutcomeIgnored          WebhookOutcome = "ignored"
	OutcomeAlreadyProcessed WebhookOutcome = "already_processed"
	OutcomeLockContention   WebhookOutcome = "lock_contention"
)

type IgnoreReason string

const (
	ReasonAlreadyInState    IgnoreReason = "already_in_state"
	ReasonInvalidTransition IgnoreReason = "invalid_transition"
	ReasonNoPaymentID       IgnoreReason = "no_payment_id"
	ReasonPaymentNotFound   IgnoreReason = "payment_not_found"
	ReasonOrderNotFound     IgnoreReason = "order_not_found"
	ReasonUnhandledEvent    IgnoreReason = "unhandled_event_type"
)

// VendorEvent is a processor webhook normalized to the fields the
// pipeline needs. PaymentID comes from the event's metadata; an empty
// one means the event cannot be tied to a local payment and is ignored
// before any store or repository work.
type VendorEvent struct {
	ID           string
	Type         string
	PaymentID    string
	OrderID      string
	ProcessorRef string
	ReceiptURL   string
	CheckoutURL  string
	ChargeStatus string
	ChargePaid   bool
}

type WebhookResult struct {
	Outcome WebhookOutcome
	Reason  IgnoreReason
}

func Processed() WebhookResult {
	return WebhookResult{Outcome: OutcomeProcessed}
}

func Ignored(reason IgnoreReason) WebhookResult {
	return WebhookResult{Outcome: OutcomeIgnored, Reason: reason}
}
