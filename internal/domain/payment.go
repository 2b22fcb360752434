package domain

import "time"

type PaymentStatus string

const (
	PaymentCreated    PaymentStatus = "CREATED"
	PaymentPending    PaymentStatus = "PENDING"
	PaymentProcessing PaymentStatus = "PROCESSING"
	PaymentSucceeded  PaymentStatus = "SUCCEEDED"
	PaymentFailed     PaymentStatus = "FAILED"
	PaymentCanceled   PaymentStatus = "CANCELED"
	PaymentRefunded   PaymentStatus = "REFUNDED"
)

type Payment struct {
	ID           string
	OrderID      string
	UserID       string
	Amount       int64
	Currency     string
	Status       PaymentStatus
	ProcessorRef string
	ClientSecret string
	CheckoutURL  string
	ReceiptURL   string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// paymentNext is the transition DAG. Statuses may be skipped forward,
// never re-entered. PENDING is a legacy initial value still present in
// older rows; no event targets it.
var paymentNext = map[PaymentStatus][]PaymentStatus{
	PaymentCreated:    {PaymentProcessing, PaymentSucceeded, PaymentCanceled, PaymentFailed},
	PaymentPending:    {PaymentCreated, PaymentProcessing, PaymentSucceeded, PaymentCanceled, PaymentFailed},
	PaymentProcessing: {PaymentSucceeded, PaymentCanceled, PaymentFailed},
	PaymentSucceeded:  {PaymentRefunded},
	PaymentFailed:     {},
	PaymentCanceled:   {},
	PaymentRefunded:   {},
}

type TransitionDecision struct {
	Allowed bool
	Reason  IgnoreReason
}

// PlanPaymentTransition is the single guard for every status write. A
// target equal to the current status reads as already_in_state, a
// target not reachable from it as invalid_transition. Callers report
// disallowed transitions as ignored outcomes, never as errors.
func PlanPaymentTransition(current, target PaymentStatus) TransitionDecision {
	if target == current {
		return TransitionDecision{Reason: ReasonAlreadyInState}
	}
	for _, next := range paymentNext[current] {
		if next == target {
			return TransitionDecision{Allowed: true}
		}
	}
	return TransitionDecision{Reason: ReasonInvalidTransition}
}
