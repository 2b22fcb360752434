package domain

import "context"

type CheckoutSessionInput struct {
	PaymentID   string
	OrderID     string
	Amount      int64
	Currency    string
	ProductName string
	SuccessURL  string
	CancelURL   string
}

type CheckoutSessionRef struct {
	SessionID   string
	CheckoutURL string
}

type PaymentIntentInput struct {
	PaymentID string
	OrderID   string
	Amount    int64
	Currency  string
}

type PaymentIntentRef struct {
	IntentID     string
	ClientSecret string
	Status       PaymentStatus
}

// ProcessorGateway is the payment processor SDK consumed as a black
// box: create a hosted checkout or an intent, ask for a refund. Status
// changes always come back through webhooks, never from these calls.
type ProcessorGateway interface {
	CreateCheckoutSession(ctx context.Context, in CheckoutSessionInput) (*CheckoutSessionRef, error)
	CreatePaymentIntent(ctx context.Context, in PaymentIntentInput) (*PaymentIntentRef, error)
	CreateRefund(ctx context.Context, processorRef string) (string, error)
}
