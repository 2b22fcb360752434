package domain

import (
	"context"
	"time"
)

// PaymentStatusUpdate carries a target status plus the processor fields
// some events attach on the way through.
type PaymentStatusUpdate struct {
	Status       PaymentStatus
	ProcessorRef string
	ReceiptURL   string
}

type PaymentRepository interface {
	CreatePayment(ctx context.Context, payment *Payment) error
	GetPaymentByID(ctx context.Context, paymentID string) (*Payment, error)
	// UpdatePaymentStatus persists a planned transition. A CREATED
	// target is always a logged no-op: CREATED is an initial state,
	// never a reachable one.
	UpdatePaymentStatus(ctx context.Context, paymentID string, upd PaymentStatusUpdate) error
	FindStaleCreated(ctx context.Context, olderThan time.Time) ([]*Payment, error)
}
