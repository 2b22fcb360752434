package domain

import "context"

// OrderNotification is the payload posted to the orders service after a
// payment status mutation. Status carries the lowercase payment status.
type OrderNotification struct {
	OrderID      string
	PaymentID    string
	Status       string
	ProcessorRef string
	ReceiptURL   string
	CheckoutURL  string
}

// OrderNotifier delivers notifications to the orders service. Delivery
// is best-effort: exhausted retries surface as an error the caller logs
// and moves past, never as a rollback of the local payment write.
type OrderNotifier interface {
	Notify(ctx context.Context, notification OrderNotification) error
}
