package notifier

import "github.com/quickcart/payments/internal/domain"

type NotificationPayload struct {
	OrderID      string `json:"order_id"`
	PaymentID    string `json:"payment_id"`
	Status       string `json:"status"`
	ProcessorRef string `json:"processor_ref,omitempty"`
	ReceiptURL   string `json:"receipt_url,omitempty"`
	CheckoutURL  string `json:"checkout_url,omitempty"`
}

func toPayload(n domain.OrderNotification) NotificationPayload {
	return NotificationPayload{
		OrderID:      n.OrderID,
		PaymentID:    n.PaymentID,
		Status:       n.Status,
		ProcessorRef: n.ProcessorRef,
		ReceiptURL:   n.ReceiptURL,
		CheckoutURL:  n.CheckoutURL,
	}
}
