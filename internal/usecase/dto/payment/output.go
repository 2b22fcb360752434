package paymentdto

import (
	"time"

	"github.com/quickcart/payments/internal/domain"
)

type PaymentOutput struct {
	PaymentID    string
	OrderID      string
	UserID       string
	Status       string
	Amount       int64
	Currency     string
	ProcessorRef string
	ClientSecret string
	CheckoutURL  string
	ReceiptURL   string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// RefundOutput reports an accepted refund request. Status still holds
// the pre-refund payment status; REFUNDED arrives by webhook.
type RefundOutput struct {
	PaymentID string
	RefundID  string
	Status    string
}

func ToPaymentOutput(p *domain.Payment) *PaymentOutput {
	return &PaymentOutput{
		PaymentID:    p.ID,
		OrderID:      p.OrderID,
		UserID:       p.UserID,
		Status:       string(p.Status),
		Amount:       p.Amount,
		Currency:     p.Currency,
		ProcessorRef: p.ProcessorRef,
		ClientSecret: p.ClientSecret,
		CheckoutURL:  p.CheckoutURL,
		ReceiptURL:   p.ReceiptURL,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}
