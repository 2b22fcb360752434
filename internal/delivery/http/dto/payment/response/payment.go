package response

import (
	"strings"
	"time"

	"github.com/quickcart/payments/internal/domain"
	paymentdto "github.com/quickcart/payments/internal/usecase/dto/payment"
)

// Statuses render lowercase on the public API; the uppercase enums stay
// internal.
type PaymentResponse struct {
	PaymentID    string    `json:"payment_id"`
	OrderID      string    `json:"order_id"`
	UserID       string    `json:"user_id,omitempty"`
	Status       string    `json:"status"`
	Amount       int64     `json:"amount"`
	Currency     string    `json:"currency"`
	ProcessorRef string    `json:"processor_ref,omitempty"`
	ClientSecret string    `json:"client_secret,omitempty"`
	CheckoutURL  string    `json:"checkout_url,omitempty"`
	ReceiptURL   string    `json:"receipt_url,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type RefundResponse struct {
	PaymentID string `json:"payment_id"`
	RefundID  string `json:"refund_id"`
	Status    string `json:"status"`
}

type WebhookAck struct {
	Status string `json:"status"`
	Reason string `json:"reason,omitempty"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func FromPaymentOutput(out *paymentdto.PaymentOutput) PaymentResponse {
	return PaymentResponse{
		PaymentID:    out.PaymentID,
		OrderID:      out.OrderID,
		UserID:       out.UserID,
		Status:       strings.ToLower(out.Status),
		Amount:       out.Amount,
		Currency:     out.Currency,
		ProcessorRef: out.ProcessorRef,
		ClientSecret: out.ClientSecret,
		CheckoutURL:  out.CheckoutURL,
		ReceiptURL:   out.ReceiptURL,
		CreatedAt:    out.CreatedAt,
		UpdatedAt:    out.UpdatedAt,
	}
}

func FromPayment(p *domain.Payment) PaymentResponse {
	return FromPaymentOutput(paymentdto.ToPaymentOutput(p))
}
