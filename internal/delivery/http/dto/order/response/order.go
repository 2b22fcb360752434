package response

import (
	"strings"
	"time"

	"github.com/quickcart/payments/internal/domain"
	orderdto "github.com/quickcart/payments/internal/usecase/dto/order"
)

type OrderItemResponse struct {
	ProductID string `json:"product_id"`
	Name      string `json:"name"`
	Quantity  int    `json:"quantity"`
	UnitPrice int64  `json:"unit_price"`
}

type OrderResponse struct {
	OrderID     string              `json:"order_id"`
	Number      string              `json:"number"`
	UserID      string              `json:"user_id"`
	Status      string              `json:"status"`
	Items       []OrderItemResponse `json:"items"`
	Total       int64               `json:"total"`
	PaymentID   string              `json:"payment_id,omitempty"`
	ReceiptURL  string              `json:"receipt_url,omitempty"`
	CheckoutURL string              `json:"checkout_url,omitempty"`
	CreatedAt   time.Time           `json:"created_at"`
}

type NotificationAck struct {
	Status string `json:"status"`
	Reason string `json:"reason,omitempty"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func FromOrderOutput(out *orderdto.OrderOutput) OrderResponse {
	items := make([]OrderItemResponse, 0, len(out.Items))
	for _, item := range out.Items {
		items = append(items, OrderItemResponse{
			ProductID: item.ProductID,
			Name:      item.Name,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
		})
	}
	return OrderResponse{
		OrderID:     out.OrderID,
		Number:      out.Number,
		UserID:      out.UserID,
		Status:      strings.ToLower(out.Status),
		Items:       items,
		Total:       out.Total,
		PaymentID:   out.PaymentID,
		ReceiptURL:  out.ReceiptURL,
		CheckoutURL: out.CheckoutURL,
		CreatedAt:   out.CreatedAt,
	}
}

func FromOrder(o *domain.Order) OrderResponse {
	return FromOrderOutput(orderdto.ToOrderOutput(o))
}
