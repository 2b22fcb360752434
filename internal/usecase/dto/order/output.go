package orderdto

import (
	"time"

	"github.com/quickcart/payments/internal/domain"
)

type OrderItemOutput struct {
	ProductID string
	Name      string
	Quantity  int
	UnitPrice int64
}

type OrderOutput struct {
	OrderID     string
	Number      string
	UserID      string
	Status      string
	Items       []OrderItemOutput
	Total       int64
	PaymentID   string
	ReceiptURL  string
	CheckoutURL string
	CreatedAt   time.Time
}

func ToOrderOutput(o *domain.Order) *OrderOutput {
	items := make([]OrderItemOutput, 0, len(o.Items))
	for _, item := range o.Items {
		items = append(items, OrderItemOutput{
			ProductID: item.ProductID,
			Name:      item.Name,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
		})
	}
	return &OrderOutput{
		OrderID:     o.ID,
		Number:      o.Number,
		UserID:      o.UserID,
		Status:      string(o.Status),
		Items:       items,
		Total:       o.Total,
		PaymentID:   o.PaymentID,
		ReceiptURL:  o.ReceiptURL,
		CheckoutURL: o.CheckoutURL,
		CreatedAt:   o.CreatedAt,
	}
}
