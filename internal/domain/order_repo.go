package domain

import "context"

type OrderRepository interface {
	CreateOrder(ctx context.Context, order *Order) error
	GetOrderByID(ctx context.Context, orderID string) (*Order, error)
	UpdateOrderStatus(ctx context.Context, orderID string, newStatus OrderStatus) error
	SetPaymentRef(ctx context.Context, orderID, paymentID, receiptURL, checkoutURL string) error
}
