package models

import (
	"time"

	"github.com/quickcart/payments/internal/domain"
)

type OrderModel struct {
	ID                string             `gorm:"primaryKey;type:uuid"`
	Number            string             `gorm:"uniqueIndex:idx_orders_number"`
	UserID            string             `gorm:"type:uuid;index:idx_orders_user"`
	Status            domain.OrderStatus `gorm:"index:idx_orders_status"`
	Total             int64
	BillingAddressID  string `gorm:"type:uuid"`
	ShippingAddressID string `gorm:"type:uuid"`
	PaymentID         string `gorm:"index:idx_orders_payment"`
	ReceiptURL        string
	CheckoutURL       string
	Items             []OrderItemModel `gorm:"foreignKey:OrderID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	CreatedAt         time.Time        `gorm:"index:idx_orders_created_at"`
	UpdatedAt         time.Time
}

func (OrderModel) TableName() string {
	return "orders"
}

type OrderItemModel struct {
	ID        uint   `gorm:"primaryKey"`
	OrderID   string `gorm:"type:uuid;not null;index:idx_order_items_order"`
	ProductID string `gorm:"type:uuid"`
	Name      string
	Quantity  int
	UnitPrice int64
}

func (OrderItemModel) TableName() string {
	return "order_items"
}
