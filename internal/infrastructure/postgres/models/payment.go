package models

import (
	"time"

	"github.com/quickcart/payments/internal/domain"
)

type PaymentModel struct {
	ID           string               `gorm:"primaryKey;type:uuid"`
	OrderID      string               `gorm:"type:uuid;index:idx_payments_order"`
	UserID       string               `gorm:"type:uuid;index:idx_payments_user"`
	Amount       int64                `gorm:"not null"`
	Currency     string               `gorm:"not null"`
	Status       domain.PaymentStatus `gorm:"index:idx_payments_status"`
	ProcessorRef string               `gorm:"index:idx_payments_processor_ref"`
	ClientSecret string
	CheckoutURL  string
	ReceiptURL   string
	CreatedAt    time.Time `gorm:"index:idx_payments_created_at"`
	UpdatedAt    time.Time
}

func (PaymentModel) TableName() string {
	return "payments"
}
