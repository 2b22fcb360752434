package request

type OrderItemRequest struct {
	ProductID string `json:"product_id" binding:"required"`
	Name      string `json:"name" binding:"required"`
	Quantity  int    `json:"quantity" binding:"required,gt=0"`
	UnitPrice int64  `json:"unit_price" binding:"required,gt=0"`
}

type CreateOrderRequest struct {
	UserID            string             `json:"user_id" binding:"required"`
	Items             []OrderItemRequest `json:"items" binding:"required,min=1,dive"`
	BillingAddressID  string             `json:"billing_address_id"`
	ShippingAddressID string             `json:"shipping_address_id"`
}

// PaymentNotificationRequest is the body of the internal payment
// webhook. The idempotency key travels in the X-Idempotency-Key header.
type PaymentNotificationRequest struct {
	OrderID      string `json:"order_id" binding:"required"`
	PaymentID    string `json:"payment_id" binding:"required"`
	Status       string `json:"status" binding:"required"`
	ProcessorRef string `json:"processor_ref"`
	ReceiptURL   string `json:"receipt_url"`
	CheckoutURL  string `json:"checkout_url"`
}
