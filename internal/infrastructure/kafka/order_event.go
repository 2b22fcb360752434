package kafka

type OrderEvent struct {
	OrderID   string `json:"order_id"`
	Number    string `json:"number,omitempty"`
	UserID    string `json:"user_id,omitempty"`
	Status    string `json:"status"`
	Total     int64  `json:"total"`
	PaymentID string `json:"payment_id,omitempty"`
}
