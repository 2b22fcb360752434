package kafka

type PaymentEvent struct {
	PaymentID    string `json:"payment_id"`
	OrderID      string `json:"order_id"`
	UserID       string `json:"user_id,omitempty"`
	Status       string `json:"status"`
	Amount       int64  `json:"amount"`
	Currency     string `json:"currency"`
	ProcessorRef string `json:"processor_ref,omitempty"`
	EventID      string `json:"event_id,omitempty"`
	EventType    string `json:"event_type,omitempty"`
}
