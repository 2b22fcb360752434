package orderdto

type OrderItemInput struct {
	ProductID string
	Name      string
	Quantity  int
	UnitPrice int64
}

type CreateOrderInput struct {
	UserID            string
	Items             []OrderItemInput
	BillingAddressID  string
	ShippingAddressID string
}

// PaymentNotificationInput is the internal webhook payload plus the
// X-Idempotency-Key header it arrived with. Status carries the
// lowercase payment status from the wire.
type PaymentNotificationInput struct {
	EventID      string
	OrderID      string
	PaymentID    string
	Status       string
	ProcessorRef string
	ReceiptURL   string
	CheckoutURL  string
}
