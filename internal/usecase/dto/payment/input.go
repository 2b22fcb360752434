package paymentdto

// Checkout modes. A hosted checkout returns a redirect URL, an intent
// returns a client secret for an embedded payment form.
const (
	ModeCheckout = "checkout"
	ModeIntent   = "intent"
)

type CreatePaymentInput struct {
	OrderID     string
	UserID      string
	Amount      int64
	Currency    string
	ProductName string
	Mode        string
}
