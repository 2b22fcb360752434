package domain

import "time"

type OrderStatus string

const (
	OrderCreated  OrderStatus = "CREATED"
	OrderPending  OrderStatus = "PENDING"
	OrderPaid     OrderStatus = "PAID"
	OrderShipped  OrderStatus = "SHIPPED"
	OrderCanceled OrderStatus = "CANCELED"
	OrderFailed   OrderStatus = "FAILED"
	OrderRefunded OrderStatus = "REFUNDED"
)

type OrderItem struct {
	ProductID string
	Name      string
	Quantity  int
	UnitPrice int64
}

type Order struct {
	ID                string
	Number            string
	UserID            string
	Status            OrderStatus
	Items             []OrderItem
	Total             int64
	BillingAddressID  string
	ShippingAddressID string
	PaymentID         string
	ReceiptURL        string
	CheckoutURL       string
	CreatedAt         time.Time
}

func (o *Order) ComputeTotal() int64 {
	var total int64
	for _, item := range o.Items {
		total += item.UnitPrice * int64(item.Quantity)
	}
	return total
}

// orderNext mirrors the payment DAG on the order side. PAID may be
// reached straight from CREATED when the pending notification was lost.
var orderNext = map[OrderStatus][]OrderStatus{
	OrderCreated:  {OrderPending, OrderPaid, OrderCanceled, OrderFailed},
	OrderPending:  {OrderPaid, OrderCanceled, OrderFailed},
	OrderPaid:     {OrderShipped, OrderRefunded},
	OrderShipped:  {OrderRefunded},
	OrderCanceled: {},
	OrderFailed:   {},
	OrderRefunded: {},
}

func PlanOrderTransition(current, target OrderStatus) TransitionDecision {
	if target == current {
		return TransitionDecision{Reason: ReasonAlreadyInState}
	}
	for _, next := range orderNext[current] {
		if next == target {
			return TransitionDecision{Allowed: true}
		}
	}
	return TransitionDecision{Reason: ReasonInvalidTransition}
}

// OrderStatusForPayment maps a payment status carried by a notification
// onto the order status that should follow it in lockstep.
func OrderStatusForPayment(status PaymentStatus) (OrderStatus, bool) {
	switch status {
	case PaymentCreated, PaymentPending, PaymentProcessing:
		return OrderPending, true
	case PaymentSucceeded:
		return OrderPaid, true
	case PaymentFailed:
		return OrderFailed, true
	case PaymentCanceled:
		return OrderCanceled, true
	case PaymentRefunded:
		return OrderRefunded, true
	default:
		return "", false
	}
}
