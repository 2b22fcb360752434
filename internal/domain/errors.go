package domain

import "errors"

var (
	ErrPaymentNotFound  = errors.New("payment not found")
	ErrOrderNotFound    = errors.New("order not found")
	ErrOrderHasNoItems  = errors.New("order has no items")
	ErrRefundNotAllowed = errors.New("refund allowed only for succeeded payments with a processor ref")
	ErrShipNotAllowed   = errors.New("order can be shipped only from PAID")
	ErrUnknownStatus    = errors.New("unknown status value")
	ErrInvalidSignature = errors.New("invalid webhook signature")
)
