package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/quickcart/payments/internal/domain"
	paymentdto "github.com/quickcart/payments/internal/usecase/dto/payment"
)

// RequestRefund asks the processor to refund a succeeded payment. The
// local status is untouched here; REFUNDED lands when charge.refunded
// comes back through the webhook pipeline.
func (uc *DefaultPaymentUsecase) RequestRefund(ctx context.Context, paymentID string) (*paymentdto.RefundOutput, error) {
	payment, err := uc.PaymentRepo.GetPaymentByID(ctx, paymentID)
	if err != nil {
		return nil, err
	}

	if payment.Status != domain.PaymentSucceeded || payment.ProcessorRef == "" {
		return nil, domain.ErrRefundNotAllowed
	}

	refundID, err := uc.Gateway.CreateRefund(ctx, payment.ProcessorRef)
	if err != nil {
		return nil, fmt.Errorf("request refund for payment %s: %w", paymentID, err)
	}

	uc.recordRefundRequested(payment.Currency)

	slog.Info("refund requested",
		"payment_id", paymentID,
		"processor_ref", payment.ProcessorRef,
		"refund_id", refundID,
	)

	return &paymentdto.RefundOutput{
		PaymentID: paymentID,
		RefundID:  refundID,
		Status:    string(payment.Status),
	}, nil
}
