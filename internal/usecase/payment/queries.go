package usecase

import (
	"context"

	"github.com/quickcart/payments/internal/domain"
)

func (uc *DefaultPaymentUsecase) GetPaymentByID(ctx context.Context, paymentID string) (*domain.Payment, error) {
	return uc.PaymentRepo.GetPaymentByID(ctx, paymentID)
}
