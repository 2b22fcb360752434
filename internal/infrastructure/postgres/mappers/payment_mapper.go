package mappers

import (
	"github.com/quickcart/payments/internal/domain"
	"github.com/quickcart/payments/internal/infrastructure/postgres/models"
)

func ToDomainPayment(model *models.PaymentModel) *domain.Payment {
	return &domain.Payment{
		ID:           model.ID,
		OrderID:      model.OrderID,
		UserID:       model.UserID,
		Amount:       model.Amount,
		Currency:     model.Currency,
		Status:       model.Status,
		ProcessorRef: model.ProcessorRef,
		ClientSecret: model.ClientSecret,
		CheckoutURL:  model.CheckoutURL,
		ReceiptURL:   model.ReceiptURL,
		CreatedAt:    model.CreatedAt,
		UpdatedAt:    model.UpdatedAt,
	}
}

func ToGORMPayment(payment *domain.Payment) *models.PaymentModel {
	return &models.PaymentModel{
		ID:           payment.ID,
		OrderID:      payment.OrderID,
		UserID:       payment.UserID,
		Amount:       payment.Amount,
		Currency:     payment.Currency,
		Status:       payment.Status,
		ProcessorRef: payment.ProcessorRef,
		ClientSecret: payment.ClientSecret,
		CheckoutURL:  payment.CheckoutURL,
		ReceiptURL:   payment.ReceiptURL,
		CreatedAt:    payment.CreatedAt,
		UpdatedAt:    payment.UpdatedAt,
	}
}
