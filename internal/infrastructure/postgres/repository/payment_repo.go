package repository

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"gorm.io/gorm"

	"github.com/quickcart/payments/internal/domain"
	"github.com/quickcart/payments/internal/infrastructure/postgres/mappers"
	"github.com/quickcart/payments/internal/infrastructure/postgres/models"
)

type DefaultPaymentRepository struct {
	DB *gorm.DB
}

func NewDefaultPaymentRepository(db *gorm.DB) *DefaultPaymentRepository {
	return &DefaultPaymentRepository{DB: db}
}

func (r *DefaultPaymentRepository) CreatePayment(ctx context.Context, payment *domain.Payment) error {
	model := mappers.ToGORMPayment(payment)
	if err := r.DB.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("create payment: %w", err)
	}
	return nil
}

func (r *DefaultPaymentRepository) GetPaymentByID(ctx context.Context, paymentID string) (*domain.Payment, error) {
	var model models.PaymentModel
	if err := r.DB.WithContext(ctx).First(&model, "id = ?", paymentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrPaymentNotFound
		}
		return nil, fmt.Errorf("get payment %s: %w", paymentID, err)
	}
	return mappers.ToDomainPayment(&model), nil
}

func (r *DefaultPaymentRepository) UpdatePaymentStatus(ctx context.Context, paymentID string, upd domain.PaymentStatusUpdate) error {
	if upd.Status == domain.PaymentCreated {
		// CREATED is only valid as an initial state; writing it onto an
		// existing row never touches storage.
		slog.Info("skipping CREATED status write on existing payment", "payment_id", paymentID)
		return nil
	}

	updates := map[string]interface{}{
		"status":     upd.Status,
		"updated_at": time.Now().UTC(),
	}
	if upd.ProcessorRef != "" {
		updates["processor_ref"] = upd.ProcessorRef
	}
	if upd.ReceiptURL != "" {
		updates["receipt_url"] = upd.ReceiptURL
	}

	res := r.DB.WithContext(ctx).Model(&models.PaymentModel{}).Where("id = ?", paymentID).Updates(updates)
	if res.Error != nil {
		return fmt.Errorf("update payment %s status: %w", paymentID, res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrPaymentNotFound
	}
	return nil
}

func (r *DefaultPaymentRepository) FindStaleCreated(ctx context.Context, olderThan time.Time) ([]*domain.Payment, error) {
	var rows []models.PaymentModel
	err := r.DB.WithContext(ctx).
		Where("status = ? AND created_at < ?", domain.PaymentCreated, olderThan).
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("find stale created payments: %w", err)
	}

	payments := make([]*domain.Payment, 0, len(rows))
	for i := range rows {
		payments = append(payments, mappers.ToDomainPayment(&rows[i]))
	}
	return payments, nil
}
