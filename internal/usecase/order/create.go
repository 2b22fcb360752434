package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jaevor/go-nanoid"

	"github.com/quickcart/payments/internal/domain"
	publisher "github.com/quickcart/payments/internal/infrastructure/kafka"
	orderdto "github.com/quickcart/payments/internal/usecase/dto/order"
)

func (uc *DefaultOrderUsecase) CreateOrder(ctx context.Context, input *orderdto.CreateOrderInput) (*orderdto.OrderOutput, error) {
	if len(input.Items) == 0 {
		return nil, domain.ErrOrderHasNoItems
	}

	numberGenerator, err := nanoid.Standard(12)
	if err != nil {
		return nil, fmt.Errorf("init order number generator: %w", err)
	}

	items := make([]domain.OrderItem, 0, len(input.Items))
	for _, item := range input.Items {
		items = append(items, domain.OrderItem{
			ProductID: item.ProductID,
			Name:      item.Name,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
		})
	}

	order := &domain.Order{
		ID:                uuid.New().String(),
		Number:            numberGenerator(),
		UserID:            input.UserID,
		Status:            domain.OrderCreated,
		Items:             items,
		BillingAddressID:  input.BillingAddressID,
		ShippingAddressID: input.ShippingAddressID,
		CreatedAt:         time.Now().UTC(),
	}
	order.Total = order.ComputeTotal()

	if err := uc.OrderRepo.CreateOrder(ctx, order); err != nil {
		return nil, fmt.Errorf("persist order: %w", err)
	}

	uc.recordOrderCreated()

	slog.Info("order created",
		"order_id", order.ID,
		"number", order.Number,
		"user_id", order.UserID,
		"total", order.Total,
		"items", len(order.Items),
	)

	uc.publishOrderEvent(order, "order.created")

	return orderdto.ToOrderOutput(order), nil
}

func (uc *DefaultOrderUsecase) publishOrderEvent(order *domain.Order, eventType string) {
	if uc.Publisher == nil {
		return
	}

	go func(oe publisher.OrderEvent) {
		v, err := json.Marshal(oe)
		if err != nil {
			slog.Error("failed to marshal kafka OrderEvent", "error", err.Error())
			return
		}
		if err := uc.Publisher.Publish(uc.KafkaTopic, domain.Message{Key: []byte(oe.OrderID), Value: v}); err != nil {
			slog.Error("failed to publish kafka OrderEvent", "stage", eventType, "error", err.Error())
		}
	}(publisher.OrderEvent{
		OrderID:   order.ID,
		Number:    order.Number,
		UserID:    order.UserID,
		Status:    string(order.Status),
		Total:     order.Total,
		PaymentID: order.PaymentID,
	})
}
