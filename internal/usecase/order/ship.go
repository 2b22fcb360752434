package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/quickcart/payments/internal/domain"
)

// ShipOrder moves a paid order to SHIPPED. Only PAID ships; everything
// else is rejected so fulfilment can never outrun the money.
func (uc *DefaultOrderUsecase) ShipOrder(ctx context.Context, orderID string) error {
	order, err := uc.OrderRepo.GetOrderByID(ctx, orderID)
	if err != nil {
		return err
	}

	decision := domain.PlanOrderTransition(order.Status, domain.OrderShipped)
	if !decision.Allowed {
		return fmt.Errorf("%w: order %s is %s", domain.ErrShipNotAllowed, orderID, order.Status)
	}

	if err := uc.OrderRepo.UpdateOrderStatus(ctx, orderID, domain.OrderShipped); err != nil {
		return fmt.Errorf("update order %s to SHIPPED: %w", orderID, err)
	}

	uc.recordOrderShipped()
	uc.recordOrderTransition(string(order.Status), string(domain.OrderShipped))

	slog.Info("order shipped", "order_id", orderID, "number", order.Number)

	shipped := *order
	shipped.Status = domain.OrderShipped
	uc.publishOrderEvent(&shipped, "order.shipped")

	return nil
}
