package mappers

import (
	"github.com/quickcart/payments/internal/domain"
	"github.com/quickcart/payments/internal/infrastructure/postgres/models"
)

func ToDomainOrder(model *models.OrderModel) *domain.Order {
	items := make([]domain.OrderItem, 0, len(model.Items))
	for _, item := range model.Items {
		items = append(items, domain.OrderItem{
			ProductID: item.ProductID,
			Name:      item.Name,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
		})
	}
	return &domain.Order{
		ID:                model.ID,
		Number:            model.Number,
		UserID:            model.UserID,
		Status:            model.Status,
		Items:             items,
		Total:             model.Total,
		BillingAddressID:  model.BillingAddressID,
		ShippingAddressID: model.ShippingAddressID,
		PaymentID:         model.PaymentID,
		ReceiptURL:        model.ReceiptURL,
		CheckoutURL:       model.CheckoutURL,
		CreatedAt:         model.CreatedAt,
	}
}

func ToGORMOrder(order *domain.Order) *models.OrderModel {
	items := make([]models.OrderItemModel, 0, len(order.Items))
	for _, item := range order.Items {
		items = append(items, models.OrderItemModel{
			OrderID:   order.ID,
			ProductID: item.ProductID,
			Name:      item.Name,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
		})
	}
	return &models.OrderModel{
		ID:                order.ID,
		Number:            order.Number,
		UserID:            order.UserID,
		Status:            order.Status,
		Total:             order.Total,
		BillingAddressID:  order.BillingAddressID,
		ShippingAddressID: order.ShippingAddressID,
		PaymentID:         order.PaymentID,
		ReceiptURL:        order.ReceiptURL,
		CheckoutURL:       order.CheckoutURL,
		Items:             items,
		CreatedAt:         order.CreatedAt,
	}
}
