package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	orderRequest "github.com/quickcart/payments/internal/delivery/http/dto/order/request"
	orderResponse "github.com/quickcart/payments/internal/delivery/http/dto/order/response"
	"github.com/quickcart/payments/internal/domain"
	orderdto "github.com/quickcart/payments/internal/usecase/dto/order"
	orderusecase "github.com/quickcart/payments/internal/usecase/order"
)

type OrderHandler struct {
	usecase orderusecase.OrderUsecase
}

func NewOrderHandler(uc orderusecase.OrderUsecase) *OrderHandler {
	return &OrderHandler{usecase: uc}
}

func (h *OrderHandler) CreateOrder(c *gin.Context) {
	var req orderRequest.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, orderResponse.ErrorResponse{Error: err.Error()})
		return
	}

	items := make([]orderdto.OrderItemInput, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, orderdto.OrderItemInput{
			ProductID: item.ProductID,
			Name:      item.Name,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
		})
	}

	out, err := h.usecase.CreateOrder(c.Request.Context(), &orderdto.CreateOrderInput{
		UserID:            req.UserID,
		Items:             items,
		BillingAddressID:  req.BillingAddressID,
		ShippingAddressID: req.ShippingAddressID,
	})
	if err != nil {
		if errors.Is(err, domain.ErrOrderHasNoItems) {
			c.JSON(http.StatusBadRequest, orderResponse.ErrorResponse{Error: "order has no items"})
			return
		}
		slog.Error("failed to create order", "user_id", req.UserID, "error", err.Error())
		c.JSON(http.StatusInternalServerError, orderResponse.ErrorResponse{Error: "failed to create order"})
		return
	}

	c.JSON(http.StatusCreated, orderResponse.FromOrderOutput(out))
}

func (h *OrderHandler) GetOrder(c *gin.Context) {
	order, err := h.usecase.GetOrderByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, domain.ErrOrderNotFound) {
			c.JSON(http.StatusNotFound, orderResponse.ErrorResponse{Error: "order not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, orderResponse.ErrorResponse{Error: "internal error"})
		return
	}

	c.JSON(http.StatusOK, orderResponse.FromOrder(order))
}

func (h *OrderHandler) ShipOrder(c *gin.Context) {
	orderID := c.Param("id")
	if err := h.usecase.ShipOrder(c.Request.Context(), orderID); err != nil {
		switch {
		case errors.Is(err, domain.ErrOrderNotFound):
			c.JSON(http.StatusNotFound, orderResponse.ErrorResponse{Error: "order not found"})
		case errors.Is(err, domain.ErrShipNotAllowed):
			c.JSON(http.StatusConflict, orderResponse.ErrorResponse{Error: "order is not ready to ship"})
		default:
			slog.Error("failed to ship order", "order_id", orderID, "error", err.Error())
			c.JSON(http.StatusInternalServerError, orderResponse.ErrorResponse{Error: "internal error"})
		}
		return
	}

	order, err := h.usecase.GetOrderByID(c.Request.Context(), orderID)
	if err != nil {
		c.JSON(http.StatusOK, gin.H{"order_id": orderID, "status": "shipped"})
		return
	}
	c.JSON(http.StatusOK, orderResponse.FromOrder(order))
}
