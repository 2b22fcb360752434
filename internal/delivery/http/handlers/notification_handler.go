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

// PaymentNotificationHandler receives payment status fan-out from the
// payment service on the internal surface.
type PaymentNotificationHandler struct {
	usecase orderusecase.OrderUsecase
}

func NewPaymentNotificationHandler(uc orderusecase.OrderUsecase) *PaymentNotificationHandler {
	return &PaymentNotificationHandler{usecase: uc}
}

// Handle maps outcomes to status codes the sender's retry loop
// understands: 200 settles the delivery, 409 asks for another attempt
// while a concurrent delivery holds the lock, 5xx retries later.
func (h *PaymentNotificationHandler) Handle(c *gin.Context) {
	idempotencyKey := c.GetHeader("X-Idempotency-Key")
	if idempotencyKey == "" {
		c.JSON(http.StatusBadRequest, orderResponse.ErrorResponse{Error: "missing X-Idempotency-Key header"})
		return
	}

	var req orderRequest.PaymentNotificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, orderResponse.ErrorResponse{Error: err.Error()})
		return
	}

	result, err := h.usecase.ApplyPaymentNotification(c.Request.Context(), &orderdto.PaymentNotificationInput{
		EventID:      idempotencyKey,
		OrderID:      req.OrderID,
		PaymentID:    req.PaymentID,
		Status:       req.Status,
		ProcessorRef: req.ProcessorRef,
		ReceiptURL:   req.ReceiptURL,
		CheckoutURL:  req.CheckoutURL,
	})
	if err != nil {
		if errors.Is(err, domain.ErrUnknownStatus) {
			c.JSON(http.StatusBadRequest, orderResponse.ErrorResponse{Error: "unknown payment status"})
			return
		}
		slog.Error("payment notification failed",
			"order_id", req.OrderID,
			"payment_id", req.PaymentID,
			"error", err.Error(),
		)
		c.JSON(http.StatusInternalServerError, orderResponse.ErrorResponse{Error: "internal error"})
		return
	}

	status := http.StatusOK
	if result.Outcome == domain.OutcomeLockContention {
		status = http.StatusConflict
	}
	c.JSON(status, orderResponse.NotificationAck{
		Status: string(result.Outcome),
		Reason: string(result.Reason),
	})
}
