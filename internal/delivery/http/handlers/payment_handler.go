package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	paymentRequest "github.com/quickcart/payments/internal/delivery/http/dto/payment/request"
	paymentResponse "github.com/quickcart/payments/internal/delivery/http/dto/payment/response"
	"github.com/quickcart/payments/internal/domain"
	paymentdto "github.com/quickcart/payments/internal/usecase/dto/payment"
	paymentusecase "github.com/quickcart/payments/internal/usecase/payment"
)

type PaymentHandler struct {
	usecase paymentusecase.PaymentUsecase
}

func NewPaymentHandler(uc paymentusecase.PaymentUsecase) *PaymentHandler {
	return &PaymentHandler{usecase: uc}
}

func (h *PaymentHandler) CreatePayment(c *gin.Context) {
	var req paymentRequest.CreatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, paymentResponse.ErrorResponse{Error: err.Error()})
		return
	}

	out, err := h.usecase.CreatePayment(c.Request.Context(), &paymentdto.CreatePaymentInput{
		OrderID:     req.OrderID,
		UserID:      req.UserID,
		Amount:      req.Amount,
		Currency:    req.Currency,
		ProductName: req.ProductName,
		Mode:        req.Mode,
	})
	if err != nil {
		slog.Error("failed to create payment", "order_id", req.OrderID, "error", err.Error())
		c.JSON(http.StatusInternalServerError, paymentResponse.ErrorResponse{Error: "failed to create payment"})
		return
	}

	c.JSON(http.StatusCreated, paymentResponse.FromPaymentOutput(out))
}

func (h *PaymentHandler) GetPayment(c *gin.Context) {
	payment, err := h.usecase.GetPaymentByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, domain.ErrPaymentNotFound) {
			c.JSON(http.StatusNotFound, paymentResponse.ErrorResponse{Error: "payment not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, paymentResponse.ErrorResponse{Error: "internal error"})
		return
	}

	c.JSON(http.StatusOK, paymentResponse.FromPayment(payment))
}

// RequestRefund answers 202: the refund is accepted by the processor
// and REFUNDED lands asynchronously through the webhook.
func (h *PaymentHandler) RequestRefund(c *gin.Context) {
	out, err := h.usecase.RequestRefund(c.Request.Context(), c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrPaymentNotFound):
			c.JSON(http.StatusNotFound, paymentResponse.ErrorResponse{Error: "payment not found"})
		case errors.Is(err, domain.ErrRefundNotAllowed):
			c.JSON(http.StatusConflict, paymentResponse.ErrorResponse{Error: "payment is not refundable"})
		default:
			slog.Error("refund request failed", "payment_id", c.Param("id"), "error", err.Error())
			c.JSON(http.StatusBadGateway, paymentResponse.ErrorResponse{Error: "payment processor error"})
		}
		return
	}

	c.JSON(http.StatusAccepted, paymentResponse.RefundResponse{
		PaymentID: out.PaymentID,
		RefundID:  out.RefundID,
		Status:    strings.ToLower(out.Status),
	})
}
