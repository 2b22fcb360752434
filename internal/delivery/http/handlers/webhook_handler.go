package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	paymentResponse "github.com/quickcart/payments/internal/delivery/http/dto/payment/response"
	"github.com/quickcart/payments/internal/domain"
	"github.com/quickcart/payments/internal/infrastructure/stripegateway"
	webhookusecase "github.com/quickcart/payments/internal/usecase/webhook"
)

type StripeWebhookHandler struct {
	gateway *stripegateway.Gateway
	usecase webhookusecase.WebhookUsecase
}

func NewStripeWebhookHandler(gateway *stripegateway.Gateway, uc webhookusecase.WebhookUsecase) *StripeWebhookHandler {
	return &StripeWebhookHandler{
		gateway: gateway,
		usecase: uc,
	}
}

// Handle acknowledges with 200 for every business outcome so the
// processor stops redelivering; only a bad signature (400) or an
// infrastructure failure (500, redelivered later) says otherwise.
func (h *StripeWebhookHandler) Handle(c *gin.Context) {
	body, err := c.GetRawData()
	if err != nil {
		c.JSON(http.StatusBadRequest, paymentResponse.ErrorResponse{Error: "failed to read request body"})
		return
	}

	event, err := h.gateway.VerifyAndParse(body, c.GetHeader("Stripe-Signature"))
	if err != nil {
		if errors.Is(err, domain.ErrInvalidSignature) {
			c.JSON(http.StatusBadRequest, paymentResponse.ErrorResponse{Error: "invalid webhook signature"})
			return
		}
		c.JSON(http.StatusBadRequest, paymentResponse.ErrorResponse{Error: "unreadable webhook payload"})
		return
	}

	result, err := h.usecase.ProcessWebhook(c.Request.Context(), event)
	if err != nil {
		slog.Error("webhook processing failed",
			"event_id", event.ID,
			"event_type", event.Type,
			"error", err.Error(),
		)
		c.JSON(http.StatusInternalServerError, paymentResponse.ErrorResponse{Error: "internal error"})
		return
	}

	c.JSON(http.StatusOK, paymentResponse.WebhookAck{
		Status: string(result.Outcome),
		Reason: string(result.Reason),
	})
}
