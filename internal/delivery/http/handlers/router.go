package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/quickcart/payments/internal/delivery/http/middleware"
)

// NewPaymentRouter assembles the payment service surface: the public
// payment API, the processor webhook and the operational endpoints.
func NewPaymentRouter(
	webhookHandler *StripeWebhookHandler,
	paymentHandler *PaymentHandler,
	releaseMode bool) *gin.Engine {

	router := newRouter(releaseMode)

	router.POST("/webhooks/stripe", webhookHandler.Handle)

	payments := router.Group("/payments")
	{
		payments.POST("", paymentHandler.CreatePayment)
		payments.GET("/:id", paymentHandler.GetPayment)
		payments.POST("/:id/refund", paymentHandler.RequestRefund)
	}

	return router
}

// NewOrderRouter assembles the order service surface. The internal
// group carries the payment fan-out and is API-key guarded.
func NewOrderRouter(
	orderHandler *OrderHandler,
	notificationHandler *PaymentNotificationHandler,
	internalAPIKey string,
	releaseMode bool) *gin.Engine {

	router := newRouter(releaseMode)

	orders := router.Group("/orders")
	{
		orders.POST("", orderHandler.CreateOrder)
		orders.GET("/:id", orderHandler.GetOrder)
		orders.POST("/:id/ship", orderHandler.ShipOrder)
	}

	internal := router.Group("/internal", middleware.APIKeyAuth(internalAPIKey))
	{
		internal.POST("/webhooks/payment", notificationHandler.Handle)
	}

	return router
}

func newRouter(releaseMode bool) *gin.Engine {
	if releaseMode {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return router
}
