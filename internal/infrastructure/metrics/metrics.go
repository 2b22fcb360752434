package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// PaymentMetrics holds all metrics for the payment service
type PaymentMetrics struct {
	// Webhook pipeline
	WebhookEventsTotal        prometheus.CounterVec
	WebhookProcessingDuration prometheus.HistogramVec

	// Status transitions applied to payments
	PaymentTransitionsTotal prometheus.CounterVec

	// Idempotency store degradations (fail-open path)
	IdempotencyFailuresTotal prometheus.CounterVec

	// Deliveries to the order service
	NotifierDeliveriesTotal prometheus.CounterVec

	// Payment lifecycle
	PaymentsCreatedTotal      prometheus.CounterVec
	RefundsRequestedTotal     prometheus.CounterVec
	StalePaymentsExpiredTotal prometheus.Counter
}

// NewPaymentMetrics creates and registers the payment service metrics
func NewPaymentMetrics() *PaymentMetrics {
	return &PaymentMetrics{
		WebhookEventsTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "payment_webhook_events_total",
				Help: "Webhook deliveries by event type, outcome and ignore reason",
			},
			[]string{"event_type", "outcome", "reason"},
		),

		WebhookProcessingDuration: *promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "payment_webhook_processing_duration_seconds",
				Help:    "Time spent processing a single webhook delivery",
				Buckets: prometheus.ExponentialBuckets(0.01, 2, 10), // 10ms, 20ms, 40ms...
			},
			[]string{"event_type"},
		),

		PaymentTransitionsTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "payment_transitions_total",
				Help: "Payment status transitions applied to the database",
			},
			[]string{"from_status", "to_status"},
		),

		IdempotencyFailuresTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "payment_idempotency_store_failures_total",
				Help: "Idempotency store operations that failed and degraded to fail-open",
			},
			[]string{"op"},
		),

		NotifierDeliveriesTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "payment_notifier_deliveries_total",
				Help: "Notifications delivered to the order service by outcome",
			},
			[]string{"outcome"},
		),

		PaymentsCreatedTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "payments_created_total",
				Help: "Payments created by currency and checkout mode",
			},
			[]string{"currency", "mode"},
		),

		RefundsRequestedTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "payment_refunds_requested_total",
				Help: "Refunds requested from the payment processor",
			},
			[]string{"currency"},
		),

		StalePaymentsExpiredTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "payments_stale_expired_total",
				Help: "Stale CREATED payments canceled by the expiry sweep",
			},
		),
	}
}

// RecordWebhookEvent records one processed or ignored webhook delivery
func (m *PaymentMetrics) RecordWebhookEvent(eventType, outcome, reason string) {
	m.WebhookEventsTotal.WithLabelValues(eventType, outcome, reason).Inc()
}

// RecordWebhookDuration records the processing time of one delivery
func (m *PaymentMetrics) RecordWebhookDuration(eventType string, durationSeconds float64) {
	m.WebhookProcessingDuration.WithLabelValues(eventType).Observe(durationSeconds)
}

// RecordPaymentTransition records an applied status transition
func (m *PaymentMetrics) RecordPaymentTransition(from, to string) {
	m.PaymentTransitionsTotal.WithLabelValues(from, to).Inc()
}

// RecordNotifierDelivery records a notification attempt outcome
func (m *PaymentMetrics) RecordNotifierDelivery(outcome string) {
	m.NotifierDeliveriesTotal.WithLabelValues(outcome).Inc()
}

// RecordPaymentCreated records a newly created payment
func (m *PaymentMetrics) RecordPaymentCreated(currency, mode string) {
	m.PaymentsCreatedTotal.WithLabelValues(currency, mode).Inc()
}

// RecordRefundRequested records a refund sent to the processor
func (m *PaymentMetrics) RecordRefundRequested(currency string) {
	m.RefundsRequestedTotal.WithLabelValues(currency).Inc()
}

// RecordStalePaymentExpired records one payment canceled by the sweep
func (m *PaymentMetrics) RecordStalePaymentExpired() {
	m.StalePaymentsExpiredTotal.Inc()
}

// OrderServiceMetrics holds all metrics for the order service
type OrderServiceMetrics struct {
	// Payment notifications received on the internal webhook
	NotificationsTotal prometheus.CounterVec

	// Status transitions applied to orders
	OrderTransitionsTotal prometheus.CounterVec

	// Order lifecycle
	OrdersCreatedTotal prometheus.Counter
	OrdersShippedTotal prometheus.Counter

	// Idempotency store degradations (fail-open path)
	IdempotencyFailuresTotal prometheus.CounterVec
}

// NewOrderServiceMetrics creates and registers the order service metrics
func NewOrderServiceMetrics() *OrderServiceMetrics {
	return &OrderServiceMetrics{
		NotificationsTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "order_payment_notifications_total",
				Help: "Payment notifications received by outcome and ignore reason",
			},
			[]string{"outcome", "reason"},
		),

		OrderTransitionsTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "order_transitions_total",
				Help: "Order status transitions applied to the database",
			},
			[]string{"from_status", "to_status"},
		),

		OrdersCreatedTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "orders_created_total",
				Help: "Orders created",
			},
		),

		OrdersShippedTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "orders_shipped_total",
				Help: "Orders moved to SHIPPED",
			},
		),

		IdempotencyFailuresTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "order_idempotency_store_failures_total",
				Help: "Idempotency store operations that failed and degraded to fail-open",
			},
			[]string{"op"},
		),
	}
}

// RecordNotification records one applied or ignored payment notification
func (m *OrderServiceMetrics) RecordNotification(outcome, reason string) {
	m.NotificationsTotal.WithLabelValues(outcome, reason).Inc()
}

// RecordOrderTransition records an applied status transition
func (m *OrderServiceMetrics) RecordOrderTransition(from, to string) {
	m.OrderTransitionsTotal.WithLabelValues(from, to).Inc()
}

// RecordOrderCreated records a newly created order
func (m *OrderServiceMetrics) RecordOrderCreated() {
	m.OrdersCreatedTotal.Inc()
}

// RecordOrderShipped records an order moved to SHIPPED
func (m *OrderServiceMetrics) RecordOrderShipped() {
	m.OrdersShippedTotal.Inc()
}
