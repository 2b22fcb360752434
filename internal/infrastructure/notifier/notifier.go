package notifier

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/quickcart/payments/internal/domain"
	"github.com/quickcart/payments/internal/infrastructure/retry"
)

// HTTPOrderNotifier posts payment notifications to the orders service
// webhook under the shared internal API key. Delivery runs through the
// retry executor; the caller decides what an exhausted delivery means
// (for the webhook pipeline: log and move on, never roll back).
type HTTPOrderNotifier struct {
	client     *http.Client
	webhookURL string
	apiKey     string
	executor   *retry.Executor

	now func() time.Time
}

func NewHTTPOrderNotifier(webhookURL, apiKey string, executor *retry.Executor) *HTTPOrderNotifier {
	return &HTTPOrderNotifier{
		client:     &http.Client{Timeout: 10 * time.Second},
		webhookURL: webhookURL,
		apiKey:     apiKey,
		executor:   executor,
		now:        time.Now,
	}
}

// Notify delivers one notification. The idempotency key is minted once
// per mutation, so every retry of the same delivery carries the same
// key and the receiver dedupes redelivery.
func (n *HTTPOrderNotifier) Notify(ctx context.Context, notification domain.OrderNotification) error {
	body, err := json.Marshal(toPayload(notification))
	if err != nil {
		return fmt.Errorf("marshal order notification: %w", err)
	}

	idempotencyKey := fmt.Sprintf("payment_%s_%s_%d",
		notification.PaymentID, notification.Status, n.now().Unix())

	return n.executor.Do(ctx, "notify_orders_service", func(ctx context.Context) error {
		return n.post(ctx, body, idempotencyKey)
	})
}

func (n *HTTPOrderNotifier) post(ctx context.Context, body []byte, idempotencyKey string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.webhookURL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build notification request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-API-Key", n.apiKey)
	req.Header.Set("X-Idempotency-Key", idempotencyKey)

	resp, err := n.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("orders service returned status %d", resp.StatusCode)
	}
	return nil
}
