package notifier

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quickcart/payments/internal/domain"
	"github.com/quickcart/payments/internal/infrastructure/retry"
)

func fastExecutor(maxAttempts int) *retry.Executor {
	return retry.NewExecutor(maxAttempts, time.Millisecond)
}

func sampleNotification() domain.OrderNotification {
	return domain.OrderNotification{
		OrderID:      "ord_1",
		PaymentID:    "pay_1",
		Status:       "succeeded",
		ProcessorRef: "pi_1",
		ReceiptURL:   "https://receipts.example/ch_1",
	}
}

func TestNotifySendsHeadersAndPayload(t *testing.T) {
	var (
		mu       sync.Mutex
		received []NotificationPayload
		apiKeys  []string
		idemKeys []string
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var payload NotificationPayload
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		mu.Lock()
		received = append(received, payload)
		apiKeys = append(apiKeys, r.Header.Get("X-API-Key"))
		idemKeys = append(idemKeys, r.Header.Get("X-Idempotency-Key"))
		mu.Unlock()
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	n := NewHTTPOrderNotifier(srv.URL, "internal-key", fastExecutor(3))
	n.now = func() time.Time { return time.Unix(1700000000, 0) }

	require.NoError(t, n.Notify(context.Background(), sampleNotification()))

	require.Len(t, received, 1)
	assert.Equal(t, "ord_1", received[0].OrderID)
	assert.Equal(t, "pay_1", received[0].PaymentID)
	assert.Equal(t, "succeeded", received[0].Status)
	assert.Equal(t, "pi_1", received[0].ProcessorRef)
	assert.Equal(t, "internal-key", apiKeys[0])
	assert.Equal(t, "payment_pay_1_succeeded_1700000000", idemKeys[0])
}

func TestNotifyRetriesThenSucceeds(t *testing.T) {
	var (
		mu       sync.Mutex
		attempts int
		idemKeys []string
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		attempts++
		idemKeys = append(idemKeys, r.Header.Get("X-Idempotency-Key"))
		current := attempts
		mu.Unlock()
		if current < 3 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	n := NewHTTPOrderNotifier(srv.URL, "internal-key", fastExecutor(3))
	require.NoError(t, n.Notify(context.Background(), sampleNotification()))

	assert.Equal(t, 3, attempts)
	// same mutation, same key on every retry
	assert.Equal(t, idemKeys[0], idemKeys[1])
	assert.Equal(t, idemKeys[0], idemKeys[2])
}

func TestNotifyExhaustionReturnsLastError(t *testing.T) {
	attempts := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	n := NewHTTPOrderNotifier(srv.URL, "internal-key", fastExecutor(3))
	err := n.Notify(context.Background(), sampleNotification())

	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "500"))
	assert.Equal(t, 3, attempts)
}

func TestNotifyNon200IsAnError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusAccepted)
	}))
	defer srv.Close()

	n := NewHTTPOrderNotifier(srv.URL, "internal-key", fastExecutor(1))
	require.Error(t, n.Notify(context.Background(), sampleNotification()))
}
