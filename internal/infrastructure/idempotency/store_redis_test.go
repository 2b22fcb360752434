package idempotency

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
)

// unreachableClient fails fast with connection refused on every call.
func unreachableClient() *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 50 * time.Millisecond,
		MaxRetries:  -1,
	})
}

func TestRedisStoreFailsOpenOnOutage(t *testing.T) {
	store := NewRedisStore(unreachableClient(), Config{}, nil)
	ctx := context.Background()

	if store.IsDuplicate(ctx, "evt_1") {
		t.Fatal("store outage must read as not-a-duplicate")
	}
	if !store.AcquireLock(ctx, "evt_1") {
		t.Fatal("store outage must read as lock acquired")
	}
	// release must not panic on outage either
	store.ReleaseLock(ctx, "evt_1")

	if err := store.MarkProcessed(ctx, "evt_1", "charge.refunded"); err == nil {
		t.Fatal("mark processed must surface the store error to the caller")
	}
}

func TestRedisStoreKeyNamespacing(t *testing.T) {
	store := NewRedisStore(unreachableClient(), Config{KeyPrefix: "orders"}, nil)

	if got := store.processedKey("evt_1"); got != "orders:webhook:processed:evt_1" {
		t.Fatalf("unexpected processed key: %s", got)
	}
	if got := store.lockKey("evt_1"); got != "orders:webhook:lock:evt_1" {
		t.Fatalf("unexpected lock key: %s", got)
	}
}

func TestConfigDefaults(t *testing.T) {
	var cfg Config
	cfg.applyDefaults()

	if cfg.LockTTL != DefaultLockTTL {
		t.Fatalf("expected lock TTL %v, got %v", DefaultLockTTL, cfg.LockTTL)
	}
	if cfg.RecordTTL != DefaultRecordTTL {
		t.Fatalf("expected record TTL %v, got %v", DefaultRecordTTL, cfg.RecordTTL)
	}
	if cfg.KeyPrefix == "" {
		t.Fatal("expected a default key prefix")
	}
}
