package idempotency

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"
)

const (
	DefaultLockTTL   = 30 * time.Second
	DefaultRecordTTL = 7 * 24 * time.Hour
)

type Config struct {
	// KeyPrefix namespaces one service's ledger from another's on a
	// shared Redis.
	KeyPrefix string
	LockTTL   time.Duration
	RecordTTL time.Duration
}

func (c *Config) applyDefaults() {
	if c.KeyPrefix == "" {
		c.KeyPrefix = "payments"
	}
	if c.LockTTL <= 0 {
		c.LockTTL = DefaultLockTTL
	}
	if c.RecordTTL <= 0 {
		c.RecordTTL = DefaultRecordTTL
	}
}

type processedRecord struct {
	EventType   string    `json:"event_type"`
	ProcessedAt time.Time `json:"processed_at"`
	Status      string    `json:"status"`
}

// RedisStore implements domain.IdempotencyStore on Redis. Read paths
// fail open: an unreachable Redis reads as "not a duplicate" and
// "lock acquired" so webhook processing is never dropped by an outage.
// storeFailures, when set, counts those degradations per operation.
type RedisStore struct {
	client        *redis.Client
	cfg           Config
	storeFailures *prometheus.CounterVec
}

func NewRedisStore(client *redis.Client, cfg Config, storeFailures *prometheus.CounterVec) *RedisStore {
	cfg.applyDefaults()
	return &RedisStore{
		client:        client,
		cfg:           cfg,
		storeFailures: storeFailures,
	}
}

func (s *RedisStore) processedKey(eventID string) string {
	return fmt.Sprintf("%s:webhook:processed:%s", s.cfg.KeyPrefix, eventID)
}

func (s *RedisStore) lockKey(eventID string) string {
	return fmt.Sprintf("%s:webhook:lock:%s", s.cfg.KeyPrefix, eventID)
}

func (s *RedisStore) failure(op string, err error) {
	slog.Warn("idempotency store unreachable, failing open",
		"op", op,
		"error", err.Error(),
	)
	if s.storeFailures != nil {
		s.storeFailures.WithLabelValues(op).Inc()
	}
}

func (s *RedisStore) IsDuplicate(ctx context.Context, eventID string) bool {
	err := s.client.Get(ctx, s.processedKey(eventID)).Err()
	if err == redis.Nil {
		return false
	}
	if err != nil {
		s.failure("is_duplicate", err)
		return false
	}
	return true
}

func (s *RedisStore) AcquireLock(ctx context.Context, eventID string) bool {
	ok, err := s.client.SetNX(ctx, s.lockKey(eventID), "locked", s.cfg.LockTTL).Result()
	if err != nil {
		s.failure("acquire_lock", err)
		return true
	}
	return ok
}

func (s *RedisStore) ReleaseLock(ctx context.Context, eventID string) {
	if err := s.client.Del(ctx, s.lockKey(eventID)).Err(); err != nil {
		s.failure("release_lock", err)
	}
}

func (s *RedisStore) MarkProcessed(ctx context.Context, eventID, eventType string) error {
	record, err := json.Marshal(processedRecord{
		EventType:   eventType,
		ProcessedAt: time.Now().UTC(),
		Status:      "processed",
	})
	if err != nil {
		return fmt.Errorf("marshal processed record: %w", err)
	}
	if err := s.client.Set(ctx, s.processedKey(eventID), record, s.cfg.RecordTTL).Err(); err != nil {
		return fmt.Errorf("mark event %s processed: %w", eventID, err)
	}
	return nil
}
