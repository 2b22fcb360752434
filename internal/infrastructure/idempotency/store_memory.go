package idempotency

import (
	"context"
	"sync"
	"time"
)

type memoryRecord struct {
	eventType string
	expiresAt time.Time
}

// MemoryStore is an in-process domain.IdempotencyStore with the same
// TTL semantics as the Redis one. Used by tests and local development;
// it offers no cross-process guarantee.
type MemoryStore struct {
	mu      sync.Mutex
	cfg     Config
	records map[string]memoryRecord
	locks   map[string]time.Time
}

func NewMemoryStore(cfg Config) *MemoryStore {
	cfg.applyDefaults()
	return &MemoryStore{
		cfg:     cfg,
		records: make(map[string]memoryRecord),
		locks:   make(map[string]time.Time),
	}
}

func (s *MemoryStore) IsDuplicate(ctx context.Context, eventID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	record, ok := s.records[eventID]
	if !ok {
		return false
	}
	if time.Now().After(record.expiresAt) {
		delete(s.records, eventID)
		return false
	}
	return true
}

func (s *MemoryStore) AcquireLock(ctx context.Context, eventID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	if expiry, held := s.locks[eventID]; held && now.Before(expiry) {
		return false
	}
	s.locks[eventID] = now.Add(s.cfg.LockTTL)
	return true
}

func (s *MemoryStore) ReleaseLock(ctx context.Context, eventID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.locks, eventID)
}

func (s *MemoryStore) MarkProcessed(ctx context.Context, eventID, eventType string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records[eventID] = memoryRecord{
		eventType: eventType,
		expiresAt: time.Now().Add(s.cfg.RecordTTL),
	}
	return nil
}
