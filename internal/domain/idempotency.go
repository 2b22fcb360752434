package domain

import "context"

// IdempotencyStore is the processed-webhook ledger plus a short-lived
// per-event lock that serializes concurrent deliveries of one event ID.
//
// Both read paths fail OPEN: when the backing store is unreachable the
// pipeline proceeds without the exactly-once guarantee instead of
// silently dropping a payment confirmation. Availability over
// exactly-once is deliberate here; downstream transitions are
// idempotent, so a rare double delivery is a no-op while a dropped
// confirmation is lost money.
type IdempotencyStore interface {
	// IsDuplicate reports whether eventID already has a processed
	// record. Store failures read as "not a duplicate".
	IsDuplicate(ctx context.Context, eventID string) bool

	// AcquireLock atomically takes the per-event lock with a TTL.
	// False means another holder owns it. Store failures read as
	// acquired.
	AcquireLock(ctx context.Context, eventID string) bool

	// ReleaseLock drops the lock. Callers pair it with AcquireLock in
	// a deferred call so the lock is released on every path.
	ReleaseLock(ctx context.Context, eventID string)

	// MarkProcessed writes the processed record with the retention
	// TTL. Records are never updated afterwards.
	MarkProcessed(ctx context.Context, eventID, eventType string) error
}
