package logger

import (
	"context"
	"time"

	"gorm.io/gorm"
)

// WebhookEventLog is the append-only audit row written for every
// webhook outcome. Both services keep one in their own database.
type WebhookEventLog struct {
	ID        uint   `gorm:"primaryKey"`
	EventID   string `gorm:"index"`
	EventType string
	PaymentID string `gorm:"index"`
	OrderID   string
	Outcome   string
	Reason    string
	Timestamp time.Time
}

func (WebhookEventLog) TableName() string {
	return "webhook_event_logs"
}

type WebhookEventLogger interface {
	LogWebhookEvent(ctx context.Context, event WebhookEventLog) error
}

type PGWebhookEventLogger struct {
	db *gorm.DB
}

func NewPGWebhookEventLogger(db *gorm.DB) *PGWebhookEventLogger {
	return &PGWebhookEventLogger{db: db}
}

func (l *PGWebhookEventLogger) LogWebhookEvent(ctx context.Context, event WebhookEventLog) error {
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now().UTC()
	}
	return l.db.WithContext(ctx).Create(&event).Error
}
