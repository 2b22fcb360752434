package usecase

import (
	"github.com/quickcart/payments/internal/domain"
)

// recordWebhookOutcome - called once per delivery with the final result
func (uc *DefaultWebhookUsecase) recordWebhookOutcome(eventType string, result domain.WebhookResult) {
	if uc.Metrics == nil {
		return
	}

	uc.Metrics.RecordWebhookEvent(eventType, string(result.Outcome), string(result.Reason))
}

// recordWebhookDuration - called once per delivery on every path
func (uc *DefaultWebhookUsecase) recordWebhookDuration(eventType string, durationSeconds float64) {
	if uc.Metrics == nil {
		return
	}

	uc.Metrics.RecordWebhookDuration(eventType, durationSeconds)
}

// recordPaymentTransition - called after a status write commits
func (uc *DefaultWebhookUsecase) recordPaymentTransition(from, to string) {
	if uc.Metrics == nil {
		return
	}

	uc.Metrics.RecordPaymentTransition(from, to)
}

// recordNotifierDelivery - called per notification attempt outcome
func (uc *DefaultWebhookUsecase) recordNotifierDelivery(outcome string) {
	if uc.Metrics == nil {
		return
	}

	uc.Metrics.RecordNotifierDelivery(outcome)
}
