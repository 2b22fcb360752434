package background

import (
	"context"
	"log/slog"
	"time"

	paymentusecase "github.com/quickcart/payments/internal/usecase/payment"
)

type BackgroundTasks struct {
	PaymentUsecase paymentusecase.PaymentUsecase
	SweepInterval  time.Duration
}

func NewBackgroundTasks(paymentUC paymentusecase.PaymentUsecase, sweepInterval time.Duration) *BackgroundTasks {
	if sweepInterval <= 0 {
		sweepInterval = 10 * time.Minute
	}
	return &BackgroundTasks{
		PaymentUsecase: paymentUC,
		SweepInterval:  sweepInterval,
	}
}

func (bt *BackgroundTasks) StartAll(ctx context.Context) {
	go bt.startStalePaymentSweep(ctx)
}

// startStalePaymentSweep cancels CREATED payments whose checkout was
// abandoned. Stripe expires the hosted sessions on its own; this sweep
// covers payments whose expiry webhook never arrived.
func (bt *BackgroundTasks) startStalePaymentSweep(ctx context.Context) {
	ticker := time.NewTicker(bt.SweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := bt.PaymentUsecase.ExpireStalePayments(ctx); err != nil {
				slog.Error("stale payment sweep failed", "error", err.Error())
			}
		}
	}
}
