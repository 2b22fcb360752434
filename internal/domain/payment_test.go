package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPlanPaymentTransition(t *testing.T) {
	cases := []struct {
		name       string
		current    PaymentStatus
		target     PaymentStatus
		allowed    bool
		wantReason IgnoreReason
	}{
		{"created to processing", PaymentCreated, PaymentProcessing, true, ""},
		{"created to succeeded skips processing", PaymentCreated, PaymentSucceeded, true, ""},
		{"created to canceled", PaymentCreated, PaymentCanceled, true, ""},
		{"created to failed", PaymentCreated, PaymentFailed, true, ""},
		{"processing to succeeded", PaymentProcessing, PaymentSucceeded, true, ""},
		{"succeeded to refunded", PaymentSucceeded, PaymentRefunded, true, ""},
		{"legacy pending to created", PaymentPending, PaymentCreated, true, ""},
		{"legacy pending to succeeded", PaymentPending, PaymentSucceeded, true, ""},

		{"same status", PaymentSucceeded, PaymentSucceeded, false, ReasonAlreadyInState},
		{"created replayed", PaymentCreated, PaymentCreated, false, ReasonAlreadyInState},

		{"succeeded back to created", PaymentSucceeded, PaymentCreated, false, ReasonInvalidTransition},
		{"succeeded back to processing", PaymentSucceeded, PaymentProcessing, false, ReasonInvalidTransition},
		{"created straight to refunded", PaymentCreated, PaymentRefunded, false, ReasonInvalidTransition},
		{"failed is terminal", PaymentFailed, PaymentSucceeded, false, ReasonInvalidTransition},
		{"canceled is terminal", PaymentCanceled, PaymentProcessing, false, ReasonInvalidTransition},
		{"refunded is terminal", PaymentRefunded, PaymentSucceeded, false, ReasonInvalidTransition},
		{"nothing targets pending", PaymentCreated, PaymentPending, false, ReasonInvalidTransition},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			decision := PlanPaymentTransition(tc.current, tc.target)
			assert.Equal(t, tc.allowed, decision.Allowed)
			assert.Equal(t, tc.wantReason, decision.Reason)
		})
	}
}

// Terminal statuses must have no outgoing edges at all; a refund is the
// single edge out of SUCCEEDED.
func TestPaymentTerminalStatuses(t *testing.T) {
	terminals := []PaymentStatus{PaymentFailed, PaymentCanceled, PaymentRefunded}
	all := []PaymentStatus{
		PaymentCreated, PaymentPending, PaymentProcessing,
		PaymentSucceeded, PaymentFailed, PaymentCanceled, PaymentRefunded,
	}

	for _, terminal := range terminals {
		for _, target := range all {
			if target == terminal {
				continue
			}
			decision := PlanPaymentTransition(terminal, target)
			assert.False(t, decision.Allowed, "%s -> %s must be rejected", terminal, target)
		}
	}
}
