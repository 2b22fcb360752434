package stripegateway

import (
	"context"
	"fmt"

	"github.com/stripe/stripe-go/v81"
	"github.com/stripe/stripe-go/v81/client"

	"github.com/quickcart/payments/internal/domain"
)

// Gateway wraps the Stripe SDK behind domain.ProcessorGateway. The API
// client is owned by the gateway and constructed once per process.
type Gateway struct {
	api           *client.API
	webhookSecret string
	strict        bool
}

// NewGateway builds a gateway. strict enables webhook signature
// enforcement and should be on in production.
func NewGateway(secretKey, webhookSecret string, strict bool) *Gateway {
	return &Gateway{
		api:           client.New(secretKey, nil),
		webhookSecret: webhookSecret,
		strict:        strict,
	}
}

func (g *Gateway) CreateCheckoutSession(ctx context.Context, in domain.CheckoutSessionInput) (*domain.CheckoutSessionRef, error) {
	params := &stripe.CheckoutSessionParams{
		Mode:       stripe.String(string(stripe.CheckoutSessionModePayment)),
		SuccessURL: stripe.String(in.SuccessURL),
		CancelURL:  stripe.String(in.CancelURL),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
					Currency:   stripe.String(in.Currency),
					UnitAmount: stripe.Int64(in.Amount),
					ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
						Name: stripe.String(in.ProductName),
					},
				},
				Quantity: stripe.Int64(1),
			},
		},
	}
	params.Context = ctx
	params.AddMetadata("payment_id", in.PaymentID)
	params.AddMetadata("order_id", in.OrderID)

	session, err := g.api.CheckoutSessions.New(params)
	if err != nil {
		return nil, fmt.Errorf("create checkout session: %w", err)
	}
	return &domain.CheckoutSessionRef{
		SessionID:   session.ID,
		CheckoutURL: session.URL,
	}, nil
}

func (g *Gateway) CreatePaymentIntent(ctx context.Context, in domain.PaymentIntentInput) (*domain.PaymentIntentRef, error) {
	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(in.Amount),
		Currency: stripe.String(in.Currency),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
	}
	params.Context = ctx
	params.AddMetadata("payment_id", in.PaymentID)
	params.AddMetadata("order_id", in.OrderID)

	intent, err := g.api.PaymentIntents.New(params)
	if err != nil {
		return nil, fmt.Errorf("create payment intent: %w", err)
	}
	return &domain.PaymentIntentRef{
		IntentID:     intent.ID,
		ClientSecret: intent.ClientSecret,
		Status:       PaymentStatusFromVendor(string(intent.Status)),
	}, nil
}

func (g *Gateway) CreateRefund(ctx context.Context, processorRef string) (string, error) {
	params := &stripe.RefundParams{
		PaymentIntent: stripe.String(processorRef),
	}
	params.Context = ctx

	refund, err := g.api.Refunds.New(params)
	if err != nil {
		return "", fmt.Errorf("create refund for %s: %w", processorRef, err)
	}
	return refund.ID, nil
}
