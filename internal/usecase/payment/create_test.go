package usecase

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quickcart/payments/internal/domain"
	paymentdto "github.com/quickcart/payments/internal/usecase/dto/payment"
)

type fakePaymentRepo struct {
	mu       sync.Mutex
	payments map[string]*domain.Payment
	updates  []domain.PaymentStatusUpdate
	stale    []*domain.Payment
	updErr   error
}

func newFakePaymentRepo(payments ...*domain.Payment) *fakePaymentRepo {
	repo := &fakePaymentRepo{payments: make(map[string]*domain.Payment)}
	for _, p := range payments {
		repo.payments[p.ID] = p
	}
	return repo
}

func (r *fakePaymentRepo) CreatePayment(ctx context.Context, payment *domain.Payment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.payments[payment.ID] = payment
	return nil
}

func (r *fakePaymentRepo) GetPaymentByID(ctx context.Context, paymentID string) (*domain.Payment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.payments[paymentID]
	if !ok {
		return nil, domain.ErrPaymentNotFound
	}
	cp := *p
	return &cp, nil
}

func (r *fakePaymentRepo) UpdatePaymentStatus(ctx context.Context, paymentID string, upd domain.PaymentStatusUpdate) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.updErr != nil {
		return r.updErr
	}
	p, ok := r.payments[paymentID]
	if !ok {
		return domain.ErrPaymentNotFound
	}
	p.Status = upd.Status
	r.updates = append(r.updates, upd)
	return nil
}

func (r *fakePaymentRepo) FindStaleCreated(ctx context.Context, olderThan time.Time) ([]*domain.Payment, error) {
	return r.stale, nil
}

func (r *fakePaymentRepo) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.payments)
}

type fakeGateway struct {
	sessions   []domain.CheckoutSessionInput
	intents    []domain.PaymentIntentInput
	refunds    []string
	sessionErr error
	refundErr  error
}

func (g *fakeGateway) CreateCheckoutSession(ctx context.Context, in domain.CheckoutSessionInput) (*domain.CheckoutSessionRef, error) {
	if g.sessionErr != nil {
		return nil, g.sessionErr
	}
	g.sessions = append(g.sessions, in)
	return &domain.CheckoutSessionRef{
		SessionID:   "cs_test_1",
		CheckoutURL: "https://checkout.stripe.test/cs_test_1",
	}, nil
}

func (g *fakeGateway) CreatePaymentIntent(ctx context.Context, in domain.PaymentIntentInput) (*domain.PaymentIntentRef, error) {
	g.intents = append(g.intents, in)
	return &domain.PaymentIntentRef{
		IntentID:     "pi_test_1",
		ClientSecret: "pi_test_1_secret_abc",
		Status:       domain.PaymentCreated,
	}, nil
}

func (g *fakeGateway) CreateRefund(ctx context.Context, processorRef string) (string, error) {
	if g.refundErr != nil {
		return "", g.refundErr
	}
	g.refunds = append(g.refunds, processorRef)
	return "re_test_1", nil
}

type fakeNotifier struct {
	mu    sync.Mutex
	calls []domain.OrderNotification
}

func (n *fakeNotifier) Notify(ctx context.Context, notification domain.OrderNotification) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.calls = append(n.calls, notification)
	return nil
}

func newTestUsecase(repo *fakePaymentRepo, gateway *fakeGateway, notifier *fakeNotifier) *DefaultPaymentUsecase {
	return NewDefaultPaymentUsecase(repo, gateway, notifier, nil, nil,
		"payment-events",
		"https://shop.test/checkout/success",
		"https://shop.test/checkout/cancel",
		24*time.Hour)
}

func TestCreatePayment_CheckoutMode(t *testing.T) {
	repo := newFakePaymentRepo()
	gateway := &fakeGateway{}
	uc := newTestUsecase(repo, gateway, &fakeNotifier{})

	out, err := uc.CreatePayment(context.Background(), &paymentdto.CreatePaymentInput{
		OrderID:     "order_1",
		UserID:      "user_1",
		Amount:      4999,
		Currency:    "usd",
		ProductName: "Order order_1",
	})
	require.NoError(t, err)

	_, err = uuid.Parse(out.PaymentID)
	require.NoError(t, err, "payment id should be a uuid")
	assert.Equal(t, string(domain.PaymentCreated), out.Status)
	assert.Equal(t, "https://checkout.stripe.test/cs_test_1", out.CheckoutURL)
	assert.Equal(t, "cs_test_1", out.ProcessorRef)
	assert.Empty(t, out.ClientSecret)

	require.Len(t, gateway.sessions, 1)
	assert.Equal(t, out.PaymentID, gateway.sessions[0].PaymentID)
	assert.Equal(t, "order_1", gateway.sessions[0].OrderID)
	assert.Equal(t, "https://shop.test/checkout/success", gateway.sessions[0].SuccessURL)

	stored, err := repo.GetPaymentByID(context.Background(), out.PaymentID)
	require.NoError(t, err)
	assert.Equal(t, domain.PaymentCreated, stored.Status)
}

func TestCreatePayment_IntentMode(t *testing.T) {
	repo := newFakePaymentRepo()
	gateway := &fakeGateway{}
	uc := newTestUsecase(repo, gateway, &fakeNotifier{})

	out, err := uc.CreatePayment(context.Background(), &paymentdto.CreatePaymentInput{
		OrderID:  "order_1",
		Amount:   1200,
		Currency: "eur",
		Mode:     paymentdto.ModeIntent,
	})
	require.NoError(t, err)
	assert.Equal(t, "pi_test_1", out.ProcessorRef)
	assert.Equal(t, "pi_test_1_secret_abc", out.ClientSecret)
	assert.Empty(t, out.CheckoutURL)
	require.Len(t, gateway.intents, 1)
	assert.Equal(t, out.PaymentID, gateway.intents[0].PaymentID)
}

func TestCreatePayment_GatewayFailure(t *testing.T) {
	repo := newFakePaymentRepo()
	gateway := &fakeGateway{sessionErr: errors.New("stripe: api_connection_error")}
	uc := newTestUsecase(repo, gateway, &fakeNotifier{})

	_, err := uc.CreatePayment(context.Background(), &paymentdto.CreatePaymentInput{
		OrderID:  "order_1",
		Amount:   4999,
		Currency: "usd",
	})
	require.Error(t, err)
	assert.Zero(t, repo.count(), "no payment row without a processor object")
}

func TestCreatePayment_UnknownMode(t *testing.T) {
	uc := newTestUsecase(newFakePaymentRepo(), &fakeGateway{}, &fakeNotifier{})

	_, err := uc.CreatePayment(context.Background(), &paymentdto.CreatePaymentInput{
		OrderID:  "order_1",
		Amount:   100,
		Currency: "usd",
		Mode:     "subscription",
	})
	require.Error(t, err)
}

func TestRequestRefund(t *testing.T) {
	tests := []struct {
		name    string
		payment *domain.Payment
		wantErr error
	}{
		{
			name:    "succeeded payment with processor ref",
			payment: &domain.Payment{ID: "pay_1", Status: domain.PaymentSucceeded, ProcessorRef: "pi_1", Currency: "usd"},
		},
		{
			name:    "payment not yet succeeded",
			payment: &domain.Payment{ID: "pay_1", Status: domain.PaymentCreated, ProcessorRef: "pi_1"},
			wantErr: domain.ErrRefundNotAllowed,
		},
		{
			name:    "succeeded without processor ref",
			payment: &domain.Payment{ID: "pay_1", Status: domain.PaymentSucceeded},
			wantErr: domain.ErrRefundNotAllowed,
		},
		{
			name:    "already refunded",
			payment: &domain.Payment{ID: "pay_1", Status: domain.PaymentRefunded, ProcessorRef: "pi_1"},
			wantErr: domain.ErrRefundNotAllowed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newFakePaymentRepo(tt.payment)
			gateway := &fakeGateway{}
			uc := newTestUsecase(repo, gateway, &fakeNotifier{})

			out, err := uc.RequestRefund(context.Background(), "pay_1")
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, gateway.refunds)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "re_test_1", out.RefundID)
			// Status flips only when the refund webhook lands.
			assert.Equal(t, string(domain.PaymentSucceeded), out.Status)
			assert.Equal(t, domain.PaymentSucceeded, repo.payments["pay_1"].Status)
			require.Len(t, gateway.refunds, 1)
			assert.Equal(t, "pi_1", gateway.refunds[0])
		})
	}
}

func TestRequestRefund_PaymentNotFound(t *testing.T) {
	uc := newTestUsecase(newFakePaymentRepo(), &fakeGateway{}, &fakeNotifier{})

	_, err := uc.RequestRefund(context.Background(), "pay_missing")
	require.ErrorIs(t, err, domain.ErrPaymentNotFound)
}

func TestExpireStalePayments(t *testing.T) {
	old := time.Now().UTC().Add(-48 * time.Hour)
	repo := newFakePaymentRepo(
		&domain.Payment{ID: "pay_old", OrderID: "order_1", Status: domain.PaymentCreated, CreatedAt: old},
		&domain.Payment{ID: "pay_gone", OrderID: "order_2", Status: domain.PaymentCanceled, CreatedAt: old},
	)
	repo.stale = []*domain.Payment{repo.payments["pay_old"], repo.payments["pay_gone"]}
	notifier := &fakeNotifier{}
	uc := newTestUsecase(repo, &fakeGateway{}, notifier)

	require.NoError(t, uc.ExpireStalePayments(context.Background()))

	assert.Equal(t, domain.PaymentCanceled, repo.payments["pay_old"].Status)
	// Already-canceled candidates are skipped by the transition guard.
	require.Len(t, repo.updates, 1)

	require.Len(t, notifier.calls, 1)
	assert.Equal(t, "canceled", notifier.calls[0].Status)
	assert.Equal(t, "order_1", notifier.calls[0].OrderID)
}
