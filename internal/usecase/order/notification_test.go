package usecase

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quickcart/payments/internal/domain"
	orderdto "github.com/quickcart/payments/internal/usecase/dto/order"
)

type fakeOrderRepo struct {
	mu       sync.Mutex
	orders   map[string]*domain.Order
	updates  []domain.OrderStatus
	refSets  int
	storeErr error
}

func newFakeOrderRepo(orders ...*domain.Order) *fakeOrderRepo {
	repo := &fakeOrderRepo{orders: make(map[string]*domain.Order)}
	for _, o := range orders {
		repo.orders[o.ID] = o
	}
	return repo
}

func (r *fakeOrderRepo) CreateOrder(ctx context.Context, order *domain.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.storeErr != nil {
		return r.storeErr
	}
	r.orders[order.ID] = order
	return nil
}

func (r *fakeOrderRepo) GetOrderByID(ctx context.Context, orderID string) (*domain.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	o, ok := r.orders[orderID]
	if !ok {
		return nil, domain.ErrOrderNotFound
	}
	cp := *o
	return &cp, nil
}

func (r *fakeOrderRepo) UpdateOrderStatus(ctx context.Context, orderID string, newStatus domain.OrderStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	o, ok := r.orders[orderID]
	if !ok {
		return domain.ErrOrderNotFound
	}
	o.Status = newStatus
	r.updates = append(r.updates, newStatus)
	return nil
}

func (r *fakeOrderRepo) SetPaymentRef(ctx context.Context, orderID, paymentID, receiptURL, checkoutURL string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	o, ok := r.orders[orderID]
	if !ok {
		return domain.ErrOrderNotFound
	}
	o.PaymentID = paymentID
	if receiptURL != "" {
		o.ReceiptURL = receiptURL
	}
	if checkoutURL != "" {
		o.CheckoutURL = checkoutURL
	}
	r.refSets++
	return nil
}

func (r *fakeOrderRepo) status(orderID string) domain.OrderStatus {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.orders[orderID].Status
}

type fakeStore struct {
	mu        sync.Mutex
	processed map[string]string
	locks     map[string]bool
}

func newFakeStore() *fakeStore {
	return &fakeStore{processed: make(map[string]string), locks: make(map[string]bool)}
}

func (s *fakeStore) IsDuplicate(ctx context.Context, eventID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.processed[eventID]
	return ok
}

func (s *fakeStore) AcquireLock(ctx context.Context, eventID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.locks[eventID] {
		return false
	}
	s.locks[eventID] = true
	return true
}

func (s *fakeStore) ReleaseLock(ctx context.Context, eventID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.locks, eventID)
}

func (s *fakeStore) MarkProcessed(ctx context.Context, eventID, eventType string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.processed[eventID] = eventType
	return nil
}

func (s *fakeStore) marked(eventID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.processed[eventID]
	return ok
}

func newTestUsecase(repo *fakeOrderRepo, store *fakeStore) *DefaultOrderUsecase {
	return NewDefaultOrderUsecase(repo, store, nil, nil, nil, "order-events")
}

func notification(eventID, orderID, status string) *orderdto.PaymentNotificationInput {
	return &orderdto.PaymentNotificationInput{
		EventID:   eventID,
		OrderID:   orderID,
		PaymentID: "pay_1",
		Status:    status,
	}
}

func TestApplyPaymentNotification_StatusMap(t *testing.T) {
	tests := []struct {
		name          string
		currentStatus domain.OrderStatus
		payStatus     string
		wantOutcome   domain.WebhookOutcome
		wantReason    domain.IgnoreReason
		wantStatus    domain.OrderStatus
		wantMarked    bool
	}{
		{
			name:          "created payment holds order pending",
			currentStatus: domain.OrderCreated,
			payStatus:     "created",
			wantOutcome:   domain.OutcomeProcessed,
			wantStatus:    domain.OrderPending,
			wantMarked:    true,
		},
		{
			name:          "processing payment holds order pending",
			currentStatus: domain.OrderCreated,
			payStatus:     "processing",
			wantOutcome:   domain.OutcomeProcessed,
			wantStatus:    domain.OrderPending,
			wantMarked:    true,
		},
		{
			name:          "succeeded payment pays pending order",
			currentStatus: domain.OrderPending,
			payStatus:     "succeeded",
			wantOutcome:   domain.OutcomeProcessed,
			wantStatus:    domain.OrderPaid,
			wantMarked:    true,
		},
		{
			name:          "succeeded payment skips straight from created",
			currentStatus: domain.OrderCreated,
			payStatus:     "succeeded",
			wantOutcome:   domain.OutcomeProcessed,
			wantStatus:    domain.OrderPaid,
			wantMarked:    true,
		},
		{
			name:          "failed payment cannot undo paid order",
			currentStatus: domain.OrderPaid,
			payStatus:     "failed",
			wantOutcome:   domain.OutcomeIgnored,
			wantReason:    domain.ReasonInvalidTransition,
			wantStatus:    domain.OrderPaid,
			wantMarked:    true,
		},
		{
			name:          "refund lands on shipped order",
			currentStatus: domain.OrderShipped,
			payStatus:     "refunded",
			wantOutcome:   domain.OutcomeProcessed,
			wantStatus:    domain.OrderRefunded,
			wantMarked:    true,
		},
		{
			name:          "cancel replay on canceled order",
			currentStatus: domain.OrderCanceled,
			payStatus:     "canceled",
			wantOutcome:   domain.OutcomeIgnored,
			wantReason:    domain.ReasonAlreadyInState,
			wantStatus:    domain.OrderCanceled,
			wantMarked:    true,
		},
		{
			name:          "pending replay",
			currentStatus: domain.OrderPending,
			payStatus:     "processing",
			wantOutcome:   domain.OutcomeIgnored,
			wantReason:    domain.ReasonAlreadyInState,
			wantStatus:    domain.OrderPending,
			wantMarked:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newFakeOrderRepo(&domain.Order{ID: "order_1", Status: tt.currentStatus})
			store := newFakeStore()
			uc := newTestUsecase(repo, store)

			result, err := uc.ApplyPaymentNotification(context.Background(),
				notification("key_1", "order_1", tt.payStatus))
			require.NoError(t, err)
			assert.Equal(t, tt.wantOutcome, result.Outcome)
			assert.Equal(t, tt.wantReason, result.Reason)
			assert.Equal(t, tt.wantStatus, repo.status("order_1"))
			assert.Equal(t, tt.wantMarked, store.marked("key_1"))
		})
	}
}

func TestApplyPaymentNotification_UnknownStatus(t *testing.T) {
	repo := newFakeOrderRepo(&domain.Order{ID: "order_1", Status: domain.OrderPending})
	uc := newTestUsecase(repo, newFakeStore())

	_, err := uc.ApplyPaymentNotification(context.Background(),
		notification("key_1", "order_1", "chargeback"))
	require.ErrorIs(t, err, domain.ErrUnknownStatus)
	assert.Equal(t, domain.OrderPending, repo.status("order_1"))
}

func TestApplyPaymentNotification_Duplicate(t *testing.T) {
	repo := newFakeOrderRepo(&domain.Order{ID: "order_1", Status: domain.OrderPending})
	store := newFakeStore()
	uc := newTestUsecase(repo, store)

	first, err := uc.ApplyPaymentNotification(context.Background(),
		notification("key_1", "order_1", "succeeded"))
	require.NoError(t, err)
	require.Equal(t, domain.OutcomeProcessed, first.Outcome)

	second, err := uc.ApplyPaymentNotification(context.Background(),
		notification("key_1", "order_1", "succeeded"))
	require.NoError(t, err)
	assert.Equal(t, domain.OutcomeAlreadyProcessed, second.Outcome)

	require.Len(t, repo.updates, 1)
}

func TestApplyPaymentNotification_LockContention(t *testing.T) {
	repo := newFakeOrderRepo(&domain.Order{ID: "order_1", Status: domain.OrderPending})
	store := newFakeStore()
	store.locks["key_1"] = true
	uc := newTestUsecase(repo, store)

	result, err := uc.ApplyPaymentNotification(context.Background(),
		notification("key_1", "order_1", "succeeded"))
	require.NoError(t, err)
	assert.Equal(t, domain.OutcomeLockContention, result.Outcome)
	assert.Equal(t, domain.OrderPending, repo.status("order_1"))
}

func TestApplyPaymentNotification_OrderNotFound(t *testing.T) {
	store := newFakeStore()
	uc := newTestUsecase(newFakeOrderRepo(), store)

	result, err := uc.ApplyPaymentNotification(context.Background(),
		notification("key_1", "order_missing", "succeeded"))
	require.NoError(t, err)
	assert.Equal(t, domain.OutcomeIgnored, result.Outcome)
	assert.Equal(t, domain.ReasonOrderNotFound, result.Reason)
	assert.False(t, store.marked("key_1"), "retry must land once the order exists")
}

func TestApplyPaymentNotification_SetsPaymentRef(t *testing.T) {
	repo := newFakeOrderRepo(&domain.Order{ID: "order_1", Status: domain.OrderPending})
	uc := newTestUsecase(repo, newFakeStore())

	input := notification("key_1", "order_1", "succeeded")
	input.ReceiptURL = "https://receipts.stripe.test/r_1"
	_, err := uc.ApplyPaymentNotification(context.Background(), input)
	require.NoError(t, err)

	assert.Equal(t, 1, repo.refSets)
	assert.Equal(t, "pay_1", repo.orders["order_1"].PaymentID)
	assert.Equal(t, "https://receipts.stripe.test/r_1", repo.orders["order_1"].ReceiptURL)
}

func TestCreateOrder(t *testing.T) {
	repo := newFakeOrderRepo()
	uc := newTestUsecase(repo, newFakeStore())

	out, err := uc.CreateOrder(context.Background(), &orderdto.CreateOrderInput{
		UserID: "user_1",
		Items: []orderdto.OrderItemInput{
			{ProductID: "sku_1", Name: "Mug", Quantity: 2, UnitPrice: 1250},
			{ProductID: "sku_2", Name: "Poster", Quantity: 1, UnitPrice: 900},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, int64(3400), out.Total)
	assert.Equal(t, string(domain.OrderCreated), out.Status)
	assert.Len(t, out.Number, 12)
	assert.Len(t, out.Items, 2)
}

func TestCreateOrder_NoItems(t *testing.T) {
	uc := newTestUsecase(newFakeOrderRepo(), newFakeStore())

	_, err := uc.CreateOrder(context.Background(), &orderdto.CreateOrderInput{UserID: "user_1"})
	require.ErrorIs(t, err, domain.ErrOrderHasNoItems)
}

func TestShipOrder(t *testing.T) {
	repo := newFakeOrderRepo(&domain.Order{ID: "order_1", Status: domain.OrderPaid})
	uc := newTestUsecase(repo, newFakeStore())

	require.NoError(t, uc.ShipOrder(context.Background(), "order_1"))
	assert.Equal(t, domain.OrderShipped, repo.status("order_1"))
}

func TestShipOrder_NotPaid(t *testing.T) {
	repo := newFakeOrderRepo(&domain.Order{ID: "order_1", Status: domain.OrderPending})
	uc := newTestUsecase(repo, newFakeStore())

	err := uc.ShipOrder(context.Background(), "order_1")
	require.ErrorIs(t, err, domain.ErrShipNotAllowed)
	assert.Equal(t, domain.OrderPending, repo.status("order_1"))
}
