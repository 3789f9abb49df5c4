package payments

import (
	"context"
	"errors"

	"github.com/mayur-keswani/strip-connect-demo/internal/domain"
)

type fakeEventStore struct {
	events   map[string]domain.Event
	reopened []string
}

func newFakeEventStore(evs ...domain.Event) *fakeEventStore {
	m := make(map[string]domain.Event, len(evs))
	for _, ev := range evs {
		m[ev.ID] = ev
	}
	return &fakeEventStore{events: m}
}

func (f *fakeEventStore) GetByID(_ context.Context, id string) (domain.Event, error) {
	ev, ok := f.events[id]
	if !ok {
		return domain.Event{}, domain.ErrEventNotFound
	}
	return ev, nil
}

func (f *fakeEventStore) CompleteIfPending(_ context.Context, eventID string) (bool, error) {
	ev, ok := f.events[eventID]
	if !ok || ev.Status != domain.EventStatusPending {
		return false, nil
	}
	ev.Status = domain.EventStatusCompleted
	f.events[eventID] = ev
	return true, nil
}

func (f *fakeEventStore) Reopen(_ context.Context, eventID string) error {
	ev, ok := f.events[eventID]
	if !ok {
		return nil
	}
	ev.Status = domain.EventStatusPending
	f.events[eventID] = ev
	f.reopened = append(f.reopened, eventID)
	return nil
}

type fakeBookingStore struct {
	bySession      map[string]domain.Booking
	byEventUser    map[string]struct{}
	statusByIntent map[string]domain.PaymentStatus
	createErr      error
	statusErr      error
}

func newFakeBookingStore() *fakeBookingStore {
	return &fakeBookingStore{
		bySession:      make(map[string]domain.Booking),
		byEventUser:    make(map[string]struct{}),
		statusByIntent: make(map[string]domain.PaymentStatus),
	}
}

func (f *fakeBookingStore) CreateFromCheckout(_ context.Context, b domain.Booking) (bool, error) {
	if f.createErr != nil {
		return false, f.createErr
	}
	key := b.EventID + "/" + b.UserID
	if _, ok := f.bySession[b.CheckoutSessionID]; ok {
		return false, nil
	}
	if _, ok := f.byEventUser[key]; ok {
		return false, nil
	}
	f.bySession[b.CheckoutSessionID] = b
	f.byEventUser[key] = struct{}{}
	return true, nil
}

func (f *fakeBookingStore) ExistsByEventAndUser(_ context.Context, eventID, userID string) (bool, error) {
	_, ok := f.byEventUser[eventID+"/"+userID]
	return ok, nil
}

func (f *fakeBookingStore) CountByEvent(_ context.Context, eventID string) (int64, error) {
	var n int64
	for _, b := range f.bySession {
		if b.EventID == eventID {
			n++
		}
	}
	return n, nil
}

func (f *fakeBookingStore) SetPaymentStatusByIntent(_ context.Context, paymentIntentID string, status domain.PaymentStatus) error {
	if f.statusErr != nil {
		return f.statusErr
	}
	f.statusByIntent[paymentIntentID] = status
	return nil
}

type fakeUserStore struct {
	users     map[string]domain.User
	accounts  map[string]string
	onboarded []string
}

func newFakeUserStore(us ...domain.User) *fakeUserStore {
	m := make(map[string]domain.User, len(us))
	for _, u := range us {
		m[u.ID] = u
	}
	return &fakeUserStore{users: m, accounts: make(map[string]string)}
}

func (f *fakeUserStore) GetByID(_ context.Context, id string) (domain.User, error) {
	u, ok := f.users[id]
	if !ok {
		return domain.User{}, domain.ErrUserNotFound
	}
	return u, nil
}

func (f *fakeUserStore) SetStripeAccount(_ context.Context, userID, accountID string) error {
	u, ok := f.users[userID]
	if !ok {
		return domain.ErrUserNotFound
	}
	u.StripeAccountID = &accountID
	f.users[userID] = u
	f.accounts[userID] = accountID
	return nil
}

func (f *fakeUserStore) MarkOnboardedByAccount(_ context.Context, accountID string) error {
	f.onboarded = append(f.onboarded, accountID)
	return nil
}

type fakeGateway struct {
	sessions  []CheckoutSessionInput
	transfers []TransferInput
	accounts  []string
	links     []string

	sessionID   string
	transferID  string
	accountID   string
	linkURL     string
	sessionErr  error
	transferErr error
	accountErr  error
	linkErr     error
}

func (f *fakeGateway) CreateCheckoutSession(_ context.Context, in CheckoutSessionInput) (string, error) {
	if f.sessionErr != nil {
		return "", f.sessionErr
	}
	f.sessions = append(f.sessions, in)
	return f.sessionID, nil
}

func (f *fakeGateway) CreateTransfer(_ context.Context, in TransferInput) (string, error) {
	if f.transferErr != nil {
		return "", f.transferErr
	}
	f.transfers = append(f.transfers, in)
	return f.transferID, nil
}

func (f *fakeGateway) CreateAccount(_ context.Context, email string) (string, error) {
	if f.accountErr != nil {
		return "", f.accountErr
	}
	f.accounts = append(f.accounts, email)
	return f.accountID, nil
}

func (f *fakeGateway) CreateAccountLink(_ context.Context, accountID, refreshURL, returnURL string) (string, error) {
	if f.linkErr != nil {
		return "", f.linkErr
	}
	f.links = append(f.links, accountID)
	return f.linkURL, nil
}

var errBoom = errors.New("boom")
