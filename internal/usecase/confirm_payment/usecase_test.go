package confirm_payment

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	svix "github.com/svix/svix-webhooks/go"

	"github.com/m04kA/Fairway-BookingService/internal/domain"
	bookingRepo "github.com/m04kA/Fairway-BookingService/internal/infra/storage/booking"
	"github.com/m04kA/Fairway-BookingService/internal/integrations/yoco"
	"github.com/m04kA/Fairway-BookingService/pkg/ptr"
)

var sast = time.FixedZone("SAST", 2*60*60)

type fakeRepo struct {
	bookings map[uuid.UUID]*domain.Booking
	updates  int
	err      error
}

func (f *fakeRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Booking, error) {
	if f.err != nil {
		return nil, f.err
	}
	b, ok := f.bookings[id]
	if !ok {
		return nil, bookingRepo.ErrBookingNotFound
	}
	cp := *b
	return &cp, nil
}

func (f *fakeRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.BookingStatus, paymentStatus domain.PaymentStatus) error {
	f.updates++
	f.bookings[id].Status = status
	f.bookings[id].PaymentStatus = paymentStatus
	return nil
}

type passTx struct{}

func (passTx) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fakeSlots struct{ days []time.Time }

func (f *fakeSlots) ForgetDay(ctx context.Context, day time.Time) {
	f.days = append(f.days, day)
}

type fakeNotifier struct {
	events []domain.BookingEvent
	err    error
}

func (f *fakeNotifier) Notify(ctx context.Context, event domain.BookingEvent) error {
	f.events = append(f.events, event)
	return f.err
}

type fixedTime struct{ now time.Time }

func (f fixedTime) Now() time.Time { return f.now }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

var now = time.Date(2025, 3, 14, 9, 0, 0, 0, sast)

type fixture struct {
	uc       *UseCase
	repo     *fakeRepo
	slots    *fakeSlots
	notifier *fakeNotifier
}

var webhookSecret = "whsec_" + base64.StdEncoding.EncodeToString([]byte("webhook-secret"))

func newFixture(t *testing.T) *fixture {
	t.Helper()

	verifier, err := yoco.NewWebhookVerifier(webhookSecret)
	require.NoError(t, err)

	f := &fixture{
		repo:     &fakeRepo{bookings: map[uuid.UUID]*domain.Booking{}},
		slots:    &fakeSlots{},
		notifier: &fakeNotifier{},
	}
	f.uc = NewUseCase(f.repo, passTx{}, f.slots, verifier, f.notifier, Settings{
		DepositPercent: 40,
		GhostTimeout:   20 * time.Minute,
	}, nopLogger{})
	f.uc.timeProvider = fixedTime{now: now}
	return f
}

func (f *fixture) add(status domain.BookingStatus, session string, total float64) *domain.Booking {
	start := time.Date(2025, 3, 14, 14, 0, 0, 0, sast)
	b := &domain.Booking{
		ID:            uuid.New(),
		BayID:         2,
		BookingDate:   time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC),
		StartTime:     "14:00",
		EndTime:       "15:00",
		SlotStart:     start,
		SlotEnd:       start.Add(time.Hour),
		DurationHours: 1,
		Status:        status,
		PaymentStatus: domain.PaymentPending,
		SessionType:   session,
		TotalPrice:    total,
		GuestName:     ptr.Ptr("Sipho"),
		CreatedAt:     now.Add(-5 * time.Minute),
	}
	f.repo.bookings[b.ID] = b
	return b
}

func TestExecute_ConfirmsPending(t *testing.T) {
	f := newFixture(t)
	b := f.add(domain.StatusPending, "famous-course", 1000)

	resp, err := f.uc.Execute(context.Background(), &Request{BookingID: b.ID})
	require.NoError(t, err)

	assert.Equal(t, string(domain.StatusConfirmed), resp.Status)
	assert.False(t, resp.AlreadyConfirmed)
	assert.Equal(t, 400.0, resp.DepositPaid)
	assert.Equal(t, 600.0, resp.Outstanding)

	assert.Equal(t, domain.StatusConfirmed, f.repo.bookings[b.ID].Status)
	assert.Equal(t, domain.PaymentCompleted, f.repo.bookings[b.ID].PaymentStatus)
	assert.Len(t, f.slots.days, 1)

	require.Len(t, f.notifier.events, 1)
	want := domain.BookingEvent{
		Type:        domain.EventPaymentSucceeded,
		BookingID:   b.ID,
		BayID:       2,
		PaymentID:   "manual_confirmation",
		Amount:      400,
		TotalPrice:  1000,
		DepositPaid: 400,
		Outstanding: 600,
		Status:      domain.StatusConfirmed,
		GuestName:   ptr.Ptr("Sipho"),
		SlotStart:   b.SlotStart,
		OccurredAt:  now,
	}
	if diff := cmp.Diff(want, f.notifier.events[0]); diff != "" {
		t.Errorf("event mismatch (-want +got):\n%s", diff)
	}
}

func TestExecute_Idempotent(t *testing.T) {
	f := newFixture(t)
	b := f.add(domain.StatusPending, "quick", 300)

	_, err := f.uc.Execute(context.Background(), &Request{BookingID: b.ID})
	require.NoError(t, err)

	resp, err := f.uc.Execute(context.Background(), &Request{BookingID: b.ID})
	require.NoError(t, err)
	assert.True(t, resp.AlreadyConfirmed)
	assert.Equal(t, 1, f.repo.updates)
	assert.Len(t, f.notifier.events, 1)
}

func TestExecute_LateConfirmationOfGhost(t *testing.T) {
	f := newFixture(t)
	b := f.add(domain.StatusPending, "quick", 300)
	f.repo.bookings[b.ID].CreatedAt = now.Add(-time.Hour)

	resp, err := f.uc.Execute(context.Background(), &Request{BookingID: b.ID})
	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusConfirmed), resp.Status)
}

func TestExecute_NotificationFailureIsSwallowed(t *testing.T) {
	f := newFixture(t)
	f.notifier.err = errors.New("connection refused")
	b := f.add(domain.StatusPending, "quick", 300)

	resp, err := f.uc.Execute(context.Background(), &Request{BookingID: b.ID})
	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusConfirmed), resp.Status)
}

func TestExecute_Errors(t *testing.T) {
	f := newFixture(t)
	cancelled := f.add(domain.StatusCancelled, "quick", 300)

	_, err := f.uc.Execute(context.Background(), &Request{})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = f.uc.Execute(context.Background(), &Request{BookingID: uuid.New()})
	assert.ErrorIs(t, err, ErrBookingNotFound)

	_, err = f.uc.Execute(context.Background(), &Request{BookingID: cancelled.ID})
	assert.ErrorIs(t, err, ErrCannotConfirm)

	f.repo.err = fmt.Errorf("connection reset")
	_, err = f.uc.Execute(context.Background(), &Request{BookingID: cancelled.ID})
	assert.ErrorIs(t, err, ErrInternal)

	assert.Empty(t, f.notifier.events)
}

func signedRequest(t *testing.T, body []byte) http.Header {
	t.Helper()

	wh, err := svix.NewWebhook(webhookSecret)
	require.NoError(t, err)
	signature, err := wh.Sign("evt_1", now, body)
	require.NoError(t, err)

	header := http.Header{}
	header.Set("webhook-id", "evt_1")
	header.Set("webhook-timestamp", strconv.FormatInt(now.Unix(), 10))
	header.Set("webhook-signature", signature)
	return header
}

func TestExecuteWebhook(t *testing.T) {
	f := newFixture(t)
	b := f.add(domain.StatusPending, "4-ball", 1000)

	body := []byte(fmt.Sprintf(
		`{"id":"evt_1","type":"payment.succeeded","payload":{"id":"p_9","amount":50000,"currency":"ZAR","metadata":{"bookingId":%q}}}`,
		b.ID.String()))

	resp, err := f.uc.ExecuteWebhook(context.Background(), signedRequest(t, body), body)
	require.NoError(t, err)

	assert.Equal(t, b.ID, resp.BookingID)
	assert.Equal(t, 500.0, resp.DepositPaid, "amount reported by the gateway wins")
	assert.Equal(t, 500.0, resp.Outstanding)
	require.Len(t, f.notifier.events, 1)
	assert.Equal(t, "p_9", f.notifier.events[0].PaymentID)
}

func TestExecuteWebhook_Rejected(t *testing.T) {
	f := newFixture(t)
	b := f.add(domain.StatusPending, "quick", 300)

	body := []byte(fmt.Sprintf(`{"type":"payment.succeeded","payload":{"metadata":{"bookingId":%q}}}`, b.ID))
	header := signedRequest(t, []byte(`{"other":"body"}`))

	_, err := f.uc.ExecuteWebhook(context.Background(), header, body)
	assert.ErrorIs(t, err, ErrInvalidSignature)
	assert.Equal(t, domain.StatusPending, f.repo.bookings[b.ID].Status)
}

func TestExecuteWebhook_UnsignedIsRejected(t *testing.T) {
	f := newFixture(t)
	b := f.add(domain.StatusPending, "quick", 500)

	body := []byte(fmt.Sprintf(`{"type":"payment.succeeded","payload":{"amount":1,"metadata":{"bookingId":%q}}}`, b.ID))

	_, err := f.uc.ExecuteWebhook(context.Background(), http.Header{}, body)
	assert.ErrorIs(t, err, ErrInvalidSignature)
	assert.Equal(t, domain.StatusPending, f.repo.bookings[b.ID].Status)
	assert.Zero(t, f.repo.updates)
	assert.Empty(t, f.notifier.events)
}

func TestExecuteWebhook_OtherEvents(t *testing.T) {
	f := newFixture(t)

	tests := []struct {
		name        string
		body        string
		wantIgnored bool
		wantErr     error
	}{
		{name: "foreign event type", body: `{"type":"refund.succeeded"}`, wantIgnored: true},
		{name: "bad booking id", body: `{"type":"payment.succeeded","payload":{"metadata":{"bookingId":"nope"}}}`, wantErr: ErrInvalidInput},
		{name: "not json", body: `not json`, wantErr: ErrInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body := []byte(tt.body)
			resp, err := f.uc.ExecuteWebhook(context.Background(), signedRequest(t, body), body)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantIgnored, resp.Ignored)
		})
	}
}
