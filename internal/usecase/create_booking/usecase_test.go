package create_booking

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/Fairway-BookingService/internal/domain"
	"github.com/m04kA/Fairway-BookingService/internal/service/admission"
	"github.com/m04kA/Fairway-BookingService/pkg/ptr"
)

var sast = time.FixedZone("SAST", 2*60*60)

type fakeEngine struct {
	err       error
	gotWindow domain.Window
	gotPool   int
	gotDraft  domain.BookingDraft
	calls     int
}

func (f *fakeEngine) Admit(ctx context.Context, window domain.Window, poolSize int, draft domain.BookingDraft) (*admission.Admission, error) {
	f.calls++
	f.gotWindow, f.gotPool, f.gotDraft = window, poolSize, draft
	if f.err != nil {
		return nil, f.err
	}
	b := draft.ToBooking(window, 2, sast, window.Start.Add(-time.Hour))
	return &admission.Admission{BookingID: b.ID, BayID: b.BayID, Booking: b}, nil
}

func (f *fakeEngine) PoolSize() int            { return 3 }
func (f *fakeEngine) Location() *time.Location { return sast }

type fixedTime struct{ now time.Time }

func (f fixedTime) Now() time.Time { return f.now }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func testDay() time.Time {
	return time.Date(2025, 3, 14, 0, 0, 0, 0, sast)
}

func newUseCase(engine AdmissionEngine) *UseCase {
	uc := NewUseCase(engine, nopLogger{})
	uc.timeProvider = fixedTime{now: testDay().Add(8 * time.Hour)}
	return uc
}

func TestExecute_WalkInDefaults(t *testing.T) {
	engine := &fakeEngine{}
	uc := newUseCase(engine)

	resp, err := uc.Execute(context.Background(), &Request{
		Date:          testDay(),
		StartTime:     "10:00",
		DurationHours: 1.5,
		TotalPrice:    450,
	})
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, resp.BookingID)
	assert.Equal(t, 2, resp.AssignedBay)
	assert.Equal(t, string(domain.StatusPending), resp.Status)

	assert.Equal(t, 3, engine.gotPool)
	assert.Equal(t, time.Date(2025, 3, 14, 10, 0, 0, 0, sast), engine.gotWindow.Start)
	assert.Equal(t, 90*time.Minute, engine.gotWindow.Duration())

	draft := engine.gotDraft
	assert.Equal(t, domain.UserTypeWalkIn, draft.UserType)
	assert.Equal(t, domain.PaymentPending, draft.PaymentStatus)
	assert.Equal(t, 1, draft.PlayerCount)
	assert.Equal(t, "quick", draft.SessionType)
	require.NotNil(t, draft.GuestName)
	assert.Equal(t, "Walk-In Guest", *draft.GuestName)
}

func TestExecute_PaidInStore(t *testing.T) {
	engine := &fakeEngine{}
	uc := newUseCase(engine)

	resp, err := uc.Execute(context.Background(), &Request{
		Date:          testDay(),
		StartTime:     "12:00",
		DurationHours: 1,
		PlayerCount:   4,
		SessionType:   "4-ball",
		GuestName:     ptr.Ptr("Thabo"),
		PaymentStatus: "completed",
	})
	require.NoError(t, err)

	assert.Equal(t, string(domain.StatusConfirmed), resp.Status)
	assert.Equal(t, domain.PaymentPaidInstore, engine.gotDraft.PaymentStatus)
	assert.Equal(t, "Thabo", *engine.gotDraft.GuestName)
	assert.Equal(t, 4, engine.gotDraft.PlayerCount)
}

func TestExecute_Errors(t *testing.T) {
	valid := func() *Request {
		return &Request{Date: testDay(), StartTime: "10:00", DurationHours: 1}
	}

	tests := []struct {
		name      string
		mutate    func(r *Request)
		engineErr error
		wantErr   error
		admitted  bool
	}{
		{name: "missing date", mutate: func(r *Request) { r.Date = time.Time{} }, wantErr: ErrInvalidInput},
		{name: "bad start time", mutate: func(r *Request) { r.StartTime = "25:00" }, wantErr: ErrInvalidInput},
		{name: "zero duration", mutate: func(r *Request) { r.DurationHours = 0 }, wantErr: ErrInvalidInput},
		{name: "too many players", mutate: func(r *Request) { r.PlayerCount = 9 }, wantErr: ErrInvalidInput},
		{name: "window in the past", mutate: func(r *Request) { r.StartTime = "06:00" }, wantErr: ErrInvalidDate},
		{
			name:      "all bays taken",
			engineErr: fmt.Errorf("%w: 3 of 3 bays taken", admission.ErrCapacityExceeded),
			wantErr:   ErrSlotNotAvailable,
			admitted:  true,
		},
		{
			name:      "outside hours",
			engineErr: fmt.Errorf("%w: outside operating hours", admission.ErrInvalidWindow),
			wantErr:   ErrInvalidTimeSlot,
			admitted:  true,
		},
		{
			name:      "store down",
			engineErr: fmt.Errorf("%w: read day", admission.ErrStoreUnavailable),
			wantErr:   ErrStoreUnavailable,
			admitted:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			engine := &fakeEngine{err: tt.engineErr}
			uc := newUseCase(engine)

			req := valid()
			if tt.mutate != nil {
				tt.mutate(req)
			}

			_, err := uc.Execute(context.Background(), req)
			assert.ErrorIs(t, err, tt.wantErr)
			if tt.admitted {
				assert.Equal(t, 1, engine.calls)
			} else {
				assert.Zero(t, engine.calls)
			}
		})
	}
}
