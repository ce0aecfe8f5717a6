//go:build unit

package booking_test

import (
	"testing"
	"time"

	"tourbook/internal/domain/booking"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validDraft() booking.Draft {
	return booking.Draft{
		UserID:      uuid.New(),
		GuideID:     uuid.New(),
		PlaceID:     uuid.New(),
		GuideName:   "Anish",
		PlaceName:   "Edakkal Caves",
		PlaceImage:  "https://placehold.co/400",
		TouristName: "Meera",
		Date:        "2026-01-15",
		Time:        "09:30",
		Guests:      4,
		Phone1:      "+911234567890",
		Phone2:      "+910987654321",
		Requests:    "wheelchair assistance",
	}
}

func TestNewBooking(t *testing.T) {
	now := time.Date(2025, 12, 1, 10, 0, 0, 0, time.UTC)

	t.Run("valid draft starts pending with creation time", func(t *testing.T) {
		b, err := booking.NewBooking(validDraft(), now)
		require.NoError(t, err)

		assert.NotEqual(t, uuid.Nil, b.ID())
		assert.Equal(t, booking.StatusPending, b.Status())
		assert.Equal(t, now, b.CreatedAt())
		assert.Equal(t, 4, b.Guests())
		assert.Equal(t, "Edakkal Caves", b.PlaceName())
	})

	t.Run("field validation", func(t *testing.T) {
		cases := []struct {
			name   string
			mutate func(*booking.Draft)
			errIs  error
		}{
			{"missing guide", func(d *booking.Draft) { d.GuideID = uuid.Nil }, booking.ErrMissingIdentity},
			{"missing place", func(d *booking.Draft) { d.PlaceID = uuid.Nil }, booking.ErrMissingIdentity},
			{"missing tourist", func(d *booking.Draft) { d.UserID = uuid.Nil }, booking.ErrMissingIdentity},
			{"empty date", func(d *booking.Draft) { d.Date = "  " }, booking.ErrMissingDate},
			{"empty time", func(d *booking.Draft) { d.Time = "" }, booking.ErrMissingTime},
			{"missing primary phone", func(d *booking.Draft) { d.Phone1 = "" }, booking.ErrMissingPhone},
			{"missing alternate phone", func(d *booking.Draft) { d.Phone2 = "" }, booking.ErrMissingPhone},
			{"zero guests", func(d *booking.Draft) { d.Guests = 0 }, booking.ErrInvalidGuests},
			{"negative guests", func(d *booking.Draft) { d.Guests = -3 }, booking.ErrInvalidGuests},
			{"single guest ok", func(d *booking.Draft) { d.Guests = 1 }, nil},
			{"no special requests ok", func(d *booking.Draft) { d.Requests = "" }, nil},
		}

		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				d := validDraft()
				tc.mutate(&d)
				_, err := booking.NewBooking(d, now)
				if tc.errIs != nil {
					assert.ErrorIs(t, err, tc.errIs)
				} else {
					assert.NoError(t, err)
				}
			})
		}
	})
}

func TestTransition(t *testing.T) {
	now := time.Now()

	newBooking := func(t *testing.T) *booking.Booking {
		t.Helper()
		b, err := booking.NewBooking(validDraft(), now)
		require.NoError(t, err)
		return b
	}

	t.Run("assigned guide confirms a pending booking", func(t *testing.T) {
		b := newBooking(t)
		require.NoError(t, b.Transition(booking.StatusConfirmed, b.GuideID()))
		assert.Equal(t, booking.StatusConfirmed, b.Status())
	})

	t.Run("assigned guide rejects a pending booking", func(t *testing.T) {
		b := newBooking(t)
		require.NoError(t, b.Transition(booking.StatusRejected, b.GuideID()))
		assert.Equal(t, booking.StatusRejected, b.Status())
	})

	t.Run("no transition out of a terminal state", func(t *testing.T) {
		b := newBooking(t)
		require.NoError(t, b.Transition(booking.StatusConfirmed, b.GuideID()))

		err := b.Transition(booking.StatusRejected, b.GuideID())
		assert.ErrorIs(t, err, booking.ErrNotPending)
		assert.Equal(t, booking.StatusConfirmed, b.Status())
	})

	t.Run("pending is never a transition target", func(t *testing.T) {
		b := newBooking(t)
		assert.ErrorIs(t, b.Transition(booking.StatusPending, b.GuideID()), booking.ErrInvalidTarget)
	})

	t.Run("only the assigned guide may transition", func(t *testing.T) {
		b := newBooking(t)
		err := b.Transition(booking.StatusConfirmed, uuid.New())
		assert.ErrorIs(t, err, booking.ErrNotAssignedTo)
		assert.Equal(t, booking.StatusPending, b.Status())
	})
}

func TestAuthorizeCancel(t *testing.T) {
	now := time.Now()

	t.Run("owner cancels while pending", func(t *testing.T) {
		b, err := booking.NewBooking(validDraft(), now)
		require.NoError(t, err)
		assert.NoError(t, b.AuthorizeCancel(b.UserID()))
	})

	t.Run("non-owner cannot cancel", func(t *testing.T) {
		b, err := booking.NewBooking(validDraft(), now)
		require.NoError(t, err)
		assert.ErrorIs(t, b.AuthorizeCancel(uuid.New()), booking.ErrNotOwnedBy)
	})

	t.Run("confirmed booking is not cancellable", func(t *testing.T) {
		b, err := booking.NewBooking(validDraft(), now)
		require.NoError(t, err)
		require.NoError(t, b.Transition(booking.StatusConfirmed, b.GuideID()))
		assert.ErrorIs(t, b.AuthorizeCancel(b.UserID()), booking.ErrNotPending)
	})
}

func TestStatus(t *testing.T) {
	t.Run("parsing", func(t *testing.T) {
		for _, s := range []string{"pending", "confirmed", "rejected"} {
			st, err := booking.NewStatus(s)
			require.NoError(t, err)
			assert.Equal(t, s, st.String())
		}

		// UI sometimes renders these labels; they are not real states
		for _, s := range []string{"completed", "cancelled", ""} {
			_, err := booking.NewStatus(s)
			assert.ErrorIs(t, err, booking.ErrInvalidStatus)
		}
	})

	t.Run("transition table", func(t *testing.T) {
		assert.True(t, booking.CanTransition(booking.StatusPending, booking.StatusConfirmed))
		assert.True(t, booking.CanTransition(booking.StatusPending, booking.StatusRejected))
		assert.False(t, booking.CanTransition(booking.StatusConfirmed, booking.StatusRejected))
		assert.False(t, booking.CanTransition(booking.StatusRejected, booking.StatusConfirmed))
		assert.False(t, booking.CanTransition(booking.StatusConfirmed, booking.StatusPending))
	})
}
