//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"hotel-booking-api/internal/domain/booking"
	"hotel-booking-api/internal/pkg/errs"
	"hotel-booking-api/internal/usecase/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubReader struct {
	bookings []booking.Booking
	err      error
}

func (r *stubReader) ListAll(_ context.Context) ([]booking.Booking, error) {
	return r.bookings, r.err
}

func bookingAt(id string, bookedAt time.Time) booking.Booking {
	return booking.Booking{
		ID:         id,
		RoomID:     "room-102",
		RoomName:   "Double Room",
		GuestName:  "Budi Santoso",
		Phone:      "081234567890",
		Email:      "budi@example.com",
		CheckIn:    "2024-06-01",
		CheckOut:   "2024-06-03",
		Guests:     2,
		Nights:     2,
		TotalPrice: 1100000,
		BookedAt:   bookedAt,
	}
}

func TestBookingQueriesList(t *testing.T) {
	ctx := context.Background()
	base := time.Date(2024, 5, 20, 10, 0, 0, 0, time.UTC)

	t.Run("orders newest first", func(t *testing.T) {
		reader := &stubReader{bookings: []booking.Booking{
			bookingAt("booking-old", base),
			bookingAt("booking-new", base.Add(48*time.Hour)),
			bookingAt("booking-mid", base.Add(24*time.Hour)),
		}}
		q := queries.NewBookingQueries(reader)

		views, err := q.List(ctx)
		require.NoError(t, err)
		require.Len(t, views, 3)
		assert.Equal(t, "booking-new", views[0].ID)
		assert.Equal(t, "booking-mid", views[1].ID)
		assert.Equal(t, "booking-old", views[2].ID)
	})

	t.Run("formats the total for display", func(t *testing.T) {
		reader := &stubReader{bookings: []booking.Booking{bookingAt("booking-1", base)}}
		q := queries.NewBookingQueries(reader)

		views, err := q.List(ctx)
		require.NoError(t, err)
		assert.Equal(t, "Rp 1.100.000", views[0].TotalPriceFormatted)
	})

	t.Run("reader failure is marked as storage failure", func(t *testing.T) {
		reader := &stubReader{err: errs.New("disk gone")}
		q := queries.NewBookingQueries(reader)

		_, err := q.List(ctx)
		assert.ErrorIs(t, err, errs.ErrStorageFailure)
	})
}

func TestBookingQueriesGetByID(t *testing.T) {
	ctx := context.Background()
	base := time.Date(2024, 5, 20, 10, 0, 0, 0, time.UTC)

	reader := &stubReader{bookings: []booking.Booking{bookingAt("booking-1", base)}}
	q := queries.NewBookingQueries(reader)

	t.Run("known id", func(t *testing.T) {
		view, err := q.GetByID(ctx, "booking-1")
		require.NoError(t, err)
		assert.Equal(t, "Double Room", view.RoomName)
	})

	t.Run("unknown id", func(t *testing.T) {
		_, err := q.GetByID(ctx, "booking-2")
		assert.ErrorIs(t, err, errs.ErrBookingNotFound)
	})
}
