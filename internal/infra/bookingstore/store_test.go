//go:build unit

package bookingstore_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"hotel-booking-api/internal/domain/booking"
	"hotel-booking-api/internal/infra"
	"hotel-booking-api/internal/infra/blob"
	"hotel-booking-api/internal/infra/bookingstore"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const namespace = "hotel_bookings_v1"

func newStore(t *testing.T) (*bookingstore.Store, *blob.MemoryBackend) {
	t.Helper()
	backend := blob.NewMemoryBackend()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return bookingstore.New(backend, namespace, logger), backend
}

func sampleBooking(id string) booking.Booking {
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
		BookedAt:   time.Date(2024, 5, 20, 10, 0, 0, 0, time.UTC),
	}
}

func TestListAll(t *testing.T) {
	ctx := context.Background()

	t.Run("empty store yields an empty collection", func(t *testing.T) {
		store, _ := newStore(t)

		bookings, err := store.ListAll(ctx)
		require.NoError(t, err)
		assert.Empty(t, bookings)
		assert.NotNil(t, bookings)
	})

	t.Run("corrupt blob degrades to empty, not an error", func(t *testing.T) {
		store, backend := newStore(t)
		backend.Seed(namespace, []byte(`{"this is": not json`))

		bookings, err := store.ListAll(ctx)
		require.NoError(t, err)
		assert.Empty(t, bookings)
	})

	t.Run("idempotent without intervening writes", func(t *testing.T) {
		store, _ := newStore(t)
		require.NoError(t, store.Append(ctx, sampleBooking("booking-1")))
		require.NoError(t, store.Append(ctx, sampleBooking("booking-2")))

		first, err := store.ListAll(ctx)
		require.NoError(t, err)
		second, err := store.ListAll(ctx)
		require.NoError(t, err)

		assert.Empty(t, cmp.Diff(first, second))
	})

	t.Run("read failure other than not-found propagates", func(t *testing.T) {
		store, backend := newStore(t)
		backend.LoadErr = infra.NewRepoErr(infra.KindIOFailure, "disk unavailable")

		_, err := store.ListAll(ctx)
		assert.True(t, infra.IsKind(err, infra.KindIOFailure))
	})
}

func TestAppend(t *testing.T) {
	ctx := context.Background()

	t.Run("appended record appears exactly once", func(t *testing.T) {
		store, _ := newStore(t)
		require.NoError(t, store.Append(ctx, sampleBooking("booking-1")))

		bookings, err := store.ListAll(ctx)
		require.NoError(t, err)
		require.Len(t, bookings, 1)
		assert.Empty(t, cmp.Diff(sampleBooking("booking-1"), bookings[0]))
	})

	t.Run("preserves existing records in order", func(t *testing.T) {
		store, _ := newStore(t)
		require.NoError(t, store.Append(ctx, sampleBooking("booking-1")))
		require.NoError(t, store.Append(ctx, sampleBooking("booking-2")))
		require.NoError(t, store.Append(ctx, sampleBooking("booking-3")))

		bookings, err := store.ListAll(ctx)
		require.NoError(t, err)
		require.Len(t, bookings, 3)
		assert.Equal(t, "booking-1", bookings[0].ID)
		assert.Equal(t, "booking-3", bookings[2].ID)
	})

	t.Run("write failure leaves prior state unchanged", func(t *testing.T) {
		store, backend := newStore(t)
		require.NoError(t, store.Append(ctx, sampleBooking("booking-1")))

		backend.StoreErr = infra.NewRepoErr(infra.KindIOFailure, "quota exceeded")
		err := store.Append(ctx, sampleBooking("booking-2"))
		require.Error(t, err)

		backend.StoreErr = nil
		bookings, err := store.ListAll(ctx)
		require.NoError(t, err)
		require.Len(t, bookings, 1)
		assert.Equal(t, "booking-1", bookings[0].ID)
	})
}

func TestRemove(t *testing.T) {
	ctx := context.Background()

	t.Run("removes only the matching record", func(t *testing.T) {
		store, _ := newStore(t)
		require.NoError(t, store.Append(ctx, sampleBooking("booking-1")))
		require.NoError(t, store.Append(ctx, sampleBooking("booking-2")))

		require.NoError(t, store.Remove(ctx, "booking-1"))

		bookings, err := store.ListAll(ctx)
		require.NoError(t, err)
		require.Len(t, bookings, 1)
		assert.Equal(t, "booking-2", bookings[0].ID)
	})

	t.Run("unknown id is a successful no-op", func(t *testing.T) {
		store, _ := newStore(t)
		require.NoError(t, store.Append(ctx, sampleBooking("booking-1")))

		require.NoError(t, store.Remove(ctx, "booking-unknown"))

		bookings, err := store.ListAll(ctx)
		require.NoError(t, err)
		assert.Len(t, bookings, 1)
	})
}
