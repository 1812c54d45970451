package queries

import (
	"context"
	"sort"
	"time"

	"hotel-booking-api/internal/domain/booking"
	"hotel-booking-api/internal/pkg/errs"
)

// Read models (DTO for read side)
type BookingView struct {
	ID                  string        `json:"id"`
	RoomID              string        `json:"room_id"`
	RoomName            string        `json:"room_name"`
	GuestName           string        `json:"guest_name"`
	Phone               string        `json:"phone"`
	Email               string        `json:"email"`
	Notes               string        `json:"notes,omitempty"`
	CheckIn             string        `json:"check_in"`
	CheckOut            string        `json:"check_out"`
	Guests              int           `json:"guests"`
	Nights              int           `json:"nights"`
	TotalPrice          booking.Money `json:"total_price"`
	TotalPriceFormatted string        `json:"total_price_formatted"`
	BookedAt            time.Time     `json:"booked_at"`
}

func FromBooking(b booking.Booking) *BookingView {
	return &BookingView{
		ID:                  b.ID,
		RoomID:              b.RoomID,
		RoomName:            b.RoomName,
		GuestName:           b.GuestName,
		Phone:               b.Phone,
		Email:               b.Email,
		Notes:               b.Notes,
		CheckIn:             b.CheckIn,
		CheckOut:            b.CheckOut,
		Guests:              b.Guests,
		Nights:              b.Nights,
		TotalPrice:          b.TotalPrice,
		TotalPriceFormatted: b.TotalPrice.Format(),
		BookedAt:            b.BookedAt,
	}
}

// BookingReader is the read side of the booking store.
type BookingReader interface {
	ListAll(ctx context.Context) ([]booking.Booking, error)
}

type BookingQueries interface {
	GetByID(ctx context.Context, id string) (*BookingView, error)
	// List returns every booking, newest first.
	List(ctx context.Context) ([]*BookingView, error)
}

type bookingQueriesImpl struct {
	reader BookingReader
}

func NewBookingQueries(reader BookingReader) BookingQueries {
	return &bookingQueriesImpl{reader: reader}
}

func (q *bookingQueriesImpl) GetByID(ctx context.Context, id string) (*BookingView, error) {
	bookings, err := q.reader.ListAll(ctx)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrStorageFailure)
	}
	for _, b := range bookings {
		if b.ID == id {
			return FromBooking(b), nil
		}
	}
	return nil, errs.ErrBookingNotFound
}

func (q *bookingQueriesImpl) List(ctx context.Context) ([]*BookingView, error) {
	bookings, err := q.reader.ListAll(ctx)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrStorageFailure)
	}

	sort.SliceStable(bookings, func(i, j int) bool {
		return bookings[i].BookedAt.After(bookings[j].BookedAt)
	})

	views := make([]*BookingView, len(bookings))
	for i, b := range bookings {
		views[i] = FromBooking(b)
	}
	return views, nil
}
