//go:build unit

package builder

import (
	"time"

	dombooking "hotel-booking-api/internal/domain/booking"
	reqdto "hotel-booking-api/internal/handler/dto/request"
	"hotel-booking-api/internal/usecase/commands"
	"hotel-booking-api/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingBuilder struct {
	ID        string
	RoomID    string
	RoomName  string
	GuestName string
	Phone     string
	Email     string
	Notes     string
	CheckIn   string
	CheckOut  string
	Guests    int
	Nights    int
	Total     int64
	BookedAt  time.Time
}

func NewBookingBuilder() *BookingBuilder {
	return &BookingBuilder{
		ID:        "booking-1716199200000-aaaaaaaaaa",
		RoomID:    "room-102",
		RoomName:  "Double Room",
		GuestName: "Budi Santoso",
		Phone:     "081234567890",
		Email:     "budi@example.com",
		Notes:     "",
		CheckIn:   "2024-06-01",
		CheckOut:  "2024-06-03",
		Guests:    2,
		Nights:    2,
		Total:     1100000,
		BookedAt:  time.Date(2024, 5, 20, 10, 0, 0, 0, time.UTC),
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

func (b *BookingBuilder) BuildDomain() dombooking.Booking {
	return dombooking.Booking{
		ID:         b.ID,
		RoomID:     b.RoomID,
		RoomName:   b.RoomName,
		GuestName:  b.GuestName,
		Phone:      b.Phone,
		Email:      b.Email,
		Notes:      b.Notes,
		CheckIn:    b.CheckIn,
		CheckOut:   b.CheckOut,
		Guests:     b.Guests,
		Nights:     b.Nights,
		TotalPrice: dombooking.Money(b.Total),
		BookedAt:   b.BookedAt,
	}
}

func (b *BookingBuilder) BuildView() *queries.BookingView {
	record := b.BuildDomain()
	return queries.FromBooking(record)
}

func (b *BookingBuilder) BuildCreateRequestDTO() reqdto.CreateBookingDraftRequest {
	return reqdto.CreateBookingDraftRequest{
		RoomID:    b.RoomID,
		GuestName: b.GuestName,
		Phone:     b.Phone,
		Email:     b.Email,
		Notes:     b.Notes,
		CheckIn:   b.CheckIn,
		CheckOut:  b.CheckOut,
		Guests:    b.Guests,
	}
}

func (b *BookingBuilder) BuildStartResult(draftID uuid.UUID, expiresAt time.Time) *commands.StartBookingResult {
	return &commands.StartBookingResult{
		DraftID: draftID,
		Summary: &dombooking.Summary{
			RoomID:     b.RoomID,
			RoomName:   b.RoomName,
			GuestName:  b.GuestName,
			CheckIn:    b.CheckIn,
			CheckOut:   b.CheckOut,
			Guests:     b.Guests,
			Nights:     b.Nights,
			TotalPrice: dombooking.Money(b.Total),
		},
		ExpiresAt: expiresAt,
	}
}
