package response

import (
	"time"

	"hotel-booking-api/internal/domain/booking"
	"hotel-booking-api/internal/usecase/commands"
	"hotel-booking-api/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type BookingResponse struct {
	ID                  string    `json:"id"`
	RoomID              string    `json:"room_id"`
	RoomName            string    `json:"room_name"`
	GuestName           string    `json:"guest_name"`
	Phone               string    `json:"phone"`
	Email               string    `json:"email"`
	Notes               string    `json:"notes,omitempty"`
	CheckIn             string    `json:"check_in"`
	CheckOut            string    `json:"check_out"`
	Guests              int       `json:"guests"`
	Nights              int       `json:"nights"`
	TotalPrice          int64     `json:"total_price"`
	TotalPriceFormatted string    `json:"total_price_formatted"`
	BookedAt            time.Time `json:"booked_at"`
}

type BookingSummaryResponse struct {
	RoomID              string `json:"room_id"`
	RoomName            string `json:"room_name"`
	GuestName           string `json:"guest_name"`
	CheckIn             string `json:"check_in"`
	CheckOut            string `json:"check_out"`
	Guests              int    `json:"guests"`
	Nights              int    `json:"nights"`
	TotalPrice          int64  `json:"total_price"`
	TotalPriceFormatted string `json:"total_price_formatted"`
}

type BookingDraftResponse struct {
	DraftID   uuid.UUID              `json:"draft_id"`
	Summary   BookingSummaryResponse `json:"summary"`
	ExpiresAt time.Time              `json:"expires_at"`
}

type WhatsAppHandoffResponse struct {
	Message string `json:"message"`
	Link    string `json:"link"`
}

func FromBookingView(view *queries.BookingView) (*BookingResponse, error) {
	var resp BookingResponse
	if err := copier.Copy(&resp, view); err != nil {
		return nil, err
	}
	return &resp, nil
}

func FromBookingViews(views []*queries.BookingView) ([]*BookingResponse, error) {
	resps := make([]*BookingResponse, len(views))
	for i, view := range views {
		resp, err := FromBookingView(view)
		if err != nil {
			return nil, err
		}
		resps[i] = resp
	}
	return resps, nil
}

func FromStartBookingResult(result *commands.StartBookingResult) *BookingDraftResponse {
	return &BookingDraftResponse{
		DraftID:   result.DraftID,
		Summary:   fromSummary(result.Summary),
		ExpiresAt: result.ExpiresAt,
	}
}

func fromSummary(s *booking.Summary) BookingSummaryResponse {
	return BookingSummaryResponse{
		RoomID:              s.RoomID,
		RoomName:            s.RoomName,
		GuestName:           s.GuestName,
		CheckIn:             s.CheckIn,
		CheckOut:            s.CheckOut,
		Guests:              s.Guests,
		Nights:              s.Nights,
		TotalPrice:          int64(s.TotalPrice),
		TotalPriceFormatted: s.TotalPrice.Format(),
	}
}
