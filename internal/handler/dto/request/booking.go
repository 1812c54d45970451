package request

import (
	"strings"

	"hotel-booking-api/internal/usecase/commands"
)

type CreateBookingDraftRequest struct {
	RoomID    string `json:"room_id" binding:"required"`
	GuestName string `json:"guest_name" binding:"required"`
	Phone     string `json:"phone" binding:"required"`
	Email     string `json:"email" binding:"required"`
	Notes     string `json:"notes"`
	CheckIn   string `json:"check_in" binding:"required"`
	CheckOut  string `json:"check_out" binding:"required"`
	// No binding constraint: guest count rules live in the booking workflow
	// so violations surface as field-specific validation errors.
	Guests int `json:"guests"`
}

func (r CreateBookingDraftRequest) ToCommand() commands.StartBookingRequest {
	return commands.StartBookingRequest{
		RoomID:    strings.TrimSpace(r.RoomID),
		GuestName: r.GuestName,
		Phone:     r.Phone,
		Email:     r.Email,
		Notes:     r.Notes,
		CheckIn:   r.CheckIn,
		CheckOut:  r.CheckOut,
		Guests:    r.Guests,
	}
}
