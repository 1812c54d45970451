package response

import (
	"hotel-booking-api/internal/usecase/queries"

	"github.com/jinzhu/copier"
)

type RoomResponse struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	Description    string   `json:"description"`
	PricePerNight  int64    `json:"price_per_night"`
	PriceFormatted string   `json:"price_formatted"`
	MaxGuests      int      `json:"max_guests"`
	Features       []string `json:"features"`
	Images         []string `json:"images"`
}

func FromRoomView(view *queries.RoomView) (*RoomResponse, error) {
	var resp RoomResponse
	if err := copier.Copy(&resp, view); err != nil {
		return nil, err
	}
	return &resp, nil
}

func FromRoomViews(views []*queries.RoomView) ([]*RoomResponse, error) {
	resps := make([]*RoomResponse, len(views))
	for i, view := range views {
		resp, err := FromRoomView(view)
		if err != nil {
			return nil, err
		}
		resps[i] = resp
	}
	return resps, nil
}
