package queries

import (
	"context"

	"hotel-booking-api/internal/catalog"
	"hotel-booking-api/internal/domain/booking"
	"hotel-booking-api/internal/domain/room"
	"hotel-booking-api/internal/pkg/errs"
)

type RoomView struct {
	ID             string        `json:"id"`
	Name           string        `json:"name"`
	Description    string        `json:"description"`
	PricePerNight  booking.Money `json:"price_per_night"`
	PriceFormatted string        `json:"price_formatted"`
	MaxGuests      int           `json:"max_guests"`
	Features       []string      `json:"features"`
	Images         []string      `json:"images"`
}

func fromRoom(rm *room.Room) *RoomView {
	return &RoomView{
		ID:             rm.ID(),
		Name:           rm.Name(),
		Description:    rm.Description(),
		PricePerNight:  booking.Money(rm.PricePerNight()),
		PriceFormatted: booking.Money(rm.PricePerNight()).Format(),
		MaxGuests:      rm.MaxGuests(),
		Features:       rm.Features(),
		Images:         rm.Images(),
	}
}

// RoomCatalog is the catalog query surface the read side consumes.
type RoomCatalog interface {
	Rooms() []*room.Room
	FindByID(id string) (*room.Room, bool)
	FilterRooms(f catalog.Filter) []*room.Room
}

type RoomQueries interface {
	List(ctx context.Context) ([]*RoomView, error)
	GetByID(ctx context.Context, id string) (*RoomView, error)
	Filter(ctx context.Context, f catalog.Filter) ([]*RoomView, error)
}

type roomQueriesImpl struct {
	cat RoomCatalog
}

func NewRoomQueries(cat RoomCatalog) RoomQueries {
	return &roomQueriesImpl{cat: cat}
}

func (q *roomQueriesImpl) List(_ context.Context) ([]*RoomView, error) {
	return toViews(q.cat.Rooms()), nil
}

func (q *roomQueriesImpl) GetByID(_ context.Context, id string) (*RoomView, error) {
	rm, ok := q.cat.FindByID(id)
	if !ok {
		return nil, errs.ErrRoomNotFound
	}
	return fromRoom(rm), nil
}

func (q *roomQueriesImpl) Filter(_ context.Context, f catalog.Filter) ([]*RoomView, error) {
	return toViews(q.cat.FilterRooms(f)), nil
}

func toViews(rooms []*room.Room) []*RoomView {
	views := make([]*RoomView, len(rooms))
	for i, rm := range rooms {
		views[i] = fromRoom(rm)
	}
	return views
}
