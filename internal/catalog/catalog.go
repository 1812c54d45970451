package catalog

import (
	"math"

	"hotel-booking-api/internal/domain/room"
	"hotel-booking-api/internal/pkg/errs"
)

// Filter narrows the catalog. The price range is inclusive; a zero MaxPrice
// means unbounded, and MinGuests == 0 means no guest constraint.
type Filter struct {
	MinPrice  int64
	MaxPrice  int64
	MinGuests int
}

// Catalog is the fixed set of bookable rooms, validated once at construction
// and never mutated afterwards.
type Catalog struct {
	rooms []*room.Room
	byID  map[string]*room.Room
}

func New(rooms []*room.Room) (*Catalog, error) {
	byID := make(map[string]*room.Room, len(rooms))
	for _, rm := range rooms {
		if _, dup := byID[rm.ID()]; dup {
			return nil, errs.Newf("duplicate room id %q in catalog", rm.ID())
		}
		byID[rm.ID()] = rm
	}
	return &Catalog{rooms: rooms, byID: byID}, nil
}

// Rooms lists every catalog entry in definition order.
func (c *Catalog) Rooms() []*room.Room {
	out := make([]*room.Room, len(c.rooms))
	copy(out, c.rooms)
	return out
}

// FindByID returns (nil, false) for unknown ids; absence is a user-facing
// "invalid selection", not a failure.
func (c *Catalog) FindByID(id string) (*room.Room, bool) {
	rm, ok := c.byID[id]
	return rm, ok
}

// FilterRooms returns a fresh slice of rooms matching the criteria.
func (c *Catalog) FilterRooms(f Filter) []*room.Room {
	maxPrice := f.MaxPrice
	if maxPrice == 0 {
		maxPrice = math.MaxInt64
	}

	matched := make([]*room.Room, 0, len(c.rooms))
	for _, rm := range c.rooms {
		if rm.PricePerNight() < f.MinPrice || rm.PricePerNight() > maxPrice {
			continue
		}
		if f.MinGuests > 0 && rm.MaxGuests() < f.MinGuests {
			continue
		}
		matched = append(matched, rm)
	}
	return matched
}
