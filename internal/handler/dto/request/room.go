package request

import "hotel-booking-api/internal/catalog"

type RoomFilterQuery struct {
	MinPrice  int64 `form:"min_price" binding:"omitempty,min=0"`
	MaxPrice  int64 `form:"max_price" binding:"omitempty,min=0"`
	MinGuests int   `form:"min_guests" binding:"omitempty,min=0"`
}

func (q RoomFilterQuery) IsZero() bool {
	return q.MinPrice == 0 && q.MaxPrice == 0 && q.MinGuests == 0
}

func (q RoomFilterQuery) ToFilter() catalog.Filter {
	return catalog.Filter{
		MinPrice:  q.MinPrice,
		MaxPrice:  q.MaxPrice,
		MinGuests: q.MinGuests,
	}
}
