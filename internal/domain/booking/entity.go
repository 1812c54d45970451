package booking

import "time"

// Booking is a confirmed reservation record. Room name and price are
// denormalized at creation time, so a booking stays intact even if its room
// later disappears from the catalog. The struct doubles as the persisted
// record: the whole collection is serialized as JSON under one storage key.
type Booking struct {
	ID         string    `json:"id"`
	RoomID     string    `json:"roomId"`
	RoomName   string    `json:"roomName"`
	GuestName  string    `json:"guestName"`
	Phone      string    `json:"phone"`
	Email      string    `json:"email"`
	Notes      string    `json:"notes,omitempty"`
	CheckIn    string    `json:"checkIn"`  // DateFormat
	CheckOut   string    `json:"checkOut"` // DateFormat
	Guests     int       `json:"guests"`
	Nights     int       `json:"nights"`
	TotalPrice Money     `json:"totalPrice"`
	BookedAt   time.Time `json:"bookedAt"`
}
