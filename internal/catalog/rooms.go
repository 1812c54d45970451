package catalog

import "hotel-booking-api/internal/domain/room"

type roomSpec struct {
	id            string
	name          string
	description   string
	pricePerNight int64
	maxGuests     int
	features      []string
	images        []string
}

// Prices are whole rupiah per night.
var defaultRooms = []roomSpec{
	{
		id:            "room-101",
		name:          "Single Room",
		description:   "Kamar nyaman untuk 1 orang, cocok untuk perjalanan singkat.",
		pricePerNight: 350000,
		maxGuests:     1,
		features:      []string{"Bed 1x", "Free Wi-Fi", "AC", "Shower"},
		images:        []string{"https://images.unsplash.com/photo-1611892440504-42a792e24d32?w=400&h=300&fit=crop"},
	},
	{
		id:            "room-102",
		name:          "Double Room",
		description:   "Kamar luas untuk dua orang dengan pemandangan kota.",
		pricePerNight: 550000,
		maxGuests:     2,
		features:      []string{"Bed 2x", "Free Breakfast", "TV", "Mini Fridge"},
		images:        []string{"https://images.unsplash.com/photo-1590490360182-c33d57733427?w=400&h=300&fit=crop"},
	},
	{
		id:            "room-201",
		name:          "Deluxe Room",
		description:   "Deluxe room dengan fasilitas lengkap dan balkon.",
		pricePerNight: 850000,
		maxGuests:     3,
		features:      []string{"Balkon", "King Bed", "Jacuzzi", "Room Service"},
		images:        []string{"https://images.unsplash.com/photo-1582719478250-c89cae4dc85b?w=400&h=300&fit=crop"},
	},
	{
		id:            "room-301",
		name:          "Suite",
		description:   "Suite mewah, cocok untuk keluarga atau acara khusus.",
		pricePerNight: 1500000,
		maxGuests:     4,
		features:      []string{"Living Area", "Kitchenette", "Private Check-in", "Butler Service"},
		images:        []string{"https://images.unsplash.com/photo-1631049307264-da0ec9d70304?w=400&h=300&fit=crop"},
	},
}

// NewDefault builds the hotel's standard four-room catalog.
func NewDefault() (*Catalog, error) {
	rooms := make([]*room.Room, 0, len(defaultRooms))
	for _, spec := range defaultRooms {
		rm, err := room.NewRoom(spec.id, spec.name, spec.description, spec.pricePerNight, spec.maxGuests, spec.features, spec.images)
		if err != nil {
			return nil, err
		}
		rooms = append(rooms, rm)
	}
	return New(rooms)
}
