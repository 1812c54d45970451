package room

import (
	"errors"
	"slices"
	"strings"
)

var (
	ErrEmptyRoomID       = errors.New("room id cannot be empty")
	ErrEmptyRoomName     = errors.New("room name cannot be empty")
	ErrNonPositivePrice  = errors.New("price per night must be positive")
	ErrNonPositiveGuests = errors.New("max guests must be at least 1")
)

// Room is a static catalog entry. Instances are immutable after construction;
// bookings denormalize the fields they need, so later catalog edits never
// rewrite history.
type Room struct {
	id            string
	name          string
	description   string
	pricePerNight int64
	maxGuests     int
	features      []string
	images        []string
}

func NewRoom(id, name, description string, pricePerNight int64, maxGuests int, features, images []string) (*Room, error) {
	if strings.TrimSpace(id) == "" {
		return nil, ErrEmptyRoomID
	}
	if strings.TrimSpace(name) == "" {
		return nil, ErrEmptyRoomName
	}
	if pricePerNight <= 0 {
		return nil, ErrNonPositivePrice
	}
	if maxGuests < 1 {
		return nil, ErrNonPositiveGuests
	}

	return &Room{
		id:            strings.TrimSpace(id),
		name:          strings.TrimSpace(name),
		description:   description,
		pricePerNight: pricePerNight,
		maxGuests:     maxGuests,
		features:      slices.Clone(features),
		images:        slices.Clone(images),
	}, nil
}

func (r *Room) CanAccommodate(guests int) bool {
	return guests >= 1 && guests <= r.maxGuests
}

func (r *Room) ID() string           { return r.id }
func (r *Room) Name() string         { return r.name }
func (r *Room) Description() string  { return r.description }
func (r *Room) PricePerNight() int64 { return r.pricePerNight }
func (r *Room) MaxGuests() int       { return r.maxGuests }

// Features returns a copy so callers cannot mutate catalog data.
func (r *Room) Features() []string { return slices.Clone(r.features) }
func (r *Room) Images() []string   { return slices.Clone(r.images) }

// PrimaryImage is the first image locator, empty when none are defined.
func (r *Room) PrimaryImage() string {
	if len(r.images) == 0 {
		return ""
	}
	return r.images[0]
}
