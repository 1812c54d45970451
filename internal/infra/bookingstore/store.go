// Package bookingstore persists the booking collection as one JSON blob
// under a single namespace key. Every operation is a full read-modify-write
// of the collection; there is no partial update and no index.
package bookingstore

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"

	"hotel-booking-api/internal/domain/booking"
	"hotel-booking-api/internal/infra"
	"hotel-booking-api/internal/infra/blob"
)

type Store struct {
	backend   blob.Backend
	namespace string
	logger    *slog.Logger

	// Serializes read-modify-write cycles within this process. Concurrent
	// writers in other processes still race last-writer-wins; that is a
	// documented limitation of the single-blob layout, not something the
	// store coordinates.
	mu sync.Mutex
}

func New(backend blob.Backend, namespace string, logger *slog.Logger) *Store {
	return &Store{backend: backend, namespace: namespace, logger: logger}
}

// ListAll returns the persisted collection. A missing blob and a corrupt
// blob both degrade to an empty collection; corruption is logged so the
// operator can investigate, but it is never surfaced as a failure.
func (s *Store) ListAll(ctx context.Context) ([]booking.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load(ctx)
}

// Append adds one record to the collection. On any failure the previously
// persisted collection is left untouched.
func (s *Store) Append(ctx context.Context, b booking.Booking) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	bookings, err := s.load(ctx)
	if err != nil {
		return err
	}
	return s.save(ctx, append(bookings, b))
}

// Remove filters out any record matching id and writes the collection back.
// Removing an id that does not exist is a successful no-op.
func (s *Store) Remove(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	bookings, err := s.load(ctx)
	if err != nil {
		return err
	}

	kept := bookings[:0]
	for _, b := range bookings {
		if b.ID != id {
			kept = append(kept, b)
		}
	}
	return s.save(ctx, kept)
}

func (s *Store) load(ctx context.Context) ([]booking.Booking, error) {
	data, err := s.backend.Load(ctx, s.namespace)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return []booking.Booking{}, nil
		}
		return nil, err
	}

	var bookings []booking.Booking
	if err := json.Unmarshal(data, &bookings); err != nil {
		// Logged under its kind and swallowed: a corrupt blob degrades to an
		// empty collection rather than taking reads down.
		_ = infra.WrapRepoErr(s.logger, infra.KindCorruptData, "booking collection is corrupt, treating as empty", err)
		return []booking.Booking{}, nil
	}
	if bookings == nil {
		bookings = []booking.Booking{}
	}
	return bookings, nil
}

func (s *Store) save(ctx context.Context, bookings []booking.Booking) error {
	data, err := json.Marshal(bookings)
	if err != nil {
		return infra.WrapRepoErr(s.logger, infra.KindSerialization, "failed to encode booking collection", err)
	}
	return s.backend.Store(ctx, s.namespace, data)
}
