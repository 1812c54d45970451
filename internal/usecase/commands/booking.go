package commands

import (
	"context"
	"sync"
	"time"

	"hotel-booking-api/internal/domain/booking"
	"hotel-booking-api/internal/domain/room"
	"hotel-booking-api/internal/pkg/clock"
	"hotel-booking-api/internal/pkg/errs"
	"hotel-booking-api/internal/pkg/idgen"
	"hotel-booking-api/internal/usecase/queries"

	"github.com/google/uuid"
)

// DraftTTL bounds how long an unconfirmed draft survives in the registry.
// A visitor who walks away from the confirmation dialog should not pin
// memory forever.
const DraftTTL = 30 * time.Minute

type StartBookingRequest struct {
	RoomID    string
	GuestName string
	Phone     string
	Email     string
	Notes     string
	CheckIn   string
	CheckOut  string
	Guests    int
}

type StartBookingResult struct {
	DraftID   uuid.UUID
	Summary   *booking.Summary
	ExpiresAt time.Time
}

// RoomCatalog is the slice of the catalog the write side needs.
type RoomCatalog interface {
	FindByID(id string) (*room.Room, bool)
}

// BookingStore persists the booking collection. Append must leave prior
// state unchanged when it fails, which is what keeps ConfirmBooking
// retryable.
type BookingStore interface {
	ListAll(ctx context.Context) ([]booking.Booking, error)
	Append(ctx context.Context, b booking.Booking) error
	Remove(ctx context.Context, id string) error
}

type BookingCommands interface {
	// StartBooking validates the input against the selected room and parks
	// the workflow in pending confirmation. Nothing is persisted yet.
	StartBooking(ctx context.Context, req StartBookingRequest) (*StartBookingResult, error)
	// ConfirmBooking persists the draft. On a storage failure the draft is
	// kept so the caller can retry.
	ConfirmBooking(ctx context.Context, draftID uuid.UUID) (*queries.BookingView, error)
	// CancelPending aborts a draft. No storage writes happen.
	CancelPending(ctx context.Context, draftID uuid.UUID) error
	// DeleteBooking removes a persisted booking by id.
	DeleteBooking(ctx context.Context, bookingID string) error
}

type draft struct {
	workflow  *booking.Workflow
	createdAt time.Time
}

type bookingUseCaseImpl struct {
	cat   RoomCatalog
	store BookingStore
	clock clock.Clock
	ids   idgen.Generator

	mu     sync.Mutex
	drafts map[uuid.UUID]*draft
}

func NewBookingCommands(cat RoomCatalog, store BookingStore, clk clock.Clock, ids idgen.Generator) BookingCommands {
	return &bookingUseCaseImpl{
		cat:    cat,
		store:  store,
		clock:  clk,
		ids:    ids,
		drafts: make(map[uuid.UUID]*draft),
	}
}

func (uc *bookingUseCaseImpl) StartBooking(_ context.Context, req StartBookingRequest) (*StartBookingResult, error) {
	rm, ok := uc.cat.FindByID(req.RoomID)
	if !ok {
		return nil, errs.ErrRoomNotFound
	}

	w := booking.NewWorkflow(rm)
	summary, err := w.Submit(booking.GuestInput{
		GuestName: req.GuestName,
		Phone:     req.Phone,
		Email:     req.Email,
		Notes:     req.Notes,
		CheckIn:   req.CheckIn,
		CheckOut:  req.CheckOut,
		Guests:    req.Guests,
	})
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	now := uc.clock.Now()
	draftID := uuid.New()

	uc.mu.Lock()
	uc.pruneExpiredLocked(now)
	uc.drafts[draftID] = &draft{workflow: w, createdAt: now}
	uc.mu.Unlock()

	return &StartBookingResult{
		DraftID:   draftID,
		Summary:   summary,
		ExpiresAt: now.Add(DraftTTL),
	}, nil
}

func (uc *bookingUseCaseImpl) ConfirmBooking(ctx context.Context, draftID uuid.UUID) (*queries.BookingView, error) {
	now := uc.clock.Now()

	// Removing the draft up front makes a concurrent confirm of the same
	// draft miss, so a single draft can never persist twice.
	d, err := uc.takeDraft(draftID, now)
	if err != nil {
		return nil, err
	}

	record, err := d.workflow.Confirm(uc.ids.NewID(now), now)
	if err != nil {
		uc.putDraft(draftID, d)
		return nil, err
	}

	if err := uc.store.Append(ctx, *record); err != nil {
		// Re-register the draft; the visitor can confirm again.
		uc.putDraft(draftID, d)
		return nil, errs.Mark(err, errs.ErrStorageFailure)
	}

	if err := d.workflow.MarkPersisted(); err != nil {
		return nil, err
	}

	return queries.FromBooking(*record), nil
}

func (uc *bookingUseCaseImpl) CancelPending(_ context.Context, draftID uuid.UUID) error {
	now := uc.clock.Now()

	d, err := uc.takeDraft(draftID, now)
	if err != nil {
		return err
	}
	if err := d.workflow.Abort(); err != nil {
		uc.putDraft(draftID, d)
		return err
	}
	return nil
}

func (uc *bookingUseCaseImpl) DeleteBooking(ctx context.Context, bookingID string) error {
	bookings, err := uc.store.ListAll(ctx)
	if err != nil {
		return errs.Mark(err, errs.ErrStorageFailure)
	}

	found := false
	for _, b := range bookings {
		if b.ID == bookingID {
			found = true
			break
		}
	}
	if !found {
		return errs.ErrBookingNotFound
	}

	if err := uc.store.Remove(ctx, bookingID); err != nil {
		return errs.Mark(err, errs.ErrStorageFailure)
	}
	return nil
}

// takeDraft removes the draft from the registry, granting the caller
// exclusive ownership of it and its workflow. Callers put it back on
// failure so the draft stays confirmable.
func (uc *bookingUseCaseImpl) takeDraft(draftID uuid.UUID, now time.Time) (*draft, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	d, ok := uc.drafts[draftID]
	if !ok {
		return nil, errs.ErrDraftNotFound
	}
	delete(uc.drafts, draftID)
	if now.Sub(d.createdAt) > DraftTTL {
		return nil, errs.ErrDraftExpired
	}
	return d, nil
}

func (uc *bookingUseCaseImpl) putDraft(draftID uuid.UUID, d *draft) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	uc.drafts[draftID] = d
}

func (uc *bookingUseCaseImpl) pruneExpiredLocked(now time.Time) {
	for id, d := range uc.drafts {
		if now.Sub(d.createdAt) > DraftTTL {
			delete(uc.drafts, id)
		}
	}
}
