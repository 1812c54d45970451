package booking

import (
	"errors"
	"strings"
	"time"

	"hotel-booking-api/internal/domain/room"
)

var (
	ErrGuestNameRequired = errors.New("guest name is required")
	ErrPhoneRequired     = errors.New("phone is required")
	ErrEmailRequired     = errors.New("email is required")
	ErrCheckInRequired   = errors.New("check-in date is required")
	ErrCheckOutRequired  = errors.New("check-out date is required")
	ErrInvalidCheckIn    = errors.New("check-in date is invalid")
	ErrInvalidCheckOut   = errors.New("check-out date is invalid")
	ErrTooFewGuests      = errors.New("at least one guest is required")
	ErrTooManyGuests     = errors.New("guest count exceeds room capacity")
	ErrInvalidTransition = errors.New("invalid workflow transition")
)

// GuestInput is the raw form data a visitor submits. Dates arrive as
// calendar-date strings; all text fields are trimmed before validation.
type GuestInput struct {
	GuestName string
	Phone     string
	Email     string
	Notes     string
	CheckIn   string
	CheckOut  string
	Guests    int
}

// Summary is what gets presented for explicit confirmation before anything
// is persisted.
type Summary struct {
	RoomID     string
	RoomName   string
	GuestName  string
	CheckIn    string
	CheckOut   string
	Guests     int
	Nights     int
	TotalPrice Money
}

// Workflow drives a single booking attempt through
// AwaitingInput -> Validated -> PendingConfirmation -> Persisted, with
// Aborted reachable from every non-terminal state. It performs no I/O; the
// caller owns persistence and only advances the workflow once the store
// write succeeded, which keeps a failed append retryable.
type Workflow struct {
	state State
	room  *room.Room
	input GuestInput
	stay  Stay
}

func NewWorkflow(rm *room.Room) *Workflow {
	return &Workflow{state: StateAwaitingInput, room: rm}
}

func (w *Workflow) State() State     { return w.state }
func (w *Workflow) Room() *room.Room { return w.room }

// Submit validates the input against the selected room. On success the
// workflow passes through Validated into PendingConfirmation and returns the
// priced summary. Each failing rule yields its own sentinel error and leaves
// the workflow in AwaitingInput so the caller can prompt the exact field.
func (w *Workflow) Submit(in GuestInput) (*Summary, error) {
	if w.state != StateAwaitingInput {
		return nil, ErrInvalidTransition
	}

	in.GuestName = strings.TrimSpace(in.GuestName)
	in.Phone = strings.TrimSpace(in.Phone)
	in.Email = strings.TrimSpace(in.Email)
	in.Notes = strings.TrimSpace(in.Notes)
	in.CheckIn = strings.TrimSpace(in.CheckIn)
	in.CheckOut = strings.TrimSpace(in.CheckOut)

	stay, err := validateInput(w.room, in)
	if err != nil {
		return nil, err
	}
	w.state = StateValidated

	w.input = in
	w.stay = stay
	w.state = StatePendingConfirmation

	return w.summary(), nil
}

// Reopen returns a pending workflow to AwaitingInput without side effects,
// so the visitor can edit the form after seeing the summary.
func (w *Workflow) Reopen() error {
	if w.state != StatePendingConfirmation {
		return ErrInvalidTransition
	}
	w.state = StateAwaitingInput
	return nil
}

// Confirm builds the booking record with its generated id and timestamp. The
// workflow intentionally stays in PendingConfirmation: call MarkPersisted
// only after the store append succeeded.
func (w *Workflow) Confirm(id string, bookedAt time.Time) (*Booking, error) {
	if w.state != StatePendingConfirmation {
		return nil, ErrInvalidTransition
	}

	return &Booking{
		ID:         id,
		RoomID:     w.room.ID(),
		RoomName:   w.room.Name(),
		GuestName:  w.input.GuestName,
		Phone:      w.input.Phone,
		Email:      w.input.Email,
		Notes:      w.input.Notes,
		CheckIn:    w.input.CheckIn,
		CheckOut:   w.input.CheckOut,
		Guests:     w.input.Guests,
		Nights:     w.stay.Nights(),
		TotalPrice: Money(int64(w.stay.Nights()) * w.room.PricePerNight()),
		BookedAt:   bookedAt,
	}, nil
}

func (w *Workflow) MarkPersisted() error {
	if w.state != StatePendingConfirmation {
		return ErrInvalidTransition
	}
	w.state = StatePersisted
	return nil
}

// Abort is the explicit dismiss action. No storage writes ever happen here.
func (w *Workflow) Abort() error {
	if w.state.IsTerminal() {
		return ErrInvalidTransition
	}
	w.state = StateAborted
	return nil
}

func (w *Workflow) summary() *Summary {
	return &Summary{
		RoomID:     w.room.ID(),
		RoomName:   w.room.Name(),
		GuestName:  w.input.GuestName,
		CheckIn:    w.input.CheckIn,
		CheckOut:   w.input.CheckOut,
		Guests:     w.input.Guests,
		Nights:     w.stay.Nights(),
		TotalPrice: Money(int64(w.stay.Nights()) * w.room.PricePerNight()),
	}
}

func validateInput(rm *room.Room, in GuestInput) (Stay, error) {
	if in.GuestName == "" {
		return Stay{}, ErrGuestNameRequired
	}
	if in.Phone == "" {
		return Stay{}, ErrPhoneRequired
	}
	if in.Email == "" {
		return Stay{}, ErrEmailRequired
	}
	if in.CheckIn == "" {
		return Stay{}, ErrCheckInRequired
	}
	if in.CheckOut == "" {
		return Stay{}, ErrCheckOutRequired
	}

	checkIn, err := time.Parse(DateFormat, in.CheckIn)
	if err != nil {
		return Stay{}, ErrInvalidCheckIn
	}
	checkOut, err := time.Parse(DateFormat, in.CheckOut)
	if err != nil {
		return Stay{}, ErrInvalidCheckOut
	}

	stay, err := NewStay(checkIn, checkOut)
	if err != nil {
		return Stay{}, err
	}

	if in.Guests < 1 {
		return Stay{}, ErrTooFewGuests
	}
	if !rm.CanAccommodate(in.Guests) {
		return Stay{}, ErrTooManyGuests
	}

	return stay, nil
}
