package booking

type State string

const (
	StateAwaitingInput       State = "awaiting_input"
	StateValidated           State = "validated"
	StatePendingConfirmation State = "pending_confirmation"
	StatePersisted           State = "persisted"
	StateAborted             State = "aborted"
)

func (s State) String() string {
	return string(s)
}

func (s State) IsTerminal() bool {
	return s == StatePersisted || s == StateAborted
}
