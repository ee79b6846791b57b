package event

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrNotFound       = errors.New("event not found")
	ErrDeleted        = errors.New("event is deleted")
	ErrInvalidPinCode = errors.New("invalid pin code")
	ErrInvalidToken   = errors.New("invalid share token")
	ErrTokenExpired   = errors.New("share token expired")

	// ErrBusy is returned when the event row is locked by a concurrent
	// write. The call fails fast instead of queuing; callers retry.
	ErrBusy = errors.New("event is busy, retry")
)

// Event is a shared spending context grouping participants and expenses.
type Event struct {
	ID          uuid.UUID
	Name        string
	PinCodeHash string
	CurrencyID  uuid.UUID
	CreatedAt   time.Time
	DeletedAt   *time.Time
}

// Person is a participant of an event.
type Person struct {
	ID        uuid.UUID
	EventID   uuid.UUID
	Name      string
	CreatedAt time.Time
}

// Details bundles an event with its participants.
type Details struct {
	Event   *Event
	Persons []*Person
}

// Access carries the credential presented with a request: either the
// event's pin code or a share token. The token wins when both are set.
type Access struct {
	PinCode    string
	ShareToken string
}
