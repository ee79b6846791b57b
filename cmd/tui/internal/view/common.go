package view

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"github.com/inwords/expenses/internal/currency"
	"github.com/inwords/expenses/internal/event"
)

// View is the interface that all TUI screens implement.
type View interface {
	tea.Model
	Title() string
	ShortHelp() string
}

// CommonModel is embedded by all views.
type CommonModel struct {
	Width  int
	Height int
}

type BackMsg struct{}

func Back() tea.Msg {
	return BackMsg{}
}

// Session is the event the user has opened, shared across screens.
type Session struct {
	Event      *event.Details
	Access     event.Access
	Currencies []currency.Currency
}

// OpenedMsg is emitted when an event has been opened or created.
type OpenedMsg struct {
	Session *Session
}

func (s *Session) PersonName(id uuid.UUID) string {
	for _, p := range s.Event.Persons {
		if p.ID == id {
			return p.Name
		}
	}

	return id.String()
}

func (s *Session) CurrencyCode(id uuid.UUID) string {
	for _, c := range s.Currencies {
		if c.ID == id {
			return c.Code
		}
	}

	return "?"
}

// EventCurrencyCode is the code of the event's accounting currency.
func (s *Session) EventCurrencyCode() string {
	return s.CurrencyCode(s.Event.Event.CurrencyID)
}
