package view

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"

	"github.com/inwords/expenses/internal/currency"
	"github.com/inwords/expenses/internal/event"
)

type OpenModel struct {
	CommonModel
	eventService    *event.Service
	currencyService *currency.Service

	form    *huh.Form
	loading bool
	err     error
}

func NewOpenModel(eventSvc *event.Service, currencySvc *currency.Service) OpenModel {
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Key("event_id").
				Title("Event ID").
				Validate(func(s string) error {
					if _, err := uuid.Parse(strings.TrimSpace(s)); err != nil {
						return fmt.Errorf("not a valid event ID")
					}
					return nil
				}),

			huh.NewInput().
				Key("pin_code").
				Title("Pin Code").
				EchoMode(huh.EchoModePassword),
		),
	).WithWidth(45).WithShowHelp(false)

	return OpenModel{
		eventService:    eventSvc,
		currencyService: currencySvc,
		form:            form,
	}
}

func (m OpenModel) Title() string     { return "Open Event" }
func (m OpenModel) ShortHelp() string { return "Navigate form | Esc: back" }

func (m OpenModel) Init() tea.Cmd {
	return m.form.Init()
}

func (m OpenModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.Type == tea.KeyEsc {
			return m, Back
		}

	case openResultMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}

		session := msg.session
		return m, func() tea.Msg { return OpenedMsg{Session: session} }
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State != huh.StateCompleted || m.loading {
		return m, cmd
	}

	m.loading = true
	return m, m.openCmd()
}

func (m OpenModel) View() string {
	if m.loading {
		return lipgloss.NewStyle().Padding(2).Render("Opening event...")
	}

	content := fmt.Sprintf("Open Event\n\n%s", m.form.View())
	if m.err != nil {
		content += lipgloss.NewStyle().Foreground(lipgloss.Color("9")).
			Render(fmt.Sprintf("\n\nError: %v", m.err))
	}

	return lipgloss.NewStyle().Padding(2).Render(content + "\n\n(Esc to back)")
}

type openResultMsg struct {
	session *Session
	err     error
}

func (m OpenModel) openCmd() tea.Cmd {
	id := strings.TrimSpace(m.form.GetString("event_id"))
	access := event.Access{PinCode: strings.TrimSpace(m.form.GetString("pin_code"))}

	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		eventID, err := uuid.Parse(id)
		if err != nil {
			return openResultMsg{err: err}
		}

		details, err := m.eventService.Get(ctx, eventID, access)
		if err != nil {
			return openResultMsg{err: err}
		}

		currencies, err := m.currencyService.List(ctx)
		if err != nil {
			return openResultMsg{err: err}
		}

		return openResultMsg{session: &Session{
			Event:      details,
			Access:     access,
			Currencies: currencies,
		}}
	}
}
