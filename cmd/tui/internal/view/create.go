package view

import (
	"fmt"
	"regexp"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"

	"github.com/inwords/expenses/internal/currency"
	"github.com/inwords/expenses/internal/event"
)

type createState int

const (
	createStateLoading createState = iota
	createStateForm
	createStateDone
)

var pinCodePattern = regexp.MustCompile(`^\d{4}$`)

type CreateModel struct {
	CommonModel
	eventService    *event.Service
	currencyService *currency.Service

	state      createState
	form       *huh.Form
	currencies []currency.Currency

	session *Session
	pinCode string
	err     error
}

func NewCreateModel(eventSvc *event.Service, currencySvc *currency.Service) CreateModel {
	return CreateModel{
		eventService:    eventSvc,
		currencyService: currencySvc,
	}
}

func (m CreateModel) Title() string { return "Create Event" }
func (m CreateModel) ShortHelp() string {
	if m.state == createStateDone {
		return "Enter: open event | Esc: back"
	}
	return "Navigate form | Esc: back"
}

func (m CreateModel) Init() tea.Cmd {
	return m.loadCurrenciesCmd()
}

func (m CreateModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.Type == tea.KeyEsc {
			return m, Back
		}

		if m.state == createStateDone && msg.Type == tea.KeyEnter {
			session := m.session
			return m, func() tea.Msg { return OpenedMsg{Session: session} }
		}

	case createCurrenciesMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}

		m.currencies = msg.currencies
		m.form = m.buildForm()
		m.state = createStateForm
		return m, m.form.Init()

	case createResultMsg:
		if msg.err != nil {
			m.err = msg.err
			m.form = m.buildForm()
			m.state = createStateForm
			return m, m.form.Init()
		}

		m.session = msg.session
		m.pinCode = msg.pinCode
		m.state = createStateDone
		return m, nil
	}

	if m.state != createStateForm {
		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State != huh.StateCompleted {
		return m, cmd
	}

	m.state = createStateLoading
	return m, m.createCmd()
}

func (m CreateModel) buildForm() *huh.Form {
	options := make([]huh.Option[string], 0, len(m.currencies))
	for _, c := range m.currencies {
		options = append(options, huh.NewOption(fmt.Sprintf("%s (%s)", c.Code, c.Name), c.ID.String()))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Key("name").
				Title("Event Name").
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("name cannot be empty")
					}
					return nil
				}),

			huh.NewSelect[string]().
				Key("currency_id").
				Title("Currency").
				Options(options...),

			huh.NewInput().
				Key("pin_code").
				Title("Pin Code (blank to generate)").
				Validate(func(s string) error {
					if s != "" && !pinCodePattern.MatchString(s) {
						return fmt.Errorf("pin code must be 4 digits")
					}
					return nil
				}),

			huh.NewInput().
				Key("persons").
				Title("Participants (comma-separated)").
				Placeholder("Alice, Bob").
				Validate(func(s string) error {
					if len(splitNames(s)) == 0 {
						return fmt.Errorf("at least one participant is required")
					}
					return nil
				}),
		),
	).WithWidth(50).WithShowHelp(false)
}

func (m CreateModel) View() string {
	switch m.state {
	case createStateLoading:
		if m.err != nil {
			return lipgloss.NewStyle().Padding(2).Render(fmt.Sprintf("Error: %v\n\n(Esc to back)", m.err))
		}
		return lipgloss.NewStyle().Padding(2).Render("Working...")

	case createStateDone:
		ev := m.session.Event.Event
		return lipgloss.NewStyle().Padding(2).Render(fmt.Sprintf(
			"Event created\n\nID:       %s\nName:     %s\nPin Code: %s\n\nShare the ID and pin code with the other participants.\n\n(Enter to open, Esc to back)",
			ev.ID, ev.Name, m.pinCode,
		))
	}

	content := fmt.Sprintf("Create Event\n\n%s", m.form.View())
	if m.err != nil {
		content += lipgloss.NewStyle().Foreground(lipgloss.Color("9")).
			Render(fmt.Sprintf("\n\nError: %v", m.err))
	}

	return lipgloss.NewStyle().Padding(2).Render(content + "\n\n(Esc to back)")
}

func splitNames(s string) []string {
	parts := strings.Split(s, ",")
	names := make([]string, 0, len(parts))

	for _, p := range parts {
		if name := strings.TrimSpace(p); name != "" {
			names = append(names, name)
		}
	}

	return names
}

type createCurrenciesMsg struct {
	currencies []currency.Currency
	err        error
}

func (m CreateModel) loadCurrenciesCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		currencies, err := m.currencyService.List(ctx)
		return createCurrenciesMsg{currencies: currencies, err: err}
	}
}

type createResultMsg struct {
	session *Session
	pinCode string
	err     error
}

func (m CreateModel) createCmd() tea.Cmd {
	params := event.CreateParams{
		Name:        strings.TrimSpace(m.form.GetString("name")),
		PinCode:     m.form.GetString("pin_code"),
		PersonNames: splitNames(m.form.GetString("persons")),
	}
	currencyID := m.form.GetString("currency_id")
	currencies := m.currencies

	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		id, err := uuid.Parse(currencyID)
		if err != nil {
			return createResultMsg{err: err}
		}
		params.CurrencyID = id

		details, pinCode, err := m.eventService.Create(ctx, params)
		if err != nil {
			return createResultMsg{err: err}
		}

		return createResultMsg{
			session: &Session{
				Event:      details,
				Access:     event.Access{PinCode: pinCode},
				Currencies: currencies,
			},
			pinCode: pinCode,
		}
	}
}
