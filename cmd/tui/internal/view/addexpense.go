package view

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/inwords/expenses/internal/expense"
)

type AddExpenseModel struct {
	CommonModel
	expenseService *expense.Service
	session        *Session

	form    *huh.Form
	saving  bool
	saved   *expense.Expense
	err     error
}

func NewAddExpenseModel(expenseSvc *expense.Service, session *Session) AddExpenseModel {
	personOptions := make([]huh.Option[string], 0, len(session.Event.Persons))
	for _, p := range session.Event.Persons {
		personOptions = append(personOptions, huh.NewOption(p.Name, p.ID.String()))
	}

	currencyOptions := make([]huh.Option[string], 0, len(session.Currencies))
	for _, c := range session.Currencies {
		currencyOptions = append(currencyOptions, huh.NewOption(c.Code, c.ID.String()))
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Key("description").
				Title("Description").
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("description cannot be empty")
					}
					return nil
				}),

			huh.NewSelect[string]().
				Key("payer_id").
				Title("Paid By").
				Options(personOptions...),

			huh.NewSelect[string]().
				Key("currency_id").
				Title("Currency").
				Options(currencyOptions...),

			huh.NewInput().
				Key("amount").
				Title("Amount").
				Placeholder("100.00").
				Validate(func(s string) error {
					d, err := decimal.NewFromString(strings.TrimSpace(s))
					if err != nil {
						return fmt.Errorf("not a valid amount")
					}
					if !d.IsPositive() {
						return fmt.Errorf("amount must be positive")
					}
					return nil
				}),

			huh.NewMultiSelect[string]().
				Key("participants").
				Title("Split Between").
				Options(personOptions...).
				Validate(func(selected []string) error {
					if len(selected) == 0 {
						return fmt.Errorf("pick at least one participant")
					}
					return nil
				}),
		),
	).WithWidth(50).WithShowHelp(false)

	return AddExpenseModel{
		expenseService: expenseSvc,
		session:        session,
		form:           form,
	}
}

func (m AddExpenseModel) Title() string     { return "Add Expense" }
func (m AddExpenseModel) ShortHelp() string { return "Navigate form | Esc: back" }

func (m AddExpenseModel) Init() tea.Cmd {
	return m.form.Init()
}

func (m AddExpenseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.Type == tea.KeyEsc {
			return m, Back
		}

		if m.saved != nil && msg.Type == tea.KeyEnter {
			return m, Back
		}

	case addExpenseMsg:
		m.saving = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}

		m.saved = msg.expense
		return m, nil
	}

	if m.saving || m.saved != nil {
		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State != huh.StateCompleted {
		return m, cmd
	}

	m.saving = true
	return m, m.recordCmd()
}

func (m AddExpenseModel) View() string {
	if m.saving {
		return lipgloss.NewStyle().Padding(2).Render("Saving expense...")
	}

	if m.saved != nil {
		return lipgloss.NewStyle().Padding(2).Render(fmt.Sprintf(
			"Expense saved\n\n%s — %s, split between %d participants.\n\n(Enter or Esc to back)",
			m.saved.Description,
			FormatAmount(m.saved.Total(), m.session.CurrencyCode(m.saved.CurrencyID)),
			len(m.saved.Splits),
		))
	}

	content := fmt.Sprintf("Add Expense\n\n%s", m.form.View())
	if m.err != nil {
		content += lipgloss.NewStyle().Foreground(lipgloss.Color("9")).
			Render(fmt.Sprintf("\n\nError: %v", m.err))
	}

	return lipgloss.NewStyle().Padding(2).Render(content + "\n\n(Esc to back)")
}

type addExpenseMsg struct {
	expense *expense.Expense
	err     error
}

func (m AddExpenseModel) recordCmd() tea.Cmd {
	description := strings.TrimSpace(m.form.GetString("description"))
	payerID := m.form.GetString("payer_id")
	currencyID := m.form.GetString("currency_id")
	amount := strings.TrimSpace(m.form.GetString("amount"))
	selected, _ := m.form.Get("participants").([]string)
	session := m.session

	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		payer, err := uuid.Parse(payerID)
		if err != nil {
			return addExpenseMsg{err: err}
		}

		curr, err := uuid.Parse(currencyID)
		if err != nil {
			return addExpenseMsg{err: err}
		}

		total, err := decimal.NewFromString(amount)
		if err != nil {
			return addExpenseMsg{err: err}
		}

		participants := make([]uuid.UUID, 0, len(selected))
		for _, s := range selected {
			id, err := uuid.Parse(s)
			if err != nil {
				return addExpenseMsg{err: err}
			}
			participants = append(participants, id)
		}

		exp, err := m.expenseService.Record(ctx, expense.RecordParams{
			EventID:     session.Event.Event.ID,
			PayerID:     payer,
			CurrencyID:  curr,
			Description: description,
			Access:      session.Access,
			Split: expense.SplitSpec{
				Mode:         expense.SplitEqual,
				Total:        total,
				Participants: participants,
			},
		})

		return addExpenseMsg{expense: exp, err: err}
	}
}
