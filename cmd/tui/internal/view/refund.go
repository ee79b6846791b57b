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

type RefundModel struct {
	CommonModel
	expenseService *expense.Service
	session        *Session

	form   *huh.Form
	saving bool
	saved  *expense.Expense
	err    error
}

func NewRefundModel(expenseSvc *expense.Service, session *Session) RefundModel {
	personOptions := make([]huh.Option[string], 0, len(session.Event.Persons))
	for _, p := range session.Event.Persons {
		personOptions = append(personOptions, huh.NewOption(p.Name, p.ID.String()))
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Key("payer_id").
				Title("Paid Back By").
				Options(personOptions...),

			huh.NewSelect[string]().
				Key("recipient_id").
				Title("Received By").
				Options(personOptions...),

			huh.NewInput().
				Key("amount").
				Title(fmt.Sprintf("Amount (%s)", session.EventCurrencyCode())).
				Placeholder("25.50").
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

			huh.NewInput().
				Key("description").
				Title("Description").
				Placeholder("Settling up"),
		),
	).WithWidth(50).WithShowHelp(false)

	return RefundModel{
		expenseService: expenseSvc,
		session:        session,
		form:           form,
	}
}

func (m RefundModel) Title() string     { return "Record Refund" }
func (m RefundModel) ShortHelp() string { return "Navigate form | Esc: back" }

func (m RefundModel) Init() tea.Cmd {
	return m.form.Init()
}

func (m RefundModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.Type == tea.KeyEsc {
			return m, Back
		}

		if m.saved != nil && msg.Type == tea.KeyEnter {
			return m, Back
		}

	case refundMsg:
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

func (m RefundModel) View() string {
	if m.saving {
		return lipgloss.NewStyle().Padding(2).Render("Saving refund...")
	}

	if m.saved != nil {
		return lipgloss.NewStyle().Padding(2).Render(fmt.Sprintf(
			"Refund recorded\n\n%s paid back %s to %s.\n\n(Enter or Esc to back)",
			m.session.PersonName(m.saved.PayerID),
			FormatAmount(m.saved.Total(), m.session.EventCurrencyCode()),
			m.session.PersonName(m.saved.Splits[0].PersonID),
		))
	}

	content := fmt.Sprintf("Record Refund\n\n%s", m.form.View())
	if m.err != nil {
		content += lipgloss.NewStyle().Foreground(lipgloss.Color("9")).
			Render(fmt.Sprintf("\n\nError: %v", m.err))
	}

	return lipgloss.NewStyle().Padding(2).Render(content + "\n\n(Esc to back)")
}

type refundMsg struct {
	expense *expense.Expense
	err     error
}

func (m RefundModel) recordCmd() tea.Cmd {
	payerID := m.form.GetString("payer_id")
	recipientID := m.form.GetString("recipient_id")
	amount := strings.TrimSpace(m.form.GetString("amount"))
	description := strings.TrimSpace(m.form.GetString("description"))
	session := m.session

	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		payer, err := uuid.Parse(payerID)
		if err != nil {
			return refundMsg{err: err}
		}

		recipient, err := uuid.Parse(recipientID)
		if err != nil {
			return refundMsg{err: err}
		}

		if payer == recipient {
			return refundMsg{err: fmt.Errorf("payer and recipient must differ")}
		}

		total, err := decimal.NewFromString(amount)
		if err != nil {
			return refundMsg{err: err}
		}

		exp, err := m.expenseService.RecordRefund(ctx, expense.RefundParams{
			EventID:     session.Event.Event.ID,
			PayerID:     payer,
			RecipientID: recipient,
			Amount:      total,
			Description: description,
			Access:      session.Access,
		})

		return refundMsg{expense: exp, err: err}
	}
}
