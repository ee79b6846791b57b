package view

import (
	"fmt"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/inwords/expenses/internal/expense"
)

type ExpensesModel struct {
	CommonModel
	expenseService *expense.Service
	session        *Session

	table    table.Model
	expenses []*expense.Expense

	loading bool
	err     error
}

func NewExpensesModel(expenseSvc *expense.Service, session *Session) ExpensesModel {
	columns := []table.Column{
		{Title: "Date", Width: 12},
		{Title: "Type", Width: 8},
		{Title: "Description", Width: 30},
		{Title: "Payer", Width: 15},
		{Title: "Amount", Width: 14},
		{Title: fmt.Sprintf("In %s", session.EventCurrencyCode()), Width: 14},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(15),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(false)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return ExpensesModel{
		expenseService: expenseSvc,
		session:        session,
		table:          t,
		loading:        true,
	}
}

func (m ExpensesModel) Title() string     { return "Expenses" }
func (m ExpensesModel) ShortHelp() string { return "Esc: back | r: refresh" }

func (m ExpensesModel) Init() tea.Cmd {
	return m.loadExpensesCmd()
}

func (m ExpensesModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case loadExpensesMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}

		m.expenses = msg.expenses
		m.refreshTable()
		return m, nil

	case tea.WindowSizeMsg:
		m.table.SetHeight(msg.Height - 10)
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return m, Back
		case "r":
			m.loading = true
			return m, m.loadExpensesCmd()
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m ExpensesModel) View() string {
	if m.loading {
		return lipgloss.NewStyle().Padding(2).Render("Loading expenses...")
	}

	if m.err != nil {
		return lipgloss.NewStyle().Padding(2).Render(fmt.Sprintf("Error: %v", m.err))
	}

	header := fmt.Sprintf("%s — %d expenses", m.session.Event.Event.Name, len(m.expenses))

	tableView := lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		Render(m.table.View())

	return lipgloss.NewStyle().Padding(1).Render(
		lipgloss.JoinVertical(lipgloss.Left,
			lipgloss.NewStyle().PaddingBottom(1).Render(header),
			tableView,
		),
	)
}

func (m *ExpensesModel) refreshTable() {
	rows := make([]table.Row, 0, len(m.expenses))
	for _, exp := range m.expenses {
		rows = append(rows, table.Row{
			FormatDate(exp.CreatedAt),
			string(exp.Type),
			exp.Description,
			m.session.PersonName(exp.PayerID),
			FormatAmount(exp.Total(), m.session.CurrencyCode(exp.CurrencyID)),
			FormatAmount(exp.ExchangedTotal(), m.session.EventCurrencyCode()),
		})
	}
	m.table.SetRows(rows)
}

type loadExpensesMsg struct {
	expenses []*expense.Expense
	err      error
}

func (m ExpensesModel) loadExpensesCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		expenses, err := m.expenseService.ListByEvent(ctx, m.session.Event.Event.ID, m.session.Access)
		return loadExpensesMsg{expenses: expenses, err: err}
	}
}
