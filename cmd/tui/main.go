package main

import (
	"fmt"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/joho/godotenv"

	"github.com/inwords/expenses/cmd/tui/internal/view"
	"github.com/inwords/expenses/internal/config"
	"github.com/inwords/expenses/internal/currency"
	currencyStore "github.com/inwords/expenses/internal/currency/store"
	"github.com/inwords/expenses/internal/database"
	"github.com/inwords/expenses/internal/event"
	eventStore "github.com/inwords/expenses/internal/event/store"
	"github.com/inwords/expenses/internal/expense"
	expenseStore "github.com/inwords/expenses/internal/expense/store"
)

type model struct {
	eventService    *event.Service
	currencyService *currency.Service
	expenseService  *expense.Service

	session *view.Session

	currentView View

	createView   view.CreateModel
	openView     view.OpenModel
	expensesView view.ExpensesModel
	addView      view.AddExpenseModel
	refundView   view.RefundModel
}

type View int

const (
	ViewMenu     View = 0
	ViewCreate   View = 1
	ViewOpen     View = 2
	ViewExpenses View = 3
	ViewAdd      View = 4
	ViewRefund   View = 5
)

func initialModel() model {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	db, err := database.New(cfg.ConnectionString())
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}

	eventSvc := event.NewService(eventStore.New(db), cfg.Share.TokenSecret, cfg.Share.TokenTTL)
	currencySvc := currency.NewService(currencyStore.New(db))
	expenseSvc := expense.NewService(expenseStore.New(db), eventSvc)

	return model{
		eventService:    eventSvc,
		currencyService: currencySvc,
		expenseService:  expenseSvc,
		currentView:     ViewMenu,
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.currentView == ViewMenu {
			switch msg.String() {
			case "ctrl+c", "q":
				return m, tea.Quit
			case "1":
				m.currentView = ViewCreate
				m.createView = view.NewCreateModel(m.eventService, m.currencyService)

				return m, m.createView.Init()
			case "2":
				m.currentView = ViewOpen
				m.openView = view.NewOpenModel(m.eventService, m.currencyService)

				return m, m.openView.Init()
			case "3":
				if m.session == nil {
					return m, nil
				}
				m.currentView = ViewExpenses
				m.expensesView = view.NewExpensesModel(m.expenseService, m.session)

				return m, m.expensesView.Init()
			case "4":
				if m.session == nil {
					return m, nil
				}
				m.currentView = ViewAdd
				m.addView = view.NewAddExpenseModel(m.expenseService, m.session)

				return m, m.addView.Init()
			case "5":
				if m.session == nil {
					return m, nil
				}
				m.currentView = ViewRefund
				m.refundView = view.NewRefundModel(m.expenseService, m.session)

				return m, m.refundView.Init()
			}
		}
	case view.OpenedMsg:
		m.session = msg.Session
		m.currentView = ViewMenu

		return m, nil
	case view.BackMsg:
		m.currentView = ViewMenu
		return m, nil
	}

	switch m.currentView {
	case ViewCreate:
		var newModel tea.Model
		newModel, cmd = m.createView.Update(msg)
		m.createView = newModel.(view.CreateModel)
	case ViewOpen:
		var newModel tea.Model
		newModel, cmd = m.openView.Update(msg)
		m.openView = newModel.(view.OpenModel)
	case ViewExpenses:
		var newModel tea.Model
		newModel, cmd = m.expensesView.Update(msg)
		m.expensesView = newModel.(view.ExpensesModel)
	case ViewAdd:
		var newModel tea.Model
		newModel, cmd = m.addView.Update(msg)
		m.addView = newModel.(view.AddExpenseModel)
	case ViewRefund:
		var newModel tea.Model
		newModel, cmd = m.refundView.Update(msg)
		m.refundView = newModel.(view.RefundModel)
	}

	return m, cmd
}

func (m model) View() string {
	switch m.currentView {
	case ViewMenu:
		opened := "No event opened"
		if m.session != nil {
			ev := m.session.Event.Event
			opened = fmt.Sprintf("Opened: %s (%s)", ev.Name, m.session.EventCurrencyCode())
		}

		return lipgloss.NewStyle().Padding(2).Render(
			"Expenses TUI\n\n" +
				opened + "\n\n" +
				"1. Create Event\n" +
				"2. Open Event\n" +
				"3. View Expenses\n" +
				"4. Add Expense\n" +
				"5. Record Refund\n\n" +
				"q. Quit",
		)
	case ViewCreate:
		return m.createView.View()
	case ViewOpen:
		return m.openView.View()
	case ViewExpenses:
		return m.expensesView.View()
	case ViewAdd:
		return m.addView.View()
	case ViewRefund:
		return m.refundView.View()
	}

	return "Unknown View"
}

func main() {
	p := tea.NewProgram(initialModel())
	if _, err := p.Run(); err != nil {
		slog.Error("failed to run TUI", "error", err)
		os.Exit(1)
	}
}
