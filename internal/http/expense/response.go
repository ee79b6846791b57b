package expense

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/inwords/expenses/internal/expense"
)

type splitEntryResponse struct {
	PersonID        uuid.UUID       `json:"person_id"`
	Amount          decimal.Decimal `json:"amount"`
	ExchangedAmount decimal.Decimal `json:"exchanged_amount"`
}

type expenseResponse struct {
	ID           uuid.UUID            `json:"id"`
	EventID      uuid.UUID            `json:"event_id"`
	PayerID      uuid.UUID            `json:"payer_id"`
	CurrencyID   uuid.UUID            `json:"currency_id"`
	Description  string               `json:"description"`
	Type         expense.Type         `json:"type"`
	IsCustomRate bool                 `json:"is_custom_rate"`
	CreatedAt    time.Time            `json:"created_at"`
	Splits       []splitEntryResponse `json:"splits"`
}

func toResponse(exp *expense.Expense) expenseResponse {
	splits := make([]splitEntryResponse, len(exp.Splits))
	for i, s := range exp.Splits {
		splits[i] = splitEntryResponse{
			PersonID:        s.PersonID,
			Amount:          s.Amount,
			ExchangedAmount: s.ExchangedAmount,
		}
	}

	return expenseResponse{
		ID:           exp.ID,
		EventID:      exp.EventID,
		PayerID:      exp.PayerID,
		CurrencyID:   exp.CurrencyID,
		Description:  exp.Description,
		Type:         exp.Type,
		IsCustomRate: exp.IsCustomRate,
		CreatedAt:    exp.CreatedAt,
		Splits:       splits,
	}
}

func toResponseList(expenses []*expense.Expense) []expenseResponse {
	resp := make([]expenseResponse, len(expenses))
	for i, exp := range expenses {
		resp[i] = toResponse(exp)
	}

	return resp
}
