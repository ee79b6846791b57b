package expense

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrInvalidSplit                = errors.New("invalid split")
	ErrInconsistentExchangedAmount = errors.New("inconsistent exchanged amount")
)

// Type distinguishes regular expenses from single-party refunds.
type Type string

const (
	TypeExpense Type = "expense"
	TypeRefund  Type = "refund"
)

// Expense is a monetary transaction within an event. Splits always sum
// to the nominal amount within rounding tolerance; exchanged amounts
// are in the event's base currency.
type Expense struct {
	ID           uuid.UUID
	EventID      uuid.UUID
	PayerID      uuid.UUID
	CurrencyID   uuid.UUID
	Description  string
	Type         Type
	IsCustomRate bool
	CreatedAt    time.Time
	Splits       []SplitEntry
}

// SplitEntry is one participant's share: the original amount in the
// expense currency and the exchanged amount in the event currency.
// The two are equal when the currencies match.
type SplitEntry struct {
	PersonID        uuid.UUID
	Amount          decimal.Decimal
	ExchangedAmount decimal.Decimal
}

// Total sums the original amounts of all split entries.
func (e *Expense) Total() decimal.Decimal {
	var total decimal.Decimal
	for _, s := range e.Splits {
		total = total.Add(s.Amount)
	}

	return total
}

// ExchangedTotal sums the exchanged amounts of all split entries.
func (e *Expense) ExchangedTotal() decimal.Decimal {
	var total decimal.Decimal
	for _, s := range e.Splits {
		total = total.Add(s.ExchangedAmount)
	}

	return total
}
