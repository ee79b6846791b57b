package expense

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SplitMode selects how an expense is divided among participants.
type SplitMode string

const (
	// SplitEqual divides the total evenly; every participant gets
	// round(total/N, 2). The rounding remainder is deliberately not
	// redistributed, matching what clients compute locally.
	SplitEqual SplitMode = "equal"

	// SplitManual uses the caller-supplied amount per participant.
	// The amounts are not validated against the declared total.
	SplitManual SplitMode = "manual"
)

// SplitSpec describes how to build the split entries of an expense.
// Equal mode uses Total and Participants; manual mode uses Entries.
type SplitSpec struct {
	Mode         SplitMode
	Total        decimal.Decimal
	Participants []uuid.UUID
	Entries      []SplitInput
}

// SplitInput is one manual-mode entry. ExchangedAmount set on any entry
// marks the submission as custom-rate, and then every entry must carry
// one.
type SplitInput struct {
	PersonID        uuid.UUID
	Amount          decimal.Decimal
	ExchangedAmount *decimal.Decimal
}

// HasCustomAmounts reports whether any entry carries a caller-supplied
// exchanged amount.
func (s SplitSpec) HasCustomAmounts() bool {
	for _, e := range s.Entries {
		if e.ExchangedAmount != nil {
			return true
		}
	}

	return false
}

type conversionKind int

const (
	convSame conversionKind = iota
	convCustom
	convAuto
)

// conversion is decided once per recording, before any entry is built.
type conversion struct {
	kind conversionKind
	rate decimal.Decimal // auto only: eventCurrencyRate / expenseCurrencyRate
}

// computeSplits builds the final split entries for the given spec and
// conversion decision.
func computeSplits(spec SplitSpec, conv conversion) ([]SplitEntry, error) {
	entries, err := baseEntries(spec)
	if err != nil {
		return nil, err
	}

	switch conv.kind {
	case convSame:
		for i := range entries {
			entries[i].ExchangedAmount = entries[i].Amount
		}
	case convCustom:
		for i, in := range spec.Entries {
			if in.ExchangedAmount == nil {
				return nil, ErrInconsistentExchangedAmount
			}

			entries[i].ExchangedAmount = *in.ExchangedAmount
		}
	case convAuto:
		for i := range entries {
			entries[i].ExchangedAmount = entries[i].Amount.Mul(conv.rate).Round(2)
		}
	}

	return entries, nil
}

func baseEntries(spec SplitSpec) ([]SplitEntry, error) {
	switch spec.Mode {
	case SplitEqual:
		if len(spec.Participants) == 0 {
			return nil, ErrInvalidSplit
		}

		perPerson := spec.Total.
			Div(decimal.NewFromInt(int64(len(spec.Participants)))).
			Round(2)

		entries := make([]SplitEntry, len(spec.Participants))
		for i, personID := range spec.Participants {
			entries[i] = SplitEntry{PersonID: personID, Amount: perPerson}
		}

		return entries, nil

	case SplitManual:
		if len(spec.Entries) == 0 {
			return nil, ErrInvalidSplit
		}

		entries := make([]SplitEntry, len(spec.Entries))
		for i, in := range spec.Entries {
			entries[i] = SplitEntry{PersonID: in.PersonID, Amount: in.Amount.Round(2)}
		}

		return entries, nil

	default:
		return nil, ErrInvalidSplit
	}
}
