package currency

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrNotFound     = errors.New("currency not found")
	ErrRateNotFound = errors.New("currency rate not found")
)

// Currency is a currency supported by the system.
type Currency struct {
	ID   uuid.UUID
	Code string
	Name string
}

// RateSnapshot is the exchange-rate table for one calendar day (UTC).
// Rates map currency codes to their rate relative to the base currency.
type RateSnapshot struct {
	Date  time.Time
	Rates map[string]decimal.Decimal
}

// Rate returns the rate for code, or ErrRateNotFound if the snapshot
// does not carry it.
func (s *RateSnapshot) Rate(code string) (decimal.Decimal, error) {
	rate, ok := s.Rates[code]
	if !ok {
		return decimal.Decimal{}, ErrRateNotFound
	}

	return rate, nil
}

// DayUTC strips the time of day, normalizing to midnight UTC.
func DayUTC(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
