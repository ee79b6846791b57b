package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/inwords/expenses/internal/currency"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

func (s *Store) ListCurrencies(ctx context.Context) ([]currency.Currency, error) {
	query := `SELECT id, code, name FROM currencies ORDER BY code ASC`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing currencies: %w", err)
	}
	defer rows.Close()

	var currencies []currency.Currency

	for rows.Next() {
		var c currency.Currency
		if err := rows.Scan(&c.ID, &c.Code, &c.Name); err != nil {
			return nil, fmt.Errorf("scanning currency: %w", err)
		}

		currencies = append(currencies, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating currency rows: %w", err)
	}

	return currencies, nil
}

// GetRateSnapshot returns the snapshot for the exact date or
// currency.ErrRateNotFound. Rates are stored as a jsonb object mapping
// currency codes to decimal rates.
func (s *Store) GetRateSnapshot(ctx context.Context, date time.Time) (*currency.RateSnapshot, error) {
	query := `SELECT effective_date, rates FROM currency_rates WHERE effective_date = $1`

	var (
		effectiveDate time.Time
		raw           []byte
	)

	if err := s.db.QueryRowContext(ctx, query, date).Scan(&effectiveDate, &raw); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, currency.ErrRateNotFound
		}

		return nil, fmt.Errorf("getting rate snapshot: %w", err)
	}

	rates := make(map[string]decimal.Decimal)
	if err := json.Unmarshal(raw, &rates); err != nil {
		return nil, fmt.Errorf("decoding rate snapshot: %w", err)
	}

	return &currency.RateSnapshot{Date: effectiveDate.UTC(), Rates: rates}, nil
}
