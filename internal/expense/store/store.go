package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"

	"github.com/inwords/expenses/internal/currency"
	"github.com/inwords/expenses/internal/event"
	"github.com/inwords/expenses/internal/expense"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

const selectEventColumns = `id, name, pin_code_hash, currency_id, created_at, deleted_at`

func (s *Store) GetEvent(ctx context.Context, id uuid.UUID) (*event.Event, error) {
	query := `SELECT ` + selectEventColumns + ` FROM events WHERE id = $1`

	var ev event.Event

	err := s.db.QueryRowContext(ctx, query, id).
		Scan(&ev.ID, &ev.Name, &ev.PinCodeHash, &ev.CurrencyID, &ev.CreatedAt, &ev.DeletedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, event.ErrNotFound
		}

		return nil, fmt.Errorf("getting event: %w", err)
	}

	return &ev, nil
}

func (s *Store) ListByEvent(ctx context.Context, eventID uuid.UUID) ([]*expense.Expense, error) {
	query := `
		SELECT id, event_id, payer_id, currency_id, description, expense_type, is_custom_rate, created_at
		FROM expenses
		WHERE event_id = $1
		ORDER BY created_at ASC
	`

	rows, err := s.db.QueryContext(ctx, query, eventID)
	if err != nil {
		return nil, fmt.Errorf("listing expenses: %w", err)
	}
	defer rows.Close()

	var (
		expenses []*expense.Expense
		byID     = make(map[uuid.UUID]*expense.Expense)
	)

	for rows.Next() {
		var (
			exp     expense.Expense
			expType string
		)

		if err := rows.Scan(
			&exp.ID, &exp.EventID, &exp.PayerID, &exp.CurrencyID,
			&exp.Description, &expType, &exp.IsCustomRate, &exp.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scanning expense: %w", err)
		}

		exp.Type = expense.Type(expType)
		expenses = append(expenses, &exp)
		byID[exp.ID] = &exp
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating expense rows: %w", err)
	}

	if len(expenses) == 0 {
		return nil, nil
	}

	if err := s.attachSplits(ctx, eventID, byID); err != nil {
		return nil, err
	}

	return expenses, nil
}

func (s *Store) attachSplits(ctx context.Context, eventID uuid.UUID, byID map[uuid.UUID]*expense.Expense) error {
	query := `
		SELECT s.expense_id, s.person_id, s.amount, s.exchanged_amount
		FROM expense_splits s
		JOIN expenses e ON s.expense_id = e.id
		WHERE e.event_id = $1
		ORDER BY s.expense_id, s.ordinal ASC
	`

	rows, err := s.db.QueryContext(ctx, query, eventID)
	if err != nil {
		return fmt.Errorf("listing expense splits: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			expenseID uuid.UUID
			split     expense.SplitEntry
		)

		if err := rows.Scan(&expenseID, &split.PersonID, &split.Amount, &split.ExchangedAmount); err != nil {
			return fmt.Errorf("scanning expense split: %w", err)
		}

		if exp, ok := byID[expenseID]; ok {
			exp.Splits = append(exp.Splits, split)
		}
	}

	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterating split rows: %w", err)
	}

	return nil
}

type expenseTx struct {
	tx *sql.Tx
}

func (s *Store) Begin(ctx context.Context) (expense.Tx, error) {
	dbTx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("beginning expense tx: %w", err)
	}

	return &expenseTx{tx: dbTx}, nil
}

func (t *expenseTx) Commit() error   { return t.tx.Commit() }
func (t *expenseTx) Rollback() error { return t.tx.Rollback() }

// FindEventForUpdate locks the event row without waiting. A row held by
// a concurrent writer fails with event.ErrBusy immediately.
func (t *expenseTx) FindEventForUpdate(ctx context.Context, id uuid.UUID) (*event.Event, error) {
	query := `SELECT ` + selectEventColumns + ` FROM events WHERE id = $1 FOR UPDATE NOWAIT`

	var ev event.Event

	err := t.tx.QueryRowContext(ctx, query, id).
		Scan(&ev.ID, &ev.Name, &ev.PinCodeHash, &ev.CurrencyID, &ev.CreatedAt, &ev.DeletedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, event.ErrNotFound
		}

		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.LockNotAvailable {
			return nil, event.ErrBusy
		}

		return nil, fmt.Errorf("locking event: %w", err)
	}

	return &ev, nil
}

func (t *expenseTx) FindCurrency(ctx context.Context, id uuid.UUID) (*currency.Currency, error) {
	query := `SELECT id, code, name FROM currencies WHERE id = $1`

	var c currency.Currency
	if err := t.tx.QueryRowContext(ctx, query, id).Scan(&c.ID, &c.Code, &c.Name); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, currency.ErrNotFound
		}

		return nil, fmt.Errorf("getting currency: %w", err)
	}

	return &c, nil
}

func (t *expenseTx) FindRateSnapshot(ctx context.Context, date time.Time) (*currency.RateSnapshot, error) {
	query := `SELECT effective_date, rates FROM currency_rates WHERE effective_date = $1`

	var (
		effectiveDate time.Time
		raw           []byte
	)

	if err := t.tx.QueryRowContext(ctx, query, date).Scan(&effectiveDate, &raw); err != nil {
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

// InsertExpense persists the expense and its split entries within the
// transaction. Split order is preserved via the ordinal column.
func (t *expenseTx) InsertExpense(ctx context.Context, exp *expense.Expense) error {
	query := `
		INSERT INTO expenses (event_id, payer_id, currency_id, description, expense_type, is_custom_rate, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`

	err := t.tx.QueryRowContext(ctx, query,
		exp.EventID,
		exp.PayerID,
		exp.CurrencyID,
		exp.Description,
		exp.Type,
		exp.IsCustomRate,
		exp.CreatedAt,
	).Scan(&exp.ID)
	if err != nil {
		return fmt.Errorf("creating expense: %w", err)
	}

	splitQuery := `
		INSERT INTO expense_splits (expense_id, person_id, amount, exchanged_amount, ordinal)
		VALUES ($1, $2, $3, $4, $5)
	`

	for i, split := range exp.Splits {
		if _, err := t.tx.ExecContext(ctx, splitQuery,
			exp.ID, split.PersonID, split.Amount, split.ExchangedAmount, i,
		); err != nil {
			return fmt.Errorf("creating expense split: %w", err)
		}
	}

	return nil
}
