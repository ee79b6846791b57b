package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/inwords/expenses/internal/event"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// scanner is satisfied by both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

const selectEventColumns = `id, name, pin_code_hash, currency_id, created_at, deleted_at`

func scanEvent(s scanner) (*event.Event, error) {
	var ev event.Event
	if err := s.Scan(&ev.ID, &ev.Name, &ev.PinCodeHash, &ev.CurrencyID, &ev.CreatedAt, &ev.DeletedAt); err != nil {
		return nil, err
	}

	return &ev, nil
}

// CreateEvent inserts the event and its initial participants in one
// database transaction.
func (s *Store) CreateEvent(ctx context.Context, ev *event.Event, persons []*event.Person) error {
	dbTx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer dbTx.Rollback()

	query := `
		INSERT INTO events (name, pin_code_hash, currency_id, created_at)
		VALUES ($1, $2, $3, NOW())
		RETURNING id, created_at
	`

	if err := dbTx.QueryRowContext(ctx, query, ev.Name, ev.PinCodeHash, ev.CurrencyID).
		Scan(&ev.ID, &ev.CreatedAt); err != nil {
		return fmt.Errorf("creating event: %w", err)
	}

	if err := insertPersons(ctx, dbTx, ev.ID, persons); err != nil {
		return err
	}

	if err := dbTx.Commit(); err != nil {
		return fmt.Errorf("committing event: %w", err)
	}

	return nil
}

func (s *Store) GetEvent(ctx context.Context, id uuid.UUID) (*event.Event, error) {
	query := `SELECT ` + selectEventColumns + ` FROM events WHERE id = $1`

	ev, err := scanEvent(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, event.ErrNotFound
		}

		return nil, fmt.Errorf("getting event: %w", err)
	}

	return ev, nil
}

func (s *Store) ListPersons(ctx context.Context, eventID uuid.UUID) ([]*event.Person, error) {
	query := `
		SELECT id, event_id, name, created_at
		FROM persons
		WHERE event_id = $1
		ORDER BY created_at ASC
	`

	rows, err := s.db.QueryContext(ctx, query, eventID)
	if err != nil {
		return nil, fmt.Errorf("listing persons: %w", err)
	}
	defer rows.Close()

	var persons []*event.Person

	for rows.Next() {
		var p event.Person
		if err := rows.Scan(&p.ID, &p.EventID, &p.Name, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning person: %w", err)
		}

		persons = append(persons, &p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating person rows: %w", err)
	}

	return persons, nil
}

type eventTx struct {
	tx *sql.Tx
}

func (s *Store) Begin(ctx context.Context) (event.Tx, error) {
	dbTx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("beginning event tx: %w", err)
	}

	return &eventTx{tx: dbTx}, nil
}

func (t *eventTx) Commit() error   { return t.tx.Commit() }
func (t *eventTx) Rollback() error { return t.tx.Rollback() }

// FindEventForUpdate locks the event row without waiting. A row held by
// a concurrent writer fails with event.ErrBusy immediately.
func (t *eventTx) FindEventForUpdate(ctx context.Context, id uuid.UUID) (*event.Event, error) {
	query := `SELECT ` + selectEventColumns + ` FROM events WHERE id = $1 FOR UPDATE NOWAIT`

	ev, err := scanEvent(t.tx.QueryRowContext(ctx, query, id))
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

	return ev, nil
}

func (t *eventTx) InsertPersons(ctx context.Context, persons []*event.Person) error {
	if len(persons) == 0 {
		return nil
	}

	return insertPersons(ctx, t.tx, persons[0].EventID, persons)
}

func (t *eventTx) SoftDeleteEvent(ctx context.Context, id uuid.UUID) error {
	query := `
		UPDATE events
		SET deleted_at = NOW()
		WHERE id = $1 AND deleted_at IS NULL
	`

	if _, err := t.tx.ExecContext(ctx, query, id); err != nil {
		return fmt.Errorf("deleting event: %w", err)
	}

	return nil
}

// execer is satisfied by both *sql.DB and *sql.Tx.
type execer interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

func insertPersons(ctx context.Context, db execer, eventID uuid.UUID, persons []*event.Person) error {
	query := `
		INSERT INTO persons (event_id, name, created_at)
		VALUES ($1, $2, NOW())
		RETURNING id, created_at
	`

	for _, p := range persons {
		p.EventID = eventID

		if err := db.QueryRowContext(ctx, query, eventID, p.Name).Scan(&p.ID, &p.CreatedAt); err != nil {
			return fmt.Errorf("creating person: %w", err)
		}
	}

	return nil
}
