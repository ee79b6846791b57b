package expense

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/inwords/expenses/internal/currency"
	"github.com/inwords/expenses/internal/event"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=expense
type Repository interface {
	GetEvent(ctx context.Context, id uuid.UUID) (*event.Event, error)
	ListByEvent(ctx context.Context, eventID uuid.UUID) ([]*Expense, error)

	Begin(ctx context.Context) (Tx, error)
}

// Tx is one database transaction. The event row lock is taken with
// FindEventForUpdate and held until Commit or Rollback, so the whole
// lookup-validate-persist sequence is serialized per event.
type Tx interface {
	FindEventForUpdate(ctx context.Context, id uuid.UUID) (*event.Event, error)
	FindCurrency(ctx context.Context, id uuid.UUID) (*currency.Currency, error)
	FindRateSnapshot(ctx context.Context, date time.Time) (*currency.RateSnapshot, error)
	InsertExpense(ctx context.Context, exp *Expense) error
	Commit() error
	Rollback() error
}

// AccessVerifier validates the presented credential against an event.
type AccessVerifier interface {
	VerifyAccess(ev *event.Event, access event.Access) error
}

type Service struct {
	repo   Repository
	access AccessVerifier
	now    func() time.Time
}

func NewService(repo Repository, access AccessVerifier) *Service {
	return &Service{repo: repo, access: access, now: time.Now}
}

type RecordParams struct {
	EventID     uuid.UUID
	PayerID     uuid.UUID
	CurrencyID  uuid.UUID
	Description string
	Access      event.Access
	CreatedAt   *time.Time
	Split       SplitSpec
}

// Record validates and persists an expense as one atomic unit.
//
// The event row is locked without waiting: a concurrent write to the
// same event makes this call fail with event.ErrBusy rather than
// queue. On any failure the transaction rolls back and nothing is
// persisted.
func (s *Service) Record(ctx context.Context, params RecordParams) (*Expense, error) {
	tx, err := s.repo.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin record: %w", err)
	}
	defer tx.Rollback()

	ev, err := tx.FindEventForUpdate(ctx, params.EventID)
	if err != nil {
		return nil, err
	}

	if ev.DeletedAt != nil {
		return nil, event.ErrDeleted
	}

	if err := s.access.VerifyAccess(ev, params.Access); err != nil {
		return nil, err
	}

	conv, err := s.decideConversion(ctx, tx, ev, params)
	if err != nil {
		return nil, err
	}

	splits, err := computeSplits(params.Split, conv)
	if err != nil {
		return nil, err
	}

	exp := &Expense{
		EventID:      params.EventID,
		PayerID:      params.PayerID,
		CurrencyID:   params.CurrencyID,
		Description:  params.Description,
		Type:         TypeExpense,
		IsCustomRate: conv.kind == convCustom,
		CreatedAt:    s.createdAt(params.CreatedAt),
		Splits:       splits,
	}

	if err := tx.InsertExpense(ctx, exp); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit record: %w", err)
	}

	return exp, nil
}

// decideConversion picks the conversion path once, before any split
// entry is built: same currency, caller-supplied exchanged amounts, or
// an automatic rate resolved for the expense's creation date.
func (s *Service) decideConversion(ctx context.Context, tx Tx, ev *event.Event, params RecordParams) (conversion, error) {
	if ev.CurrencyID == params.CurrencyID {
		return conversion{kind: convSame}, nil
	}

	if params.Split.Mode == SplitManual && params.Split.HasCustomAmounts() {
		return conversion{kind: convCustom}, nil
	}

	expenseCurrency, err := tx.FindCurrency(ctx, params.CurrencyID)
	if err != nil {
		return conversion{}, err
	}

	eventCurrency, err := tx.FindCurrency(ctx, ev.CurrencyID)
	if err != nil {
		return conversion{}, err
	}

	date := currency.DayUTC(s.createdAt(params.CreatedAt))

	snapshot, err := tx.FindRateSnapshot(ctx, date)
	if err != nil {
		return conversion{}, err
	}

	expenseRate, err := snapshot.Rate(expenseCurrency.Code)
	if err != nil {
		return conversion{}, err
	}

	eventRate, err := snapshot.Rate(eventCurrency.Code)
	if err != nil {
		return conversion{}, err
	}

	return conversion{kind: convAuto, rate: eventRate.Div(expenseRate)}, nil
}

type RefundParams struct {
	EventID     uuid.UUID
	PayerID     uuid.UUID // who pays the money back
	RecipientID uuid.UUID // who receives it
	Amount      decimal.Decimal
	Description string
	Access      event.Access
	CreatedAt   *time.Time
}

// RecordRefund persists a single-party reimbursement: one split entry
// for the receiving participant, in the event's own currency, under
// the same locking discipline as Record.
func (s *Service) RecordRefund(ctx context.Context, params RefundParams) (*Expense, error) {
	tx, err := s.repo.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin refund: %w", err)
	}
	defer tx.Rollback()

	ev, err := tx.FindEventForUpdate(ctx, params.EventID)
	if err != nil {
		return nil, err
	}

	if ev.DeletedAt != nil {
		return nil, event.ErrDeleted
	}

	if err := s.access.VerifyAccess(ev, params.Access); err != nil {
		return nil, err
	}

	amount := params.Amount.Round(2)

	exp := &Expense{
		EventID:     params.EventID,
		PayerID:     params.PayerID,
		CurrencyID:  ev.CurrencyID,
		Description: params.Description,
		Type:        TypeRefund,
		CreatedAt:   s.createdAt(params.CreatedAt),
		Splits: []SplitEntry{{
			PersonID:        params.RecipientID,
			Amount:          amount,
			ExchangedAmount: amount,
		}},
	}

	if err := tx.InsertExpense(ctx, exp); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit refund: %w", err)
	}

	return exp, nil
}

// ListByEvent returns all expenses of the event, refunds included,
// gated by pin code or share token.
func (s *Service) ListByEvent(ctx context.Context, eventID uuid.UUID, access event.Access) ([]*Expense, error) {
	ev, err := s.repo.GetEvent(ctx, eventID)
	if err != nil {
		return nil, err
	}

	if ev.DeletedAt != nil {
		return nil, event.ErrDeleted
	}

	if err := s.access.VerifyAccess(ev, access); err != nil {
		return nil, err
	}

	return s.repo.ListByEvent(ctx, eventID)
}

func (s *Service) createdAt(t *time.Time) time.Time {
	if t != nil {
		return *t
	}

	return s.now()
}
