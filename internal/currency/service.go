package currency

import (
	"context"
	"time"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=currency
type Repository interface {
	ListCurrencies(ctx context.Context) ([]Currency, error)
	GetRateSnapshot(ctx context.Context, date time.Time) (*RateSnapshot, error)
}

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo, now: time.Now}
}

// ResolveRate returns the rate snapshot whose effective date equals the
// given date exactly (day granularity, UTC). There is no fallback to a
// neighboring day: a missing snapshot is ErrRateNotFound.
func (s *Service) ResolveRate(ctx context.Context, date time.Time) (*RateSnapshot, error) {
	snapshot, err := s.repo.GetRateSnapshot(ctx, DayUTC(date))
	if err != nil {
		return nil, err
	}

	return snapshot, nil
}

// List returns all supported currencies.
func (s *Service) List(ctx context.Context) ([]Currency, error) {
	return s.repo.ListCurrencies(ctx)
}

// ListWithRates returns all supported currencies together with today's
// rate table. Fails with ErrRateNotFound when no snapshot exists for
// the current day.
func (s *Service) ListWithRates(ctx context.Context) ([]Currency, *RateSnapshot, error) {
	currencies, err := s.repo.ListCurrencies(ctx)
	if err != nil {
		return nil, nil, err
	}

	snapshot, err := s.ResolveRate(ctx, s.now())
	if err != nil {
		return nil, nil, err
	}

	return currencies, snapshot, nil
}
