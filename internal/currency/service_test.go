package currency

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestDayUTC(t *testing.T) {
	loc := time.FixedZone("UTC+3", 3*60*60)
	in := time.Date(2026, time.March, 14, 1, 30, 0, 0, loc)

	got := DayUTC(in)

	// 01:30 UTC+3 is still the previous day in UTC.
	assert.Equal(t, time.Date(2026, time.March, 13, 0, 0, 0, 0, time.UTC), got)
}

func TestRateSnapshot_Rate(t *testing.T) {
	snapshot := &RateSnapshot{
		Date: time.Date(2026, time.March, 14, 0, 0, 0, 0, time.UTC),
		Rates: map[string]decimal.Decimal{
			"EUR": decimal.RequireFromString("1.0"),
			"USD": decimal.RequireFromString("1.05"),
		},
	}

	rate, err := snapshot.Rate("USD")
	require.NoError(t, err)
	assert.Equal(t, "1.05", rate.String())

	_, err = snapshot.Rate("JPY")
	assert.ErrorIs(t, err, ErrRateNotFound)
}

func TestService_ResolveRate(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := NewMockRepository(ctrl)
	svc := NewService(repo)

	day := time.Date(2026, time.March, 14, 0, 0, 0, 0, time.UTC)
	snapshot := &RateSnapshot{Date: day, Rates: map[string]decimal.Decimal{"EUR": decimal.NewFromInt(1)}}

	// The lookup must be keyed by the UTC day, not the full timestamp.
	repo.EXPECT().GetRateSnapshot(gomock.Any(), day).Return(snapshot, nil)

	got, err := svc.ResolveRate(context.Background(), day.Add(17*time.Hour+42*time.Minute))
	require.NoError(t, err)
	assert.Equal(t, snapshot, got)
}

func TestService_ResolveRate_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := NewMockRepository(ctrl)
	svc := NewService(repo)

	repo.EXPECT().GetRateSnapshot(gomock.Any(), gomock.Any()).Return(nil, ErrRateNotFound)

	_, err := svc.ResolveRate(context.Background(), time.Now())
	assert.ErrorIs(t, err, ErrRateNotFound)
}

func TestService_ListWithRates(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := NewMockRepository(ctrl)

	now := time.Date(2026, time.March, 14, 9, 15, 0, 0, time.UTC)
	svc := &Service{repo: repo, now: func() time.Time { return now }}

	currencies := []Currency{{Code: "EUR", Name: "Euro"}, {Code: "USD", Name: "US Dollar"}}
	snapshot := &RateSnapshot{
		Date:  DayUTC(now),
		Rates: map[string]decimal.Decimal{"EUR": decimal.NewFromInt(1)},
	}

	repo.EXPECT().ListCurrencies(gomock.Any()).Return(currencies, nil)
	repo.EXPECT().GetRateSnapshot(gomock.Any(), DayUTC(now)).Return(snapshot, nil)

	gotCurrencies, gotSnapshot, err := svc.ListWithRates(context.Background())
	require.NoError(t, err)
	assert.Equal(t, currencies, gotCurrencies)
	assert.Equal(t, snapshot, gotSnapshot)
}

func TestService_ListWithRates_NoSnapshotToday(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := NewMockRepository(ctrl)
	svc := NewService(repo)

	repo.EXPECT().ListCurrencies(gomock.Any()).Return([]Currency{{Code: "EUR"}}, nil)
	repo.EXPECT().GetRateSnapshot(gomock.Any(), gomock.Any()).Return(nil, ErrRateNotFound)

	_, _, err := svc.ListWithRates(context.Background())
	assert.ErrorIs(t, err, ErrRateNotFound)
}
