package expense

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func decPtr(s string) *decimal.Decimal {
	d := dec(s)
	return &d
}

func TestComputeSplits_EqualSameCurrency(t *testing.T) {
	participants := []uuid.UUID{uuid.New(), uuid.New(), uuid.New()}

	spec := SplitSpec{
		Mode:         SplitEqual,
		Total:        dec("100.00"),
		Participants: participants,
	}

	entries, err := computeSplits(spec, conversion{kind: convSame})
	require.NoError(t, err)
	require.Len(t, entries, 3)

	for i, e := range entries {
		assert.Equal(t, participants[i], e.PersonID)
		assert.Equal(t, "33.33", e.Amount.StringFixed(2))
		assert.Equal(t, "33.33", e.ExchangedAmount.StringFixed(2))
	}
}

// The equal split does not redistribute the rounding remainder: three
// shares of 33.33 sum to 99.99, one cent short of the declared total.
func TestComputeSplits_EqualRoundingRemainderNotRedistributed(t *testing.T) {
	spec := SplitSpec{
		Mode:         SplitEqual,
		Total:        dec("100.00"),
		Participants: []uuid.UUID{uuid.New(), uuid.New(), uuid.New()},
	}

	entries, err := computeSplits(spec, conversion{kind: convSame})
	require.NoError(t, err)

	var sum decimal.Decimal
	for _, e := range entries {
		sum = sum.Add(e.Amount)
	}

	assert.Equal(t, "99.99", sum.StringFixed(2))
}

func TestComputeSplits_EqualAutoRate(t *testing.T) {
	spec := SplitSpec{
		Mode:         SplitEqual,
		Total:        dec("100.00"),
		Participants: []uuid.UUID{uuid.New(), uuid.New(), uuid.New()},
	}

	// USD event, EUR expense, snapshot {EUR: 1.0, USD: 1.05}.
	entries, err := computeSplits(spec, conversion{kind: convAuto, rate: dec("1.05")})
	require.NoError(t, err)
	require.Len(t, entries, 3)

	for _, e := range entries {
		assert.Equal(t, "33.33", e.Amount.StringFixed(2))
		assert.Equal(t, "35.00", e.ExchangedAmount.StringFixed(2))
	}
}

func TestComputeSplits_ManualRoundsAmounts(t *testing.T) {
	spec := SplitSpec{
		Mode: SplitManual,
		Entries: []SplitInput{
			{PersonID: uuid.New(), Amount: dec("10.005")},
			{PersonID: uuid.New(), Amount: dec("20.994")},
		},
	}

	entries, err := computeSplits(spec, conversion{kind: convSame})
	require.NoError(t, err)
	require.Len(t, entries, 2)

	assert.Equal(t, "10.01", entries[0].Amount.StringFixed(2))
	assert.Equal(t, "20.99", entries[1].Amount.StringFixed(2))
}

// Manual amounts are accepted as given: they are not checked against a
// declared total.
func TestComputeSplits_ManualDoesNotValidateSum(t *testing.T) {
	spec := SplitSpec{
		Mode:  SplitManual,
		Total: dec("100.00"),
		Entries: []SplitInput{
			{PersonID: uuid.New(), Amount: dec("1.00")},
			{PersonID: uuid.New(), Amount: dec("2.00")},
		},
	}

	entries, err := computeSplits(spec, conversion{kind: convSame})
	require.NoError(t, err)
	assert.Len(t, entries, 2)
}

func TestComputeSplits_CustomRateVerbatim(t *testing.T) {
	spec := SplitSpec{
		Mode: SplitManual,
		Entries: []SplitInput{
			{PersonID: uuid.New(), Amount: dec("33.33"), ExchangedAmount: decPtr("36.10")},
			{PersonID: uuid.New(), Amount: dec("33.33"), ExchangedAmount: decPtr("36.20")},
		},
	}

	entries, err := computeSplits(spec, conversion{kind: convCustom})
	require.NoError(t, err)
	require.Len(t, entries, 2)

	assert.Equal(t, "36.10", entries[0].ExchangedAmount.StringFixed(2))
	assert.Equal(t, "36.20", entries[1].ExchangedAmount.StringFixed(2))
}

func TestComputeSplits_CustomRateMissingEntry(t *testing.T) {
	spec := SplitSpec{
		Mode: SplitManual,
		Entries: []SplitInput{
			{PersonID: uuid.New(), Amount: dec("33.33"), ExchangedAmount: decPtr("36.10")},
			{PersonID: uuid.New(), Amount: dec("33.33")},
		},
	}

	_, err := computeSplits(spec, conversion{kind: convCustom})
	assert.ErrorIs(t, err, ErrInconsistentExchangedAmount)
}

func TestComputeSplits_Invalid(t *testing.T) {
	tests := []struct {
		name string
		spec SplitSpec
	}{
		{
			name: "EqualNoParticipants",
			spec: SplitSpec{Mode: SplitEqual, Total: dec("10.00")},
		},
		{
			name: "ManualNoEntries",
			spec: SplitSpec{Mode: SplitManual},
		},
		{
			name: "UnknownMode",
			spec: SplitSpec{Mode: SplitMode("weighted")},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := computeSplits(tt.spec, conversion{kind: convSame})
			assert.ErrorIs(t, err, ErrInvalidSplit)
		})
	}
}

func TestSplitSpec_HasCustomAmounts(t *testing.T) {
	withCustom := SplitSpec{Entries: []SplitInput{
		{PersonID: uuid.New(), Amount: dec("5.00")},
		{PersonID: uuid.New(), Amount: dec("5.00"), ExchangedAmount: decPtr("5.25")},
	}}
	withoutCustom := SplitSpec{Entries: []SplitInput{
		{PersonID: uuid.New(), Amount: dec("5.00")},
	}}

	assert.True(t, withCustom.HasCustomAmounts())
	assert.False(t, withoutCustom.HasCustomAmounts())
}
