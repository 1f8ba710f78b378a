package daycount_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fincalc/loan-engine/daycount"
)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func TestDays_Thirty360Family(t *testing.T) {
	tests := []struct {
		name     string
		conv     daycount.Convention
		d1, d2   time.Time
		eom      bool
		days     int64
		yearLen  int64
	}{
		// 30A/360: d1 capped at 30, d2 capped only when d1 lands on 30.
		{"30A mid-month", daycount.ThirtyA360, date(2022, time.January, 15), date(2022, time.March, 31), false, 76, 360},
		{"30A both month ends", daycount.ThirtyA360, date(2022, time.January, 31), date(2022, time.March, 31), false, 60, 360},
		{"30A d1 on 30", daycount.ThirtyA360, date(2022, time.January, 30), date(2022, time.March, 31), false, 60, 360},

		// 30U/360: end-of-month February special casing behind the eom flag.
		{"30U leap Feb eom", daycount.ThirtyU360, date(2024, time.February, 29), date(2024, time.March, 31), true, 30, 360},
		{"30U leap Feb no eom", daycount.ThirtyU360, date(2024, time.February, 29), date(2024, time.March, 31), false, 32, 360},
		{"30U Feb to Feb eom", daycount.ThirtyU360, date(2023, time.February, 28), date(2024, time.February, 29), true, 360, 360},
		{"30U day 31 both", daycount.ThirtyU360, date(2022, time.May, 31), date(2022, time.July, 31), false, 60, 360},

		// 30E/360: any end-of-month day capped at 30, both dates.
		{"30E leap February", daycount.ThirtyE360, date(2024, time.January, 31), date(2024, time.February, 29), false, 30, 360},
		{"30E plain February", daycount.ThirtyE360, date(2023, time.January, 31), date(2023, time.February, 28), false, 30, 360},
		{"30E full month", daycount.ThirtyE360, date(2022, time.February, 28), date(2022, time.March, 31), false, 30, 360},
		{"30E mid-month", daycount.ThirtyE360, date(2022, time.January, 15), date(2022, time.February, 15), false, 30, 360},

		// 30E/360 ISDA: February period ends keep their true length.
		{"ISDA leap February", daycount.ThirtyE360ISDA, date(2024, time.January, 31), date(2024, time.February, 29), false, 29, 360},
		{"ISDA plain February", daycount.ThirtyE360ISDA, date(2023, time.January, 31), date(2023, time.February, 28), false, 28, 360},
		{"ISDA out of February", daycount.ThirtyE360ISDA, date(2024, time.February, 29), date(2024, time.March, 31), false, 30, 360},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			days, yearLen, err := daycount.Days(tt.d1, tt.d2, tt.conv, tt.eom)
			require.NoError(t, err)
			assert.Equal(t, tt.days, days)
			assert.Equal(t, tt.yearLen, yearLen)
		})
	}
}

func TestDays_ActualConventions(t *testing.T) {
	tests := []struct {
		name    string
		conv    daycount.Convention
		d1, d2  time.Time
		days    int64
		yearLen int64
	}{
		{"A/365F one month", daycount.Act365Fixed, date(2022, time.January, 1), date(2022, time.February, 1), 31, 365},
		{"A/365F across leap day", daycount.Act365Fixed, date(2024, time.February, 1), date(2024, time.March, 1), 29, 365},
		{"A/360 one month", daycount.Act360, date(2022, time.January, 1), date(2022, time.February, 1), 31, 360},

		{"A/A ISDA leap year span", daycount.ActActISDA, date(2024, time.January, 1), date(2024, time.December, 31), 365, 366},
		{"A/A ISDA plain year span", daycount.ActActISDA, date(2023, time.March, 1), date(2023, time.September, 1), 184, 365},

		// AFB: the 366 denominator needs date1 before March of a leap year.
		{"A/A AFB leap before March", daycount.ActActAFB, date(2024, time.January, 15), date(2024, time.March, 15), 60, 366},
		{"A/A AFB leap after March", daycount.ActActAFB, date(2024, time.June, 15), date(2024, time.December, 15), 183, 365},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			days, yearLen, err := daycount.Days(tt.d1, tt.d2, tt.conv, false)
			require.NoError(t, err)
			assert.Equal(t, tt.days, days)
			assert.Equal(t, tt.yearLen, yearLen)
		})
	}
}

func TestFraction_ActualActualMultiYear(t *testing.T) {
	// GIVEN: a span covering exactly two non-leap years
	// WHEN: computed under A/A ISDA
	// THEN: the algebraic split collapses to exactly 2

	frac, err := daycount.Fraction(date(2021, time.July, 1), date(2023, time.July, 1), daycount.ActActISDA, false)
	require.NoError(t, err)
	assert.True(t, frac.Equal(decimal.NewFromInt(2)), "got %s", frac)
}

func TestFraction_MultiYearWeightedSplit(t *testing.T) {
	// 2023-07-01 to 2025-01-01: 184 days of 2023, all of 2024, none of 2025.
	// (184*365 + 0*365 + 1*365*365) / (365*365); year lengths here are both
	// 365 because the split anchors on date1's and date2's years.
	frac, err := daycount.Fraction(date(2023, time.July, 1), date(2025, time.January, 1), daycount.ActActISDA, false)
	require.NoError(t, err)

	want := decimal.NewFromInt(184*365 + 365*365).Div(decimal.NewFromInt(365 * 365))
	assert.True(t, frac.Equal(want), "got %s want %s", frac, want)
}

func TestFraction_ThirtyE360LeapFebruary(t *testing.T) {
	frac, err := daycount.Fraction(date(2024, time.January, 31), date(2024, time.February, 29), daycount.ThirtyE360, true)
	require.NoError(t, err)

	want := decimal.NewFromInt(30).Div(decimal.NewFromInt(360))
	assert.True(t, frac.Equal(want), "got %s want %s", frac, want)
}

func TestDays_UnknownConvention(t *testing.T) {
	_, _, err := daycount.Days(date(2022, time.January, 1), date(2022, time.February, 1), "ACT/ACT", false)
	assert.Error(t, err)
}

func TestZeroSpan(t *testing.T) {
	for _, conv := range daycount.Conventions() {
		frac, err := daycount.Fraction(date(2022, time.June, 15), date(2022, time.June, 15), conv, true)
		require.NoError(t, err)
		assert.True(t, frac.IsZero(), "%s: got %s", conv, frac)
	}
}

func TestConventions_CoversAllIdentifiers(t *testing.T) {
	ids := daycount.Conventions()
	assert.Len(t, ids, 8)
	for _, c := range ids {
		assert.True(t, daycount.Valid(c))
	}
	assert.False(t, daycount.Valid("30/360"))
}
