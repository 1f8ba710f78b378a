/*
Package daycount implements day-count conventions for interest accrual.

PURPOSE:
  Converts a calendar date span into a fraction of a year under one of the
  eight industry-standard conventions. This is the leaf of the amortization
  engine: every interest accrual in the schedule goes through Fraction.

KEY CONCEPTS IN THIS FILE:
  - Convention: string identifier for a day-count rule (e.g. "30E/360")
  - Days: raw (numerator, denominator) pair for a date span
  - Fraction: Days expressed as an exact decimal year fraction

DESIGN PRINCIPLES:
  1. Dispatch as data: conventions live in an immutable map from identifier
     to a pure counting function. They share no behavior beyond the
     signature, so there is no type hierarchy.
  2. Integer arithmetic: every counting function returns integers; division
     happens once, in decimal, so no floating-point drift can enter.
  3. Pure functions: no state, no clock, no I/O.

CONVENTION NOTES:
  The 30/360 family differs only in how day-of-month components are adjusted
  before applying 360*(y2-y1) + 30*(m2-m1) + (d2-d1):
  - 30A/360:      d1 capped at 30; d2 capped at 30 only when d1 lands on 30
  - 30U/360:      like 30A plus end-of-month February handling (eom flag)
  - 30E/360:      any end-of-month day capped at 30, on both dates
  - 30E/360 ISDA: like 30E, but d2 is left unchanged when it falls in
                  February, preserving the 28/29-day month at period end
  The actual/actual conventions split multi-year spans algebraically over a
  common denominator (yearLen1*yearLen2) so no fractional rounding occurs
  before the final division.

USAGE:
  frac, err := daycount.Fraction(jan31, feb29, daycount.ThirtyE360, true)

SEE ALSO:
  - loan/schedule.go: the only production caller
*/
package daycount

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Convention identifies a day-count rule.
type Convention string

const (
	ThirtyA360     Convention = "30A/360"
	ThirtyU360     Convention = "30U/360"
	ThirtyE360     Convention = "30E/360"
	ThirtyE360ISDA Convention = "30E/360 ISDA"
	Act365Fixed    Convention = "A/365F"
	Act360         Convention = "A/360"
	ActActISDA     Convention = "A/A ISDA"
	ActActAFB      Convention = "A/A AFB"
)

// countFunc returns the day count numerator and year-length denominator for
// a date span. Callers guarantee d1 <= d2.
type countFunc func(d1, d2 time.Time, eom bool) (days, yearLen int64)

var methods = map[Convention]countFunc{
	ThirtyA360:     thirtyA360,
	ThirtyU360:     thirtyU360,
	ThirtyE360:     thirtyE360,
	ThirtyE360ISDA: thirtyE360ISDA,
	Act365Fixed:    act365Fixed,
	Act360:         act360,
	ActActISDA:     actActISDA,
	ActActAFB:      actActAFB,
}

// Valid reports whether c names a known convention.
func Valid(c Convention) bool {
	_, ok := methods[c]
	return ok
}

// Conventions returns the supported convention identifiers.
func Conventions() []Convention {
	return []Convention{
		ThirtyA360, ThirtyU360, ThirtyE360, ThirtyE360ISDA,
		Act365Fixed, Act360, ActActISDA, ActActAFB,
	}
}

// Days returns the raw (numerator, denominator) pair for the span [d1, d2]
// under the given convention. d1 must not be after d2.
func Days(d1, d2 time.Time, c Convention, eom bool) (int64, int64, error) {
	fn, ok := methods[c]
	if !ok {
		return 0, 0, fmt.Errorf("daycount: unknown convention %q", c)
	}
	days, yearLen := fn(d1, d2, eom)
	return days, yearLen, nil
}

// Fraction returns the year fraction for the span [d1, d2] as an exact
// decimal. d1 must not be after d2.
func Fraction(d1, d2 time.Time, c Convention, eom bool) (decimal.Decimal, error) {
	days, yearLen, err := Days(d1, d2, c, eom)
	if err != nil {
		return decimal.Zero, err
	}
	return decimal.NewFromInt(days).Div(decimal.NewFromInt(yearLen)), nil
}

// =============================================================================
// 30/360 FAMILY
// =============================================================================

func thirty360(y1 int, m1 time.Month, d1 int, y2 int, m2 time.Month, d2 int) int64 {
	return 360*int64(y2-y1) + 30*int64(m2-m1) + int64(d2-d1)
}

func thirtyA360(t1, t2 time.Time, _ bool) (int64, int64) {
	y1, m1, d1 := t1.Date()
	y2, m2, d2 := t2.Date()
	if d1 == 31 {
		d1 = 30
	}
	if d2 == 31 && d1 == 30 {
		d2 = 30
	}
	return thirty360(y1, m1, d1, y2, m2, d2), 360
}

func thirtyU360(t1, t2 time.Time, eom bool) (int64, int64) {
	y1, m1, d1 := t1.Date()
	y2, m2, d2 := t2.Date()
	if eom && m1 == time.February && d1 == lastDay(y1, m1) {
		if m2 == time.February && d2 == lastDay(y2, m2) {
			d2 = 30
		}
		d1 = 30
	}
	if d2 == 31 && d1 >= 30 {
		d2 = 30
	}
	if d1 == 31 {
		d1 = 30
	}
	return thirty360(y1, m1, d1, y2, m2, d2), 360
}

func thirtyE360(t1, t2 time.Time, _ bool) (int64, int64) {
	y1, m1, d1 := t1.Date()
	y2, m2, d2 := t2.Date()
	if d1 == lastDay(y1, m1) {
		d1 = 30
	}
	if d2 == lastDay(y2, m2) {
		d2 = 30
	}
	return thirty360(y1, m1, d1, y2, m2, d2), 360
}

func thirtyE360ISDA(t1, t2 time.Time, _ bool) (int64, int64) {
	y1, m1, d1 := t1.Date()
	y2, m2, d2 := t2.Date()
	if d1 == lastDay(y1, m1) {
		d1 = 30
	}
	if d2 == lastDay(y2, m2) && m2 != time.February {
		d2 = 30
	}
	return thirty360(y1, m1, d1, y2, m2, d2), 360
}

// =============================================================================
// ACTUAL CONVENTIONS
// =============================================================================

func act365Fixed(t1, t2 time.Time, _ bool) (int64, int64) {
	return julianDayNumber(t2) - julianDayNumber(t1), 365
}

func act360(t1, t2 time.Time, _ bool) (int64, int64) {
	return julianDayNumber(t2) - julianDayNumber(t1), 360
}

func actActISDA(t1, t2 time.Time, _ bool) (int64, int64) {
	return actualActual(t1, t2, yearLength(t1.Year()))
}

func actActAFB(t1, t2 time.Time, _ bool) (int64, int64) {
	// The 366-day denominator applies only when the span can actually
	// contain February 29 of date1's year.
	len1 := int64(365)
	if isLeap(t1.Year()) && t1.Month() < time.March {
		len1 = 366
	}
	return actualActual(t1, t2, len1)
}

// actualActual handles both same-year and multi-year spans. Multi-year
// spans combine the two partial years and the whole intervening years over
// a common denominator:
//
//	(days1*len2 + days2*len1 + fullYears*len1*len2) / (len1*len2)
func actualActual(t1, t2 time.Time, len1 int64) (int64, int64) {
	y1, y2 := t1.Year(), t2.Year()
	if y1 == y2 {
		return julianDayNumber(t2) - julianDayNumber(t1), len1
	}

	len2 := yearLength(y2)
	days1 := jdn(y1+1, time.January, 1) - julianDayNumber(t1)
	days2 := julianDayNumber(t2) - jdn(y2, time.January, 1)
	fullYears := int64(y2 - y1 - 1)
	return days1*len2 + days2*len1 + fullYears*len1*len2, len1 * len2
}

// =============================================================================
// CALENDAR HELPERS
// =============================================================================

func isLeap(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

func yearLength(year int) int64 {
	if isLeap(year) {
		return 366
	}
	return 365
}

func lastDay(year int, month time.Month) int {
	switch month {
	case time.February:
		if isLeap(year) {
			return 29
		}
		return 28
	case time.April, time.June, time.September, time.November:
		return 30
	default:
		return 31
	}
}

// jdn is the standard proleptic Gregorian Julian day number.
func jdn(year int, month time.Month, day int) int64 {
	y, m, d := int64(year), int64(month), int64(day)
	a := (14 - m) / 12
	y = y + 4800 - a
	m = m + 12*a - 3
	return d + (153*m+2)/5 + 365*y + y/4 - y/100 + y/400 - 32045
}

func julianDayNumber(t time.Time) int64 {
	return jdn(t.Year(), t.Month(), t.Day())
}
