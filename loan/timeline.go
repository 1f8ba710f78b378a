/*
timeline.go - Payment timeline generation

PURPOSE:
  Derives the dated event sequence the amortization engine walks: the
  regular payment dates implied by the loan's frequency and term, merged
  with every consolidated special-payment date.

BASE DATE:
  All regular dates are "base + i payment periods" for i = 1..N. The base
  is chosen so that the first regular date lands where the terms say:
  - explicit first-payment date: base = max(firstPayment, start) - 1 period
  - no end-of-month anchoring:   base = start
  - start already at month end:  base = start
  - otherwise:                   base = end of start's month - 1 period

END-OF-MONTH SNAPPING:
  When anchoring is active and no explicit first-payment date was given,
  each generated date snaps to the last calendar day of its month. An
  explicit first-payment date fixes the day-of-month instead.

MERGING:
  The timeline is the sorted union of regular and special dates. A special
  payment landing exactly on a regular date is one event, not two.
*/
package loan

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"
)

// baseDate returns the reference date such that adding i payment periods
// yields the i-th regular payment date.
func (l *Loan) baseDate() time.Time {
	switch {
	case l.firstPayment != nil:
		return addMonths(maxDate(*l.firstPayment, l.start), -l.stepMonths)
	case !l.endOfMonth:
		return l.start
	case isEndOfMonth(l.start):
		return l.start
	default:
		return addMonths(endOfMonth(l.start), -l.stepMonths)
	}
}

// regularPaymentDates generates the N regular payment dates.
func (l *Loan) regularPaymentDates() []time.Time {
	base := l.baseDate()
	snap := l.endOfMonth && l.firstPayment == nil

	dates := make([]time.Time, 0, l.numPayments)
	for i := 1; i <= l.numPayments; i++ {
		d := addMonths(base, i*l.stepMonths)
		if snap {
			d = endOfMonth(d)
		}
		dates = append(dates, d)
	}
	return dates
}

// paymentTimeline merges regular dates with special-payment dates into one
// sorted, de-duplicated event sequence. The second return value marks which
// timeline dates belong to the declared regular schedule.
func (l *Loan) paymentTimeline(specials map[time.Time]decimal.Decimal) ([]time.Time, map[time.Time]bool) {
	regular := make(map[time.Time]bool, l.numPayments)
	seen := make(map[time.Time]bool, l.numPayments+len(specials))

	var timeline []time.Time
	for _, d := range l.regularPaymentDates() {
		regular[d] = true
		if !seen[d] {
			seen[d] = true
			timeline = append(timeline, d)
		}
	}
	for d := range specials {
		if !seen[d] {
			seen[d] = true
			timeline = append(timeline, d)
		}
	}
	sort.Slice(timeline, func(i, j int) bool { return timeline[i].Before(timeline[j]) })
	return timeline, regular
}
