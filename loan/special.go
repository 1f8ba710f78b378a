/*
special.go - Special-payment registry

PURPOSE:
  Holds recurring extra principal payments and turns them into the dated
  event stream the amortization engine consumes. Each AddSpecialPayment
  call expands its definition into concrete (date, amount) events exactly
  once; consolidation re-runs on every schedule build so repeated reads
  always reflect the latest registered set.

EXPANSION:
  A stream of amount A, first date D, term T (years, or months/12) and k
  occurrences per year yields T*k events at 12/k month intervals starting
  at D, each carrying A rounded to cents.

CONSOLIDATION:
  All expansions are flattened and summed per exact date; each per-date sum
  is independently rounded to cents. A stream landing on a regular payment
  date merges into that date's event.
*/
package loan

import (
	"time"

	"github.com/shopspring/decimal"
)

// AddSpecialPayment registers a recurring extra principal-only payment
// stream. unit defaults to years when empty. The stream is expanded into
// dated events immediately; the definition list only ever grows.
func (l *Loan) AddSpecialPayment(amount decimal.Decimal, firstDate string, term int, perYear int, unit TermUnit) error {
	if !amount.IsPositive() {
		return termsErr("SpecialPayment.Amount", "must be positive, got %s", amount)
	}
	first, err := parseDate(firstDate)
	if err != nil {
		return termsErr("SpecialPayment.FirstDate", "must be a valid YYYY-MM-DD date, got %q", firstDate)
	}
	if first.Before(l.start) {
		return termsErr("SpecialPayment.FirstDate", "cannot be before the loan start date")
	}
	if term < 1 {
		return termsErr("SpecialPayment.Term", "must be at least 1, got %d", term)
	}
	switch perYear {
	case 1, 2, 4, 12:
	default:
		return termsErr("SpecialPayment.PerYear", "must be 1, 2, 4 or 12, got %d", perYear)
	}
	if unit == "" {
		unit = TermYears
	}
	if unit != TermYears && unit != TermMonths {
		return termsErr("SpecialPayment.TermUnit", "must be %q or %q, got %q", TermYears, TermMonths, unit)
	}

	sp := SpecialPayment{
		Amount:    amount,
		FirstDate: dateKey(first),
		Term:      term,
		TermUnit:  unit,
		PerYear:   perYear,
	}
	l.specials = append(l.specials, sp)
	l.expansions = append(l.expansions, expandSpecialPayment(sp))
	return nil
}

// SpecialPayments returns the registered definitions in insertion order.
func (l *Loan) SpecialPayments() []SpecialPayment {
	out := make([]SpecialPayment, len(l.specials))
	copy(out, l.specials)
	return out
}

// expandSpecialPayment produces the dated occurrences of one stream.
func expandSpecialPayment(sp SpecialPayment) []SpecialPaymentEvent {
	termMonths := sp.Term
	if sp.TermUnit == TermYears {
		termMonths = sp.Term * 12
	}
	count := termMonths * sp.PerYear / 12
	interval := 12 / sp.PerYear
	amount := money(sp.Amount)

	events := make([]SpecialPaymentEvent, 0, count)
	for i := 0; i < count; i++ {
		events = append(events, SpecialPaymentEvent{
			Date:   addMonths(sp.FirstDate, i*interval),
			Amount: amount,
		})
	}
	return events
}

// consolidateSpecialPayments flattens all expansions into one date->amount
// map, each per-date sum rounded to cents. Rebuilt on every schedule read.
func (l *Loan) consolidateSpecialPayments() map[time.Time]decimal.Decimal {
	byDate := make(map[time.Time]decimal.Decimal)
	for _, events := range l.expansions {
		for _, e := range events {
			byDate[e.Date] = byDate[e.Date].Add(e.Amount)
		}
	}
	for date, sum := range byDate {
		byDate[date] = money(sum)
	}
	return byDate
}
