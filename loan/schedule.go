/*
schedule.go - The amortization engine

PURPOSE:
  Walks the payment timeline once, maintaining a running balance, and emits
  the ordered Payment sequence. This is the heart of the package: interest
  accrual via the day-count engine, regular principal by loan type, special
  principal from the consolidated map, with monotone non-negative balances
  guaranteed under rounding.

ALGORITHM (single pass):
  1. balance = principal; the interest-only counter starts at the
     configured period (or the whole term for interest-only loans).
  2. The regular payment amount is computed once, up front, from the
     closed-form annuity formula, straight-line division, or the explicit
     override.
  3. Per event: accrue interest on the running balance from the previous
     event date; apply regular principal on regular dates (after the
     interest-only counter runs out); apply the date's special principal;
     cap everything at the remaining balance.
  4. Stop emitting once the balance reaches zero. A residual under one
     cent is swept into the final entry so the terminal balance is exactly
     zero.

ROUNDING DISCIPLINE:
  The running balance keeps full decimal precision; emitted fields are
  quantized to cents. The emitted principal total is the difference of the
  rounded balances, so rounded balances telescope: summing TotalPrincipal
  over any schedule that runs to payoff gives back the original principal
  exactly, and every Payment invariant holds in emitted terms.

SEE ALSO:
  - timeline.go: event sequence
  - daycount package: accrual fractions
*/
package loan

import (
	"github.com/shopspring/decimal"

	"github.com/fincalc/loan-engine/daycount"
)

// PaymentSchedule computes the full amortization schedule. The first entry
// is a synthetic zero-activity record at the start date carrying the
// original principal; entries strictly increase by date thereafter.
// The schedule is recomputed from current state on every call.
func (l *Loan) PaymentSchedule() []Payment {
	specials := l.consolidateSpecialPayments()
	timeline, regular := l.paymentTimeline(specials)

	schedule := make([]Payment, 0, len(timeline)+1)
	schedule = append(schedule, Payment{
		Date:             l.start,
		Amount:           decimal.Zero,
		Interest:         decimal.Zero,
		Principal:        decimal.Zero,
		SpecialPrincipal: decimal.Zero,
		TotalPrincipal:   decimal.Zero,
		Balance:          money(l.principal),
	})

	interestOnlyLeft := l.interestOnly
	if l.loanType == InterestOnly {
		interestOnlyLeft = l.numPayments
	}
	regularPayment := l.regularPaymentAmount()

	balance := l.principal // full precision between events
	prev := l.start

	for _, date := range timeline {
		if !balance.IsPositive() {
			break
		}

		frac, err := daycount.Fraction(prev, date, l.convention, l.endOfMonth)
		if err != nil {
			// Convention validity is checked in New.
			frac = decimal.Zero
		}
		interest := balance.Mul(l.annualRate).Mul(frac)

		principal := decimal.Zero
		if regular[date] {
			if interestOnlyLeft <= 0 {
				if l.loanType == Linear {
					principal = decimal.Min(regularPayment, balance)
				} else {
					principal = decimal.Min(regularPayment.Sub(interest), balance)
				}
				if principal.IsNegative() {
					principal = decimal.Zero
				}
			}
			// Interposed special-payment dates do not consume the counter.
			interestOnlyLeft--
		}

		special := decimal.Zero
		if amt, ok := specials[date]; ok {
			special = decimal.Min(balance.Sub(principal), amt)
			if special.IsNegative() {
				special = decimal.Zero
			}
		}

		total := principal.Add(special)
		newBalance := balance.Sub(total)
		if newBalance.IsPositive() && newBalance.LessThan(cent) {
			// Sub-cent residual: zero the balance. The emitted figures are
			// derived from the rounded balances, so they absorb it.
			newBalance = decimal.Zero
		}

		emittedSpecial := money(special)
		emittedTotal := money(balance).Sub(money(newBalance))
		emittedInterest := money(interest)

		schedule = append(schedule, Payment{
			Date:             date,
			Amount:           emittedTotal.Add(emittedInterest),
			Interest:         emittedInterest,
			Principal:        emittedTotal.Sub(emittedSpecial),
			SpecialPrincipal: emittedSpecial,
			TotalPrincipal:   emittedTotal,
			Balance:          money(newBalance),
		})

		balance = newBalance
		prev = date
	}

	return schedule
}

// regularPaymentAmount computes the per-period payment, once, up front.
// For annuity loans this is the total payment; for linear loans it is the
// principal portion. An explicit override wins unconditionally.
func (l *Loan) regularPaymentAmount() decimal.Decimal {
	if l.paymentOverride != nil {
		return *l.paymentOverride
	}
	if l.loanType == InterestOnly {
		return decimal.Zero
	}

	n := l.numPayments - l.interestOnly
	if n <= 0 {
		// Interest-only for the life of the loan.
		return decimal.Zero
	}
	periods := decimal.NewFromInt(int64(n))

	if l.loanType == Linear {
		return l.principal.Div(periods)
	}

	r := l.annualRate.Div(decimal.NewFromInt(int64(l.annualPayments)))
	if r.IsZero() {
		return l.principal.Div(periods)
	}
	// P * r(1+r)^n / ((1+r)^n - 1)
	compound := one.Add(r).Pow(periods)
	return l.principal.Mul(r).Mul(compound).Div(compound.Sub(one))
}
