/*
irr.go - Effective-rate estimation (XIRR)

PURPOSE:
  Solves for the internal rate of return of the loan's cash flows: the
  disbursement as an outflow at the start date, every scheduled payment as
  an inflow. Cash flows are irregularly spaced (special payments interpose
  events), so this is XIRR: Newton-Raphson on the net-present-value
  function discounted by (1+rate)^(days/365).

ROBUSTNESS:
  - iteration cap of 100; the last estimate is returned on non-convergence
  - a zero derivative stops iteration instead of dividing by it
  - degenerate cash flows (all one sign, or fewer than two points) yield 0

PRECISION NOTE:
  IRR is an analytical estimate, not an auditable monetary figure, so the
  root finding runs in float64. Cent-exact decimal arithmetic stays
  confined to the schedule itself.
*/
package loan

import (
	"math"

	"github.com/shopspring/decimal"
)

const (
	irrGuess         = 0.1
	irrMaxIterations = 100
	irrTolerance     = 1e-6
)

// InternalRateOfReturn returns the annualized internal rate of return of
// the loan's cash flows, in percent. Degenerate cash flows return zero.
func (l *Loan) InternalRateOfReturn() decimal.Decimal {
	schedule := l.PaymentSchedule()
	if len(schedule) < 2 {
		return decimal.Zero
	}

	times := make([]float64, len(schedule))
	values := make([]float64, len(schedule))
	first := schedule[0].Date
	for i, p := range schedule {
		times[i] = p.Date.Sub(first).Hours() / 24 / 365
		values[i] = p.Amount.InexactFloat64()
	}
	values[0] = -l.principal.InexactFloat64()

	anyPositive, anyNegative := false, false
	for _, v := range values {
		anyPositive = anyPositive || v > 0
		anyNegative = anyNegative || v < 0
	}
	if !anyPositive || !anyNegative {
		return decimal.Zero
	}

	rate := newtonRaphsonXIRR(times, values)
	return decimal.NewFromFloat(rate * 100)
}

// newtonRaphsonXIRR finds a root of the XNPV function, returning the best
// available estimate if it does not converge within the iteration cap.
func newtonRaphsonXIRR(times, values []float64) float64 {
	rate := irrGuess
	for i := 0; i < irrMaxIterations; i++ {
		npv, derivative := xnpv(rate, times, values)
		if math.Abs(npv) < irrTolerance {
			return rate
		}
		if derivative == 0 || math.IsNaN(derivative) || math.IsInf(derivative, 0) {
			break
		}
		rate -= npv / derivative
	}
	return rate
}

// xnpv evaluates the net present value and its closed-form derivative at
// the given rate. times are year offsets from the first cash flow.
func xnpv(rate float64, times, values []float64) (npv, derivative float64) {
	for i, v := range values {
		t := times[i]
		discount := math.Pow(1+rate, t)
		npv += v / discount
		derivative -= t * v / math.Pow(1+rate, t+1)
	}
	return npv, derivative
}
