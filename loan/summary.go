package loan

import "github.com/shopspring/decimal"

// Summary reduces the current schedule into totals. It is recomputed on
// every call, never cached.
func (l *Loan) Summary() Summary {
	var totalPayment, totalInterest, totalPrincipal decimal.Decimal
	for _, p := range l.PaymentSchedule() {
		totalPayment = totalPayment.Add(p.Amount)
		totalInterest = totalInterest.Add(p.Interest)
		totalPrincipal = totalPrincipal.Add(p.TotalPrincipal)
	}

	ratio := decimal.Zero
	if !totalPrincipal.IsZero() {
		ratio = money(totalPayment.Div(totalPrincipal))
	}

	return Summary{
		LoanAmount:           money(l.principal),
		TotalPayment:         money(totalPayment),
		TotalPrincipal:       money(totalPrincipal),
		TotalInterest:        money(totalInterest),
		ResidualBalance:      money(l.principal.Sub(totalPrincipal)),
		RepaymentToPrincipal: ratio,
	}
}
