/*
Package loan computes amortization schedules for loans under configurable
repayment conventions, day-count conventions, payment frequencies, and
ad-hoc extra principal payments.

KEY CONCEPTS IN THIS FILE (types.go):
  - Terms: constructor input, fixed for the life of a Loan
  - Loan: the single mutable object; mutates only via AddSpecialPayment
  - Payment: one immutable schedule entry
  - Summary: totals derived from a schedule

DESIGN PRINCIPLES:
  1. Precision: decimal.Decimal for every monetary value and rate.
     Cent rounding is banker's rounding, applied at record emission.
  2. Mutable registry, pure recomputation: the special-payment list is the
     only mutable state. Schedule, summary, and IRR are recomputed from it
     on every call, so there is no cache to invalidate.
  3. Validation at the boundary: New and AddSpecialPayment reject bad input
     with typed errors; the engine itself assumes validated state.

USAGE:
  l, err := loan.New(loan.Terms{
      LoanAmount:   decimal.NewFromInt(200000),
      InterestRate: decimal.NewFromFloat(6.0), // percent
      LoanTerm:     30,
      StartDate:    "2022-01-01",
  })
  schedule := l.PaymentSchedule()
  summary := l.Summary()

SEE ALSO:
  - schedule.go: the amortization engine
  - daycount package: interest accrual fractions
*/
package loan

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/fincalc/loan-engine/daycount"
)

// =============================================================================
// IDENTIFIERS
// =============================================================================

// Type selects how principal and interest are repaid.
type Type string

const (
	Annuity      Type = "annuity"       // fixed total payment per period
	Linear       Type = "linear"        // fixed principal portion per period
	InterestOnly Type = "interest_only" // principal untouched for the full term
)

// TermUnit is the unit of a term length.
type TermUnit string

const (
	TermYears  TermUnit = "Y"
	TermMonths TermUnit = "M"
)

// DateLayout is the wire format for all dates.
const DateLayout = "2006-01-02"

// =============================================================================
// TERMS - Constructor input
// =============================================================================

// Terms describes a loan. Zero values select the documented defaults, so
// the minimal useful Terms is {LoanAmount, InterestRate, LoanTerm, StartDate}.
type Terms struct {
	// LoanAmount is the principal. Must be positive.
	LoanAmount decimal.Decimal

	// InterestRate is the nominal annual rate in percent (6.0 means 6%).
	// Must be non-negative.
	InterestRate decimal.Decimal

	// LoanTerm is the duration in TermUnit units. Must be >= 1.
	LoanTerm int

	// TermUnit defaults to years.
	TermUnit TermUnit

	// StartDate is the disbursement date, YYYY-MM-DD.
	StartDate string

	// FirstPaymentDate optionally fixes the first regular payment date,
	// YYYY-MM-DD. Must not be before StartDate.
	FirstPaymentDate string

	// EndOfMonth anchors regular payments to the last calendar day of the
	// month. nil means true.
	EndOfMonth *bool

	// AnnualPayments is the number of payments per year: 1, 2, 4 or 12.
	// Zero means 12.
	AnnualPayments int

	// InterestOnlyPeriod is the number of initial payments consisting
	// solely of interest. Must not exceed the total payment count.
	InterestOnlyPeriod int

	// Convention is the day-count convention. Empty means 30E/360.
	Convention daycount.Convention

	// Type is the amortization type. Empty means annuity.
	Type Type

	// PaymentAmount optionally overrides the computed regular payment.
	PaymentAmount *decimal.Decimal
}

// =============================================================================
// LOAN - The engine's only mutable object
// =============================================================================

// Loan holds validated, normalized terms plus the registered special
// payments. It is not safe for concurrent mutation: callers must serialize
// AddSpecialPayment against schedule reads on the same instance.
type Loan struct {
	principal       decimal.Decimal
	annualRate      decimal.Decimal // fraction, not percent
	start           time.Time
	firstPayment    *time.Time
	endOfMonth      bool
	annualPayments  int
	numPayments     int
	stepMonths      int
	interestOnly    int
	convention      daycount.Convention
	loanType        Type
	paymentOverride *decimal.Decimal

	specials   []SpecialPayment
	expansions [][]SpecialPaymentEvent
}

// =============================================================================
// SPECIAL PAYMENTS
// =============================================================================

// SpecialPayment is a recurring extra principal-only payment stream.
type SpecialPayment struct {
	Amount    decimal.Decimal
	FirstDate time.Time
	Term      int
	TermUnit  TermUnit
	PerYear   int
}

// SpecialPaymentEvent is one dated occurrence of a special payment.
type SpecialPaymentEvent struct {
	Date   time.Time
	Amount decimal.Decimal
}

// =============================================================================
// PAYMENT - One schedule entry
// =============================================================================

// Payment is one entry of an amortization schedule. All amounts are
// quantized to cents and satisfy, exactly:
//
//	TotalPrincipal == Principal + SpecialPrincipal
//	Amount         == TotalPrincipal + Interest
//	Balance        == previous Balance - TotalPrincipal
type Payment struct {
	Date             time.Time
	Amount           decimal.Decimal
	Interest         decimal.Decimal
	Principal        decimal.Decimal
	SpecialPrincipal decimal.Decimal
	TotalPrincipal   decimal.Decimal
	Balance          decimal.Decimal
}

// =============================================================================
// SUMMARY
// =============================================================================

// Summary aggregates a schedule into totals.
type Summary struct {
	LoanAmount           decimal.Decimal
	TotalPayment         decimal.Decimal
	TotalPrincipal       decimal.Decimal
	TotalInterest        decimal.Decimal
	ResidualBalance      decimal.Decimal
	RepaymentToPrincipal decimal.Decimal
}

// =============================================================================
// MONEY HELPERS
// =============================================================================

var (
	one  = decimal.NewFromInt(1)
	cent = decimal.New(1, -2)
)

// money quantizes to cent precision using banker's rounding.
func money(d decimal.Decimal) decimal.Decimal {
	return d.RoundBank(2)
}
