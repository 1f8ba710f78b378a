/*
dto.go - Data Transfer Objects for API requests and responses

PURPOSE:
  Defines the JSON structures for API communication, decoupling the loan
  package's domain model from the external API contract.

NAMING CONVENTION:
  - *DTO: Response types returned to clients
  - *Request: Request body types from clients

MONEY ENCODING:
  Monetary fields are emitted as fixed two-decimal strings so clients never
  see binary-float artifacts. Request amounts accept JSON numbers or
  strings (decimal.Decimal unmarshals both).

SEE ALSO:
  - handlers.go: Uses these types
*/
package api

import (
	"github.com/shopspring/decimal"

	"github.com/fincalc/loan-engine/loan"
)

// =============================================================================
// REQUEST TYPES
// =============================================================================

// LoanRequest mirrors loan.Terms plus the special payments to register.
type LoanRequest struct {
	LoanAmount         decimal.Decimal         `json:"loan_amount"`
	InterestRate       decimal.Decimal         `json:"interest_rate"`
	LoanTerm           int                     `json:"loan_term"`
	LoanTermUnit       string                  `json:"loan_term_unit,omitempty"`
	StartDate          string                  `json:"start_date"`
	FirstPaymentDate   string                  `json:"first_payment_date,omitempty"`
	PaymentEndOfMonth  *bool                   `json:"payment_end_of_month,omitempty"`
	AnnualPayments     int                     `json:"annual_payments,omitempty"`
	InterestOnlyPeriod int                     `json:"interest_only_period,omitempty"`
	CompoundingMethod  string                  `json:"compounding_method,omitempty"`
	LoanType           string                  `json:"loan_type,omitempty"`
	PaymentAmount      *decimal.Decimal        `json:"payment_amount,omitempty"`
	SpecialPayments    []SpecialPaymentRequest `json:"special_payments,omitempty"`
}

// SpecialPaymentRequest registers one recurring extra-payment stream.
type SpecialPaymentRequest struct {
	PaymentAmount    decimal.Decimal `json:"payment_amount"`
	FirstPaymentDate string          `json:"first_payment_date"`
	Term             int             `json:"term"`
	TermUnit         string          `json:"term_unit,omitempty"`
	AnnualPayments   int             `json:"annual_payments"`
}

// =============================================================================
// RESPONSE TYPES
// =============================================================================

// PaymentDTO is one schedule entry.
type PaymentDTO struct {
	Date             string `json:"date"`
	PaymentAmount    string `json:"payment_amount"`
	InterestAmount   string `json:"interest_amount"`
	PrincipalAmount  string `json:"principal_amount"`
	SpecialPrincipal string `json:"special_principal_amount"`
	TotalPrincipal   string `json:"total_principal_amount"`
	LoanBalance      string `json:"loan_balance_amount"`
}

// SummaryDTO aggregates a schedule.
type SummaryDTO struct {
	LoanAmount           string `json:"loan_amount"`
	TotalPaymentAmount   string `json:"total_payment_amount"`
	TotalPrincipalAmount string `json:"total_principal_amount"`
	TotalInterestAmount  string `json:"total_interest_amount"`
	ResidualLoanBalance  string `json:"residual_loan_balance"`
	RepaymentToPrincipal string `json:"repayment_to_principal"`
}

// ScheduleResponse is the full analysis of one loan definition.
type ScheduleResponse struct {
	Schedule []PaymentDTO `json:"schedule"`
	Summary  SummaryDTO   `json:"summary"`
	IRR      string       `json:"internal_rate_of_return"`
}

// ErrorResponse is the JSON error envelope.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// =============================================================================
// CONVERSIONS
// =============================================================================

func toPaymentDTO(p loan.Payment) PaymentDTO {
	return PaymentDTO{
		Date:             p.Date.Format(loan.DateLayout),
		PaymentAmount:    p.Amount.StringFixed(2),
		InterestAmount:   p.Interest.StringFixed(2),
		PrincipalAmount:  p.Principal.StringFixed(2),
		SpecialPrincipal: p.SpecialPrincipal.StringFixed(2),
		TotalPrincipal:   p.TotalPrincipal.StringFixed(2),
		LoanBalance:      p.Balance.StringFixed(2),
	}
}

func toSummaryDTO(s loan.Summary) SummaryDTO {
	return SummaryDTO{
		LoanAmount:           s.LoanAmount.StringFixed(2),
		TotalPaymentAmount:   s.TotalPayment.StringFixed(2),
		TotalPrincipalAmount: s.TotalPrincipal.StringFixed(2),
		TotalInterestAmount:  s.TotalInterest.StringFixed(2),
		ResidualLoanBalance:  s.ResidualBalance.StringFixed(2),
		RepaymentToPrincipal: s.RepaymentToPrincipal.StringFixed(2),
	}
}
