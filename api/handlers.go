/*
handlers.go - HTTP API handlers for the amortization engine

PURPOSE:
  Exposes the loan engine via REST. Handles HTTP request/response and JSON
  serialization, then delegates to the loan package. Every request builds
  a fresh Loan and recomputes; nothing is stored between requests.

ENDPOINTS:
  POST /api/loans/schedule   Amortization schedule for one loan definition
  POST /api/loans/summary    Summary totals only
  POST /api/loans/analyze    Schedule + summary + IRR in one response
  GET  /api/conventions      Supported day-count convention identifiers

ERROR HANDLING:
  Errors are returned as JSON with appropriate HTTP status:
  - 400: malformed body, invalid loan terms or special payments
  - 500: never expected (the engine is total once terms validate)

SEE ALSO:
  - dto.go: Request/response data structures
  - server.go: Router setup and middleware
*/
package api

import (
	"encoding/json"
	"net/http"

	"github.com/fincalc/loan-engine/daycount"
	"github.com/fincalc/loan-engine/loan"
)

// Handler holds handler state. The engine is stateless, so there is none
// beyond the struct itself; the type exists for route wiring symmetry.
type Handler struct{}

// NewHandler creates a new handler.
func NewHandler() *Handler {
	return &Handler{}
}

// buildLoan turns a request body into a fully-registered Loan.
func buildLoan(req LoanRequest) (*loan.Loan, error) {
	l, err := loan.New(loan.Terms{
		LoanAmount:         req.LoanAmount,
		InterestRate:       req.InterestRate,
		LoanTerm:           req.LoanTerm,
		TermUnit:           loan.TermUnit(req.LoanTermUnit),
		StartDate:          req.StartDate,
		FirstPaymentDate:   req.FirstPaymentDate,
		EndOfMonth:         req.PaymentEndOfMonth,
		AnnualPayments:     req.AnnualPayments,
		InterestOnlyPeriod: req.InterestOnlyPeriod,
		Convention:         daycount.Convention(req.CompoundingMethod),
		Type:               loan.Type(req.LoanType),
		PaymentAmount:      req.PaymentAmount,
	})
	if err != nil {
		return nil, err
	}
	for _, sp := range req.SpecialPayments {
		err := l.AddSpecialPayment(sp.PaymentAmount, sp.FirstPaymentDate, sp.Term, sp.AnnualPayments, loan.TermUnit(sp.TermUnit))
		if err != nil {
			return nil, err
		}
	}
	return l, nil
}

func decodeLoan(w http.ResponseWriter, r *http.Request) (*loan.Loan, bool) {
	var req LoanRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return nil, false
	}
	l, err := buildLoan(req)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid loan definition", err)
		return nil, false
	}
	return l, true
}

// =============================================================================
// LOAN HANDLERS
// =============================================================================

// GetSchedule returns the amortization schedule.
func (h *Handler) GetSchedule(w http.ResponseWriter, r *http.Request) {
	l, ok := decodeLoan(w, r)
	if !ok {
		return
	}
	schedule := l.PaymentSchedule()
	dtos := make([]PaymentDTO, len(schedule))
	for i, p := range schedule {
		dtos[i] = toPaymentDTO(p)
	}
	writeJSON(w, http.StatusOK, dtos)
}

// GetSummary returns the loan summary.
func (h *Handler) GetSummary(w http.ResponseWriter, r *http.Request) {
	l, ok := decodeLoan(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, toSummaryDTO(l.Summary()))
}

// Analyze returns schedule, summary and IRR in one response.
func (h *Handler) Analyze(w http.ResponseWriter, r *http.Request) {
	l, ok := decodeLoan(w, r)
	if !ok {
		return
	}
	schedule := l.PaymentSchedule()
	dtos := make([]PaymentDTO, len(schedule))
	for i, p := range schedule {
		dtos[i] = toPaymentDTO(p)
	}
	writeJSON(w, http.StatusOK, ScheduleResponse{
		Schedule: dtos,
		Summary:  toSummaryDTO(l.Summary()),
		IRR:      l.InternalRateOfReturn().StringFixed(4),
	})
}

// ListConventions returns the supported day-count convention identifiers.
func (h *Handler) ListConventions(w http.ResponseWriter, r *http.Request) {
	conventions := daycount.Conventions()
	ids := make([]string, len(conventions))
	for i, c := range conventions {
		ids[i] = string(c)
	}
	writeJSON(w, http.StatusOK, ids)
}

// =============================================================================
// RESPONSE HELPERS
// =============================================================================

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message string, err error) {
	resp := ErrorResponse{Error: message}
	if err != nil {
		resp.Details = err.Error()
	}
	writeJSON(w, status, resp)
}
