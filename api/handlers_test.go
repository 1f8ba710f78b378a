package api_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fincalc/loan-engine/api"
)

func postJSON(t *testing.T, srv *httptest.Server, path string, body any) *http.Response {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)
	resp, err := http.Post(srv.URL+path, "application/json", bytes.NewReader(raw))
	require.NoError(t, err)
	return resp
}

func decodeBody[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	defer resp.Body.Close()
	var out T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func standardRequest() map[string]any {
	return map[string]any{
		"loan_amount":   200000,
		"interest_rate": 6.0,
		"loan_term":     30,
		"start_date":    "2022-01-01",
	}
}

func TestAPI_Schedule(t *testing.T) {
	// GIVEN a running server and a 30-year annuity loan definition
	srv := httptest.NewServer(api.NewRouter(api.NewHandler()))
	defer srv.Close()

	// WHEN requesting the schedule
	resp := postJSON(t, srv, "/api/loans/schedule", standardRequest())

	// THEN the full schedule comes back, start entry included
	require.Equal(t, http.StatusOK, resp.StatusCode)
	schedule := decodeBody[[]api.PaymentDTO](t, resp)
	require.Len(t, schedule, 361)

	assert.Equal(t, "2022-01-01", schedule[0].Date)
	assert.Equal(t, "200000.00", schedule[0].LoanBalance)
	assert.Equal(t, "1199.10", schedule[1].PaymentAmount)
	assert.Equal(t, "0.00", schedule[360].LoanBalance)
}

func TestAPI_Summary(t *testing.T) {
	srv := httptest.NewServer(api.NewRouter(api.NewHandler()))
	defer srv.Close()

	resp := postJSON(t, srv, "/api/loans/summary", standardRequest())

	require.Equal(t, http.StatusOK, resp.StatusCode)
	summary := decodeBody[api.SummaryDTO](t, resp)
	assert.Equal(t, "200000.00", summary.LoanAmount)
	assert.Equal(t, "200000.00", summary.TotalPrincipalAmount)
	assert.Equal(t, "431476.54", summary.TotalPaymentAmount)
	assert.Equal(t, "231476.54", summary.TotalInterestAmount)
	assert.Equal(t, "0.00", summary.ResidualLoanBalance)
}

func TestAPI_Analyze(t *testing.T) {
	srv := httptest.NewServer(api.NewRouter(api.NewHandler()))
	defer srv.Close()

	req := standardRequest()
	req["special_payments"] = []map[string]any{
		{
			"payment_amount":     10000,
			"first_payment_date": "2023-01-01",
			"term":               1,
			"annual_payments":    1,
		},
	}
	resp := postJSON(t, srv, "/api/loans/analyze", req)

	require.Equal(t, http.StatusOK, resp.StatusCode)
	analysis := decodeBody[api.ScheduleResponse](t, resp)
	assert.NotEmpty(t, analysis.Schedule)
	assert.Equal(t, "200000.00", analysis.Summary.TotalPrincipalAmount)
	assert.NotEmpty(t, analysis.IRR)
}

func TestAPI_RejectsMalformedBody(t *testing.T) {
	srv := httptest.NewServer(api.NewRouter(api.NewHandler()))
	defer srv.Close()

	resp, err := http.Post(srv.URL+"/api/loans/schedule", "application/json",
		bytes.NewReader([]byte("{not json")))
	require.NoError(t, err)

	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	e := decodeBody[api.ErrorResponse](t, resp)
	assert.Equal(t, "Invalid request body", e.Error)
}

func TestAPI_RejectsInvalidTerms(t *testing.T) {
	srv := httptest.NewServer(api.NewRouter(api.NewHandler()))
	defer srv.Close()

	req := standardRequest()
	req["loan_amount"] = -5
	resp := postJSON(t, srv, "/api/loans/schedule", req)

	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	e := decodeBody[api.ErrorResponse](t, resp)
	assert.Equal(t, "Invalid loan definition", e.Error)
	assert.Contains(t, e.Details, "LoanAmount")
}

func TestAPI_ListConventions(t *testing.T) {
	srv := httptest.NewServer(api.NewRouter(api.NewHandler()))
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/api/conventions")
	require.NoError(t, err)

	require.Equal(t, http.StatusOK, resp.StatusCode)
	ids := decodeBody[[]string](t, resp)
	assert.Len(t, ids, 8)
	assert.Contains(t, ids, "30E/360")
	assert.Contains(t, ids, "A/A ISDA")
}

func TestAPI_Health(t *testing.T) {
	srv := httptest.NewServer(api.NewRouter(api.NewHandler()))
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/health")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
