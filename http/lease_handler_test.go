package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"lease-amortizer/domain"
	"lease-amortizer/repository"
	"lease-amortizer/service"
)

const scenarioBody = `{
	"lease_term_years": 3,
	"annual_payment": 10000,
	"residual_payment": 2000,
	"annual_interest_rate": 0.10,
	"initial_direct_cost": 500
}`

func newTestRouter(t *testing.T, capacity int) http.Handler {
	t.Helper()

	repo := repository.NewLeaseRepositoryMemory()
	svc := service.NewLeaseService(repo, repository.NewMemoryCache(0))
	handler := NewLeaseHandler(svc)

	limiter := NewRateLimiter(capacity, time.Minute)
	t.Cleanup(limiter.Stop)

	return NewRouter(handler, limiter, []string{"*"})
}

func decodeResult(t *testing.T, w *httptest.ResponseRecorder) domain.LeaseResult {
	t.Helper()

	var result domain.LeaseResult
	if err := json.NewDecoder(w.Body).Decode(&result); err != nil {
		t.Fatalf("failed to decode result: %v", err)
	}
	return result
}

func TestCalculateLeaseHandler_OK(t *testing.T) {

	router := newTestRouter(t, 5)

	req := httptest.NewRequest(
		http.MethodPost,
		"/lease/calculate",
		bytes.NewBufferString(scenarioBody),
	)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if !strings.HasPrefix(w.Header().Get("Location"), "/lease/calculations/") {
		t.Errorf("unexpected Location header %q", w.Header().Get("Location"))
	}
	if w.Header().Get(requestIDHeader) == "" {
		t.Error("expected a request id header")
	}

	result := decodeResult(t, w)
	if got := result.InitialLeaseLiability.StringFixed(2); got != "26371.15" {
		t.Errorf("expected liability 26371.15, got %s", got)
	}
	if len(result.Schedule) != 3 {
		t.Fatalf("expected 3 schedule rows, got %d", len(result.Schedule))
	}
	if !result.Schedule[2].EndingBalance.Equal(decimal.NewFromInt(2000)) {
		t.Errorf("expected final balance 2000, got %s", result.Schedule[2].EndingBalance)
	}
}

func TestCalculateLeaseHandler_MethodNotAllowed(t *testing.T) {

	router := newTestRouter(t, 5)

	req := httptest.NewRequest(http.MethodGet, "/lease/calculate", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	if w.Code != http.StatusMethodNotAllowed {
		t.Errorf("expected 405, got %d", w.Code)
	}
}

func TestCalculateLeaseHandler_BadRequest(t *testing.T) {

	router := newTestRouter(t, 5)

	req := httptest.NewRequest(
		http.MethodPost,
		"/lease/calculate",
		bytes.NewBufferString(`{invalid json}`),
	)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}

func TestCalculateLeaseHandler_ValidationErrors(t *testing.T) {

	tests := []struct {
		name      string
		body      string
		wantKind  string
		wantField string
	}{
		{
			name:      "zero rate",
			body:      `{"lease_term_years": 3, "annual_payment": 10000, "residual_payment": 2000, "annual_interest_rate": 0, "initial_direct_cost": 500}`,
			wantKind:  "invalid_rate",
			wantField: "annual_interest_rate",
		},
		{
			name:      "zero term",
			body:      `{"lease_term_years": 0, "annual_payment": 10000, "residual_payment": 2000, "annual_interest_rate": 0.1, "initial_direct_cost": 500}`,
			wantKind:  "invalid_term",
			wantField: "lease_term_years",
		},
		{
			name:      "negative payment",
			body:      `{"lease_term_years": 3, "annual_payment": -1, "residual_payment": 2000, "annual_interest_rate": 0.1, "initial_direct_cost": 500}`,
			wantKind:  "invalid_input",
			wantField: "annual_payment",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newTestRouter(t, 5)

			req := httptest.NewRequest(
				http.MethodPost,
				"/lease/calculate",
				bytes.NewBufferString(tt.body),
			)
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			if w.Code != http.StatusUnprocessableEntity {
				t.Fatalf("expected 422, got %d", w.Code)
			}

			var resp errorResponse
			if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
				t.Fatalf("failed to decode error: %v", err)
			}
			if resp.Kind != tt.wantKind {
				t.Errorf("expected kind %q, got %q", tt.wantKind, resp.Kind)
			}
			if resp.Field != tt.wantField {
				t.Errorf("expected field %q, got %q", tt.wantField, resp.Field)
			}
		})
	}
}

func TestCalculateLeaseFormHandler(t *testing.T) {

	router := newTestRouter(t, 5)

	form := url.Values{}
	form.Set("lease_term", "3")
	form.Set("annual_payment", "R10,000")
	form.Set("residual_payment", "2000")
	form.Set("interest_rate", "10")
	form.Set("initial_direct_cost", "500.00")

	req := httptest.NewRequest(
		http.MethodPost,
		"/lease/calculate/form",
		strings.NewReader(form.Encode()),
	)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	result := decodeResult(t, w)
	if got := result.RightOfUseAsset.StringFixed(2); got != "26871.15" {
		t.Errorf("expected right-of-use asset 26871.15, got %s", got)
	}
}

func TestCalculateLeaseFormHandler_InvalidNumber(t *testing.T) {

	router := newTestRouter(t, 5)

	form := url.Values{}
	form.Set("lease_term", "three")
	form.Set("annual_payment", "10000")
	form.Set("residual_payment", "2000")
	form.Set("interest_rate", "10")
	form.Set("initial_direct_cost", "500")

	req := httptest.NewRequest(
		http.MethodPost,
		"/lease/calculate/form",
		strings.NewReader(form.Encode()),
	)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	if w.Code != http.StatusUnprocessableEntity {
		t.Errorf("expected 422, got %d", w.Code)
	}
}

func TestGetCalculationHandler(t *testing.T) {

	router := newTestRouter(t, 5)

	req := httptest.NewRequest(
		http.MethodPost,
		"/lease/calculate",
		bytes.NewBufferString(scenarioBody),
	)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	location := w.Header().Get("Location")

	req = httptest.NewRequest(http.MethodGet, location, nil)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var record domain.CalculationRecord
	if err := json.NewDecoder(w.Body).Decode(&record); err != nil {
		t.Fatalf("failed to decode record: %v", err)
	}
	if "/lease/calculations/"+record.ID.String() != location {
		t.Errorf("record id %s does not match %s", record.ID, location)
	}
	if record.Input.LeaseTermYears != 3 {
		t.Errorf("expected stored term 3, got %d", record.Input.LeaseTermYears)
	}
}

func TestGetCalculationHandler_Errors(t *testing.T) {

	tests := []struct {
		name string
		path string
		want int
	}{
		{"unknown id", "/lease/calculations/0b6e2c5e-8f5c-4a53-9b7e-3f1f4d2a9c11", http.StatusNotFound},
		{"malformed id", "/lease/calculations/not-a-uuid", http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newTestRouter(t, 5)

			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			if w.Code != tt.want {
				t.Errorf("expected %d, got %d", tt.want, w.Code)
			}
		})
	}
}

func TestCalculateLeaseHandler_RateLimited(t *testing.T) {

	router := newTestRouter(t, 2)

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(
			http.MethodPost,
			"/lease/calculate",
			bytes.NewBufferString(scenarioBody),
		)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		codes = append(codes, w.Code)
	}

	if codes[0] != http.StatusOK || codes[1] != http.StatusOK {
		t.Fatalf("expected first two requests to pass, got %v", codes)
	}
	if codes[2] != http.StatusTooManyRequests {
		t.Errorf("expected 429 on third request, got %d", codes[2])
	}
}

func TestHealth(t *testing.T) {

	router := newTestRouter(t, 1)

	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	}
}

func TestCORSPreflight(t *testing.T) {

	router := newTestRouter(t, 5)

	req := httptest.NewRequest(http.MethodOptions, "/lease/calculate", nil)
	req.Header.Set("Origin", "http://example.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Errorf("expected wildcard allow-origin, got %q", got)
	}
}
