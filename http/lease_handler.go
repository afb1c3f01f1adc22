package http

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"lease-amortizer/domain"
	"lease-amortizer/repository"
	"lease-amortizer/service"
)

type LeaseHandler struct {
	service *service.LeaseService
}

func NewLeaseHandler(service *service.LeaseService) *LeaseHandler {
	return &LeaseHandler{service: service}
}

// CalculateLease accepts a JSON LeaseInput. The rate is a fraction.
func (h *LeaseHandler) CalculateLease(w http.ResponseWriter, r *http.Request) {

	var input domain.LeaseInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	h.calculate(w, r, input)
}

// CalculateLeaseForm accepts the five raw form fields. The rate is a percentage.
func (h *LeaseHandler) CalculateLeaseForm(w http.ResponseWriter, r *http.Request) {

	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form body", http.StatusBadRequest)
		return
	}

	input, err := service.ParseLeaseForm(domain.LeaseForm{
		LeaseTerm:           r.PostFormValue("lease_term"),
		AnnualPayment:       r.PostFormValue("annual_payment"),
		ResidualPayment:     r.PostFormValue("residual_payment"),
		InterestRatePercent: r.PostFormValue("interest_rate"),
		InitialDirectCost:   r.PostFormValue("initial_direct_cost"),
	})
	if err != nil {
		writeError(w, err)
		return
	}

	h.calculate(w, r, input)
}

func (h *LeaseHandler) calculate(w http.ResponseWriter, r *http.Request, input domain.LeaseInput) {
	record, err := h.service.CalculateRecord(r.Context(), input)
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Location", "/lease/calculations/"+record.ID.String())
	writeJSON(w, http.StatusOK, record.Result)
}

func (h *LeaseHandler) GetCalculation(w http.ResponseWriter, r *http.Request) {

	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "invalid calculation id", http.StatusBadRequest)
		return
	}

	record, err := h.service.Get(r.Context(), id)
	if errors.Is(err, repository.ErrNotFound) {
		writeJSON(w, http.StatusNotFound, errorResponse{Error: err.Error()})
		return
	}
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, record)
}

type errorResponse struct {
	Error string `json:"error"`
	Kind  string `json:"kind,omitempty"`
	Field string `json:"field,omitempty"`
}

// writeError maps calculation errors to 422 and anything else to 500.
func writeError(w http.ResponseWriter, err error) {
	var calcErr *domain.CalculationError
	if errors.As(err, &calcErr) {
		writeJSON(w, http.StatusUnprocessableEntity, errorResponse{
			Error: calcErr.Error(),
			Kind:  calcErr.Kind(),
			Field: calcErr.Field,
		})
		return
	}

	slog.Error("request failed", "error", err)
	writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal server error"})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
