package recurring

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/payday/internal/dates"
	"github.com/MrJamesThe3rd/payday/internal/expense"
	"github.com/MrJamesThe3rd/payday/internal/recurring"
)

const defaultUpcomingCount = 3

type Handler struct {
	svc *recurring.Service
}

func NewHandler(svc *recurring.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.create)
	r.Get("/", h.list)
	r.Get("/{id}", h.get)
	r.Patch("/{id}", h.update)
	r.Delete("/{id}", h.delete)
	r.Post("/{id}/generate", h.generate)
	r.Get("/{id}/upcoming", h.upcoming)
	r.Post("/from-expense/{expenseID}", h.convert)
}

type createTemplateRequest struct {
	Name             string              `json:"name"`
	BaseAmount       decimal.Decimal     `json:"base_amount"`
	Frequency        recurring.Frequency `json:"frequency"`
	IntervalValue    int                 `json:"interval_value,omitempty"`
	StartDate        dates.Date          `json:"start_date"`
	Category         string              `json:"category"`
	AccountID        *uuid.UUID          `json:"account_id,omitempty"`
	Notes            string              `json:"notes,omitempty"`
	IsVariableAmount bool                `json:"is_variable_amount,omitempty"`
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req createTemplateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	t, err := h.svc.Create(r.Context(), recurring.CreateParams{
		Name:             req.Name,
		BaseAmount:       req.BaseAmount,
		Frequency:        req.Frequency,
		IntervalValue:    req.IntervalValue,
		StartDate:        req.StartDate,
		Category:         req.Category,
		AccountID:        req.AccountID,
		Notes:            req.Notes,
		IsVariableAmount: req.IsVariableAmount,
	})
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)

	if err := json.NewEncoder(w).Encode(toResponse(t)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	activeOnly := r.URL.Query().Get("active") == "true"

	templates, err := h.svc.List(r.Context(), activeOnly)
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponseList(templates)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	t, err := h.svc.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, recurring.ErrNotFound) {
			http.Error(w, "template not found", http.StatusNotFound)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponse(t)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

type updateTemplateRequest struct {
	Name             *string              `json:"name,omitempty"`
	BaseAmount       *decimal.Decimal     `json:"base_amount,omitempty"`
	Frequency        *recurring.Frequency `json:"frequency,omitempty"`
	IntervalValue    *int                 `json:"interval_value,omitempty"`
	Category         *string              `json:"category,omitempty"`
	AccountID        *uuid.UUID           `json:"account_id,omitempty"`
	Notes            *string              `json:"notes,omitempty"`
	IsActive         *bool                `json:"is_active,omitempty"`
	IsVariableAmount *bool                `json:"is_variable_amount,omitempty"`
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	var req updateTemplateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	t, err := h.svc.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, recurring.ErrNotFound) {
			http.Error(w, "template not found", http.StatusNotFound)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	if req.Name != nil {
		t.Name = *req.Name
	}

	if req.BaseAmount != nil {
		t.BaseAmount = *req.BaseAmount
	}

	if req.Frequency != nil {
		t.Frequency = *req.Frequency
	}

	if req.IntervalValue != nil {
		t.IntervalValue = *req.IntervalValue
	}

	if req.Category != nil {
		t.Category = *req.Category
	}

	if req.AccountID != nil {
		t.AccountID = req.AccountID
	}

	if req.Notes != nil {
		t.Notes = *req.Notes
	}

	if req.IsActive != nil {
		t.IsActive = *req.IsActive
	}

	if req.IsVariableAmount != nil {
		t.IsVariableAmount = *req.IsVariableAmount
	}

	if err := h.svc.Update(r.Context(), t); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponse(t)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	if err := h.svc.Delete(r.Context(), id); err != nil {
		if errors.Is(err, recurring.ErrNotFound) {
			http.Error(w, "template not found", http.StatusNotFound)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) generate(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	created, err := h.svc.GenerateNext(r.Context(), id)
	if err != nil {
		if errors.Is(err, recurring.ErrNotFound) {
			http.Error(w, "template not found", http.StatusNotFound)
			return
		}

		http.Error(w, err.Error(), http.StatusInternalServerError)

		return
	}

	if created == nil {
		// Inactive template, or the instance already existed.
		w.WriteHeader(http.StatusNoContent)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)

	if err := json.NewEncoder(w).Encode(toGeneratedResponse(created)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) upcoming(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	count := defaultUpcomingCount

	if s := r.URL.Query().Get("count"); s != "" {
		if n, err := strconv.Atoi(s); err == nil && n > 0 {
			count = n
		}
	}

	t, err := h.svc.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, recurring.ErrNotFound) {
			http.Error(w, "template not found", http.StatusNotFound)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(t.UpcomingDates(count)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

type convertRequest struct {
	Frequency        recurring.Frequency `json:"frequency"`
	IntervalValue    int                 `json:"interval_value,omitempty"`
	Notes            string              `json:"notes,omitempty"`
	IsVariableAmount bool                `json:"is_variable_amount,omitempty"`
}

func (h *Handler) convert(w http.ResponseWriter, r *http.Request) {
	expenseID, err := uuid.Parse(chi.URLParam(r, "expenseID"))
	if err != nil {
		http.Error(w, "invalid expense id", http.StatusBadRequest)
		return
	}

	var req convertRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	t, err := h.svc.ConvertToRecurring(r.Context(), expenseID, recurring.ConvertParams{
		Frequency:        req.Frequency,
		IntervalValue:    req.IntervalValue,
		Notes:            req.Notes,
		IsVariableAmount: req.IsVariableAmount,
	})
	if err != nil {
		switch {
		case errors.Is(err, expense.ErrNotFound):
			http.Error(w, "expense not found", http.StatusNotFound)
		case errors.Is(err, recurring.ErrInvalidFrequency):
			http.Error(w, err.Error(), http.StatusBadRequest)
		default:
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}

		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)

	if err := json.NewEncoder(w).Encode(toResponse(t)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
