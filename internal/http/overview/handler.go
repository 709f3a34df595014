package overview

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/MrJamesThe3rd/payday/internal/audit"
	"github.com/MrJamesThe3rd/payday/internal/dates"
	"github.com/MrJamesThe3rd/payday/internal/overview"
	"github.com/MrJamesThe3rd/payday/internal/paycheck"
)

type Handler struct {
	svc       *overview.Service
	paychecks *paycheck.Service
	audits    *audit.Service
}

func NewHandler(svc *overview.Service, paychecks *paycheck.Service, audits *audit.Service) *Handler {
	return &Handler{svc: svc, paychecks: paychecks, audits: audits}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.get)
	r.Put("/paycheck-date", h.setPaycheckDate)
	r.Post("/cycle-reset", h.cycleReset)
	r.Get("/audit", h.auditLog)
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	view, err := h.svc.Load(r.Context())
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toViewResponse(view)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

type setPaycheckDateRequest struct {
	LastPaycheckDate dates.Date `json:"last_paycheck_date"`
}

func (h *Handler) setPaycheckDate(w http.ResponseWriter, r *http.Request) {
	var req setPaycheckDateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if req.LastPaycheckDate.IsZero() {
		http.Error(w, "last_paycheck_date is required", http.StatusBadRequest)
		return
	}

	if err := h.paychecks.SetLastPaycheckDate(r.Context(), req.LastPaycheckDate); err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

type cycleResetRequest struct {
	Confirmed bool `json:"confirmed"`
}

func (h *Handler) cycleReset(w http.ResponseWriter, r *http.Request) {
	var req cycleResetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.svc.StartNewCycle(r.Context(), req.Confirmed); err != nil {
		if errors.Is(err, overview.ErrConfirmationRequired) {
			http.Error(w, err.Error(), http.StatusPreconditionRequired)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) auditLog(w http.ResponseWriter, r *http.Request) {
	limit := 0

	if s := r.URL.Query().Get("limit"); s != "" {
		if n, err := strconv.Atoi(s); err == nil {
			limit = n
		}
	}

	entries, err := h.audits.List(r.Context(), limit)
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toAuditResponseList(entries)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
