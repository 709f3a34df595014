package account

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/payday/internal/account"
	"github.com/MrJamesThe3rd/payday/internal/dates"
)

type Handler struct {
	svc *account.Service
}

func NewHandler(svc *account.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.create)
	r.Get("/", h.list)
	r.Get("/default", h.getDefault)
	r.Get("/{id}", h.get)
	r.Patch("/{id}", h.update)
	r.Delete("/{id}", h.delete)
	r.Post("/{id}/default", h.setDefault)
	r.Get("/{id}/projected-balance", h.projectedBalance)
}

type creditCardRequest struct {
	CreditLimit          *decimal.Decimal `json:"credit_limit,omitempty"`
	InterestRate         *decimal.Decimal `json:"interest_rate,omitempty"`
	MinimumPayment       *decimal.Decimal `json:"minimum_payment,omitempty"`
	DueDate              *dates.Date      `json:"due_date,omitempty"`
	StatementClosingDate *dates.Date      `json:"statement_closing_date,omitempty"`
}

func (r *creditCardRequest) toDetails() *account.CreditCardDetails {
	if r == nil {
		return nil
	}

	return &account.CreditCardDetails{
		CreditLimit:          r.CreditLimit,
		InterestRate:         r.InterestRate,
		MinimumPayment:       r.MinimumPayment,
		DueDate:              r.DueDate,
		StatementClosingDate: r.StatementClosingDate,
	}
}

type createAccountRequest struct {
	Name           string             `json:"name"`
	Type           account.Type       `json:"type"`
	CurrentBalance decimal.Decimal    `json:"current_balance"`
	CreditCard     *creditCardRequest `json:"credit_card,omitempty"`
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req createAccountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	a, err := h.svc.Create(r.Context(), account.CreateParams{
		Name:           req.Name,
		Type:           req.Type,
		CurrentBalance: req.CurrentBalance,
		CreditCard:     req.CreditCard.toDetails(),
	})
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)

	if err := json.NewEncoder(w).Encode(toResponse(a)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	accounts, err := h.svc.List(r.Context())
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponseList(accounts)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	a, err := h.svc.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, account.ErrNotFound) {
			http.Error(w, "account not found", http.StatusNotFound)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponse(a)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

type updateAccountRequest struct {
	Name           *string            `json:"name,omitempty"`
	Type           *account.Type      `json:"type,omitempty"`
	CurrentBalance *decimal.Decimal   `json:"current_balance,omitempty"`
	CreditCard     *creditCardRequest `json:"credit_card,omitempty"`
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	var req updateAccountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	a, err := h.svc.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, account.ErrNotFound) {
			http.Error(w, "account not found", http.StatusNotFound)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	if req.Name != nil {
		a.Name = *req.Name
	}

	if req.Type != nil {
		a.Type = *req.Type
	}

	if req.CurrentBalance != nil {
		a.CurrentBalance = *req.CurrentBalance
	}

	if req.CreditCard != nil {
		a.CreditCard = req.CreditCard.toDetails()
	}

	if err := h.svc.Update(r.Context(), a); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponse(a)); err != nil {
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
		switch {
		case errors.Is(err, account.ErrNotFound):
			http.Error(w, "account not found", http.StatusNotFound)
		case errors.Is(err, account.ErrInUse):
			http.Error(w, err.Error(), http.StatusConflict)
		default:
			http.Error(w, "internal error", http.StatusInternalServerError)
		}

		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) getDefault(w http.ResponseWriter, r *http.Request) {
	a, err := h.svc.GetDefault(r.Context())
	if err != nil {
		if errors.Is(err, account.ErrNotFound) {
			http.Error(w, "no default account", http.StatusNotFound)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponse(a)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) setDefault(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	if err := h.svc.SetDefault(r.Context(), id); err != nil {
		if errors.Is(err, account.ErrNotFound) {
			http.Error(w, "account not found", http.StatusNotFound)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) projectedBalance(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	balance, err := h.svc.ProjectedBalance(r.Context(), id)
	if err != nil {
		if errors.Is(err, account.ErrNotFound) {
			http.Error(w, "account not found", http.StatusNotFound)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", "application/json")

	resp := struct {
		AccountID        uuid.UUID       `json:"account_id"`
		ProjectedBalance decimal.Decimal `json:"projected_balance"`
	}{AccountID: id, ProjectedBalance: balance}

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
