package snapshot

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/MrJamesThe3rd/payday/internal/snapshot"
)

type Handler struct {
	svc *snapshot.Service
}

func NewHandler(svc *snapshot.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/export", h.export)
	r.Post("/import", h.importSnapshot)
}

func (h *Handler) export(w http.ResponseWriter, r *http.Request) {
	filename := fmt.Sprintf("payday-%s.json", time.Now().Format("20060102"))

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))

	if err := h.svc.Export(r.Context(), w); err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
}

func (h *Handler) importSnapshot(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Import(r.Context(), r.Body); err != nil {
		if errors.Is(err, snapshot.ErrUnsupportedVersion) {
			http.Error(w, err.Error(), http.StatusUnprocessableEntity)
			return
		}

		http.Error(w, err.Error(), http.StatusBadRequest)

		return
	}

	w.WriteHeader(http.StatusNoContent)
}
