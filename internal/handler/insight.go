package handler

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/mstead/pantry/internal/remind"
	"github.com/mstead/pantry/internal/store"
	"github.com/mstead/pantry/internal/suggest"
)

// InsightHandler serves the derived views: missing-item suggestions,
// healthier alternatives, and expiry reminders. All three are read-only over
// the store.
type InsightHandler struct {
	store  *store.GroceryStore
	logger *slog.Logger
	now    func() time.Time
}

func NewInsightHandler(gs *store.GroceryStore, logger *slog.Logger) *InsightHandler {
	return &InsightHandler{store: gs, logger: logger, now: time.Now}
}

func (h *InsightHandler) Missing(w http.ResponseWriter, r *http.Request) {
	items, err := h.store.ListItems()
	if err != nil {
		writeStoreError(w, h.logger, "list items", err)
		return
	}
	history, err := h.store.ListHistory()
	if err != nil {
		writeStoreError(w, h.logger, "list history", err)
		return
	}

	writeJSON(w, http.StatusOK, map[string][]string{
		"suggestions": suggest.Missing(items, history, h.now()),
	})
}

func (h *InsightHandler) Healthier(w http.ResponseWriter, r *http.Request) {
	items, err := h.store.ListItems()
	if err != nil {
		writeStoreError(w, h.logger, "list items", err)
		return
	}

	writeJSON(w, http.StatusOK, map[string][]string{
		"suggestions": suggest.Healthier(items),
	})
}

func (h *InsightHandler) Expiry(w http.ResponseWriter, r *http.Request) {
	items, err := h.store.ListItems()
	if err != nil {
		writeStoreError(w, h.logger, "list items", err)
		return
	}

	writeJSON(w, http.StatusOK, map[string][]string{
		"reminders": remind.Expiring(items, h.now()),
	})
}
