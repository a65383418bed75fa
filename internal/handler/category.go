package handler

import (
	"net/http"

	"github.com/mstead/pantry/internal/catalog"
)

// CategoryHandler serves the read-only category browser routes.
type CategoryHandler struct {
	catalog *catalog.Catalog
}

func NewCategoryHandler(cat *catalog.Catalog) *CategoryHandler {
	return &CategoryHandler{catalog: cat}
}

func (h *CategoryHandler) List(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.catalog.List())
}

// Items returns the item names of one category. Unknown categories come back
// as an empty array rather than 404 so the browser UI degrades gracefully.
func (h *CategoryHandler) Items(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.catalog.Items(r.PathValue("category")))
}
