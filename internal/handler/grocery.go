package handler

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/mstead/pantry/internal/catalog"
	"github.com/mstead/pantry/internal/model"
	"github.com/mstead/pantry/internal/store"
	"github.com/mstead/pantry/internal/websocket"
)

// GroceryHandler serves the grocery list CRUD routes and the purchase
// confirmation.
type GroceryHandler struct {
	store   *store.GroceryStore
	catalog *catalog.Catalog
	hub     *websocket.Hub
	logger  *slog.Logger
}

func NewGroceryHandler(gs *store.GroceryStore, cat *catalog.Catalog, hub *websocket.Hub, logger *slog.Logger) *GroceryHandler {
	return &GroceryHandler{store: gs, catalog: cat, hub: hub, logger: logger}
}

func (h *GroceryHandler) broadcast(msg websocket.Message) {
	if h.hub != nil {
		h.hub.Broadcast(msg)
	}
}

type groceryItemRequest struct {
	Name       string      `json:"name"`
	Unit       string      `json:"unit"`
	Category   string      `json:"category"`
	ExpiryDate *model.Date `json:"expiry_date"`
}

func (h *GroceryHandler) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.store.ListItems()
	if err != nil {
		writeStoreError(w, h.logger, "list items", err)
		return
	}
	if items == nil {
		items = []model.GroceryItem{}
	}
	writeJSON(w, http.StatusOK, items)
}

func (h *GroceryHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req groceryItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid JSON")
		return
	}

	req.Name = strings.TrimSpace(req.Name)
	req.Unit = strings.TrimSpace(req.Unit)

	// Fill in the category from the catalog when the client leaves it blank.
	if req.Category == "" {
		req.Category = h.catalog.Categorize(req.Name)
	}

	item, err := h.store.AddItem(req.Name, req.Unit, req.Category, req.ExpiryDate)
	if err != nil {
		writeStoreError(w, h.logger, "create item", err)
		return
	}

	h.broadcast(websocket.NewMessage("grocery", "created", item.Name))

	writeJSON(w, http.StatusCreated, item)
}

func (h *GroceryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")

	if err := h.store.RemoveItem(name); err != nil {
		writeStoreError(w, h.logger, "delete item", err)
		return
	}

	h.broadcast(websocket.NewMessage("grocery", "deleted", name))

	writeMessage(w, http.StatusOK, fmt.Sprintf("%s removed from the list", name))
}

func (h *GroceryHandler) Purchase(w http.ResponseWriter, r *http.Request) {
	count, err := h.store.PurchaseAll(time.Now().UTC())
	if err != nil {
		writeStoreError(w, h.logger, "purchase items", err)
		return
	}

	h.broadcast(websocket.NewMessage("grocery", "purchased", ""))

	writeMessage(w, http.StatusOK, fmt.Sprintf("purchase history updated, %d items cleared from the list", count))
}
