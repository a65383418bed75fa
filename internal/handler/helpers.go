package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/mstead/pantry/internal/store"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// writeMessage writes the standard {"message": ...} body used for
// confirmations and every error response.
func writeMessage(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"message": msg})
}

// writeStoreError maps store errors onto HTTP statuses: validation failures
// to 400, unknown items to 404, duplicate adds to 409, and anything else to a
// logged 500.
func writeStoreError(w http.ResponseWriter, logger *slog.Logger, op string, err error) {
	var verr *store.ValidationError
	switch {
	case errors.As(err, &verr):
		writeMessage(w, http.StatusBadRequest, verr.Error())
	case errors.Is(err, store.ErrNotFound):
		writeMessage(w, http.StatusNotFound, err.Error())
	case errors.Is(err, store.ErrDuplicate):
		writeMessage(w, http.StatusConflict, err.Error())
	default:
		logger.Error(op, "error", err)
		writeMessage(w, http.StatusInternalServerError, "failed to "+op)
	}
}
