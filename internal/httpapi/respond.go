package httpapi

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/satno7/superlists/internal/models"
	"github.com/satno7/superlists/internal/storage"
	"github.com/satno7/superlists/internal/validation"
)

type itemResponse struct {
	ID       string `json:"id"`
	Text     string `json:"text"`
	Position int    `json:"position"`
}

type listResponse struct {
	ID      string         `json:"id"`
	Name    string         `json:"name"`
	Owner   string         `json:"owner,omitempty"`
	Sharees []string       `json:"sharees,omitempty"`
	Items   []itemResponse `json:"items"`
}

type errorResponse struct {
	Error string `json:"error"`
	Field string `json:"field,omitempty"`
}

func toListResponse(list *models.List) listResponse {
	items := make([]itemResponse, len(list.Items))
	for i, item := range list.Items {
		items[i] = itemResponse{ID: item.ID, Text: item.Text, Position: item.Position}
	}
	return listResponse{
		ID:      list.ID,
		Name:    list.Name(),
		Owner:   list.OwnerEmail,
		Sharees: list.Sharees,
		Items:   items,
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("Failed to encode response", "error", err)
	}
}

// writeError maps domain errors to HTTP status codes. Validation failures
// carry the offending field so the client can attach the message to the
// right input.
func writeError(w http.ResponseWriter, err error) {
	var verr *validation.Error
	switch {
	case errors.As(err, &verr):
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: verr.Message, Field: verr.Field})
	case errors.Is(err, storage.ErrListNotFound):
		writeJSON(w, http.StatusNotFound, errorResponse{Error: err.Error()})
	case errors.Is(err, storage.ErrUserNotFound):
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
	default:
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal error"})
	}
}
