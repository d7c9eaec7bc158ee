package httpapi

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/satno7/superlists/internal/middleware"
	"github.com/satno7/superlists/internal/service"
)

type createListRequest struct {
	Text string `json:"text"`
}

type addItemRequest struct {
	Text string `json:"text"`
}

type shareRequest struct {
	Sharee string `json:"sharee"`
}

// handleCreateList creates a list with its first item. If the request
// carries a valid session the new list is owned by that user; anonymous
// requests create ownerless lists.
func (s *Server) handleCreateList(w http.ResponseWriter, r *http.Request) {
	var req createListRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid JSON body"})
		return
	}

	owner := middleware.GetEmail(r.Context())
	list, err := s.lists.CreateList(r.Context(), req.Text, owner)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, toListResponse(list))
}

func (s *Server) handleGetList(w http.ResponseWriter, r *http.Request) {
	list, err := s.lists.GetList(r.Context(), chi.URLParam(r, "listID"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toListResponse(list))
}

func (s *Server) handleAddItem(w http.ResponseWriter, r *http.Request) {
	var req addItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid JSON body"})
		return
	}

	item, err := s.lists.AddItem(r.Context(), chi.URLParam(r, "listID"), req.Text)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, itemResponse{ID: item.ID, Text: item.Text, Position: item.Position})
}

// handleDeleteList removes a list. Owned lists may only be deleted by their
// owner; ownerless lists are deletable by anyone holding the id, matching
// the capability-style read model.
func (s *Server) handleDeleteList(w http.ResponseWriter, r *http.Request) {
	listID := chi.URLParam(r, "listID")
	list, err := s.lists.GetList(r.Context(), listID)
	if err != nil {
		writeError(w, err)
		return
	}

	if !service.CanModify(list, middleware.GetEmail(r.Context())) {
		writeJSON(w, http.StatusForbidden, errorResponse{Error: "only the owner may delete this list"})
		return
	}

	if err := s.lists.DeleteList(r.Context(), listID); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleShare(w http.ResponseWriter, r *http.Request) {
	var req shareRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid JSON body"})
		return
	}

	if err := s.lists.Share(r.Context(), chi.URLParam(r, "listID"), req.Sharee); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleMyLists(w http.ResponseWriter, r *http.Request) {
	email := middleware.GetEmail(r.Context())
	lists, err := s.lists.MyLists(r.Context(), email)
	if err != nil {
		writeError(w, err)
		return
	}

	out := make([]listResponse, len(lists))
	for i, list := range lists {
		out[i] = toListResponse(list)
	}
	writeJSON(w, http.StatusOK, out)
}
