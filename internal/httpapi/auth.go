package httpapi

import (
	"encoding/json"
	"net/http"
)

type sendLoginEmailRequest struct {
	Email string `json:"email"`
}

type loginResponse struct {
	Authenticated bool   `json:"authenticated"`
	Email         string `json:"email,omitempty"`
	SessionToken  string `json:"session_token,omitempty"`
}

// handleSendLoginEmail issues a login token and mails the link.
func (s *Server) handleSendLoginEmail(w http.ResponseWriter, r *http.Request) {
	var req sendLoginEmailRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Email == "" {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "email is required", Field: "email"})
		return
	}

	if err := s.auth.SendLoginEmail(r.Context(), req.Email); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusAccepted)
}

// handleLogin redeems the uid from the login link. An unknown or used uid
// is not an error: the response just says the caller stays anonymous.
func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	uid := r.URL.Query().Get("uid")

	user, err := s.auth.Redeem(r.Context(), uid)
	if err != nil {
		writeError(w, err)
		return
	}
	if user == nil {
		writeJSON(w, http.StatusOK, loginResponse{Authenticated: false})
		return
	}

	sessionToken, err := s.jwt.Generate(user)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, loginResponse{
		Authenticated: true,
		Email:         user.Email,
		SessionToken:  sessionToken,
	})
}
