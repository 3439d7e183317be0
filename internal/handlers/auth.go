package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"strings"

	"github.com/gorilla/sessions"

	"printshop-storefront/internal/middleware"
	"printshop-storefront/internal/models"
	"printshop-storefront/internal/services"
)

// AuthHandler handles login, registration and logout. Credentials are
// verified by the store API; this server only keeps the issued token in
// the cookie session.
type AuthHandler struct {
	authService services.AuthServiceInterface
	store       sessions.Store
}

// NewAuthHandler creates a new authentication handler
func NewAuthHandler(authService services.AuthServiceInterface, store sessions.Store) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		store:       store,
	}
}

// Login exchanges credentials for a store API token
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	req.Email = strings.TrimSpace(req.Email)
	if req.Email == "" || req.Password == "" {
		respondError(w, http.StatusBadRequest, "email and password are required")
		return
	}

	token, user, err := h.authService.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		respondUpstreamError(w, err, "login failed")
		return
	}

	if err := h.saveCredentials(w, r, token, user); err != nil {
		log.Printf("Failed to save session: %v", err)
		respondError(w, http.StatusInternalServerError, "failed to save session")
		return
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{"user": user})
}

// Register creates an account on the store API and signs the user in
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name     string `json:"name"`
		Email    string `json:"email"`
		Password string `json:"password"`
		Phone    string `json:"phone"`
	}
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.TrimSpace(req.Email)
	if req.Name == "" || req.Email == "" || req.Password == "" {
		respondError(w, http.StatusBadRequest, "name, email and password are required")
		return
	}

	token, user, err := h.authService.Register(r.Context(), req.Name, req.Email, req.Password, req.Phone)
	if err != nil {
		respondUpstreamError(w, err, "registration failed")
		return
	}

	if err := h.saveCredentials(w, r, token, user); err != nil {
		log.Printf("Failed to save session: %v", err)
		respondError(w, http.StatusInternalServerError, "failed to save session")
		return
	}
	respondJSON(w, http.StatusCreated, map[string]interface{}{"user": user})
}

// Logout drops the stored token. Purely local: the store API keeps no
// session to revoke.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	session, err := h.store.Get(r, middleware.SessionName)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "session error")
		return
	}

	delete(session.Values, middleware.SessionKeyToken)
	delete(session.Values, middleware.SessionKeyUser)
	if err := session.Save(r, w); err != nil {
		log.Printf("Failed to save session: %v", err)
		respondError(w, http.StatusInternalServerError, "failed to save session")
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// Me returns the authenticated user's profile
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUserFromContext(r.Context())
	if user == nil {
		respondError(w, http.StatusUnauthorized, "authentication required")
		return
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{"user": user})
}

func (h *AuthHandler) saveCredentials(w http.ResponseWriter, r *http.Request, token string, user *models.User) error {
	session, err := h.store.Get(r, middleware.SessionName)
	if err != nil {
		return err
	}

	session.Values[middleware.SessionKeyToken] = token
	if profile, err := json.Marshal(user); err == nil {
		session.Values[middleware.SessionKeyUser] = string(profile)
	}
	return session.Save(r, w)
}
