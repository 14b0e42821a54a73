package auth

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
)

// minPasswordLen is enforced on signup only; logins accept whatever the
// account was created with.
const minPasswordLen = 8

// Handler exposes the two credential endpoints. Both take a JSON body and
// answer with an AuthResult on success or an {"error": ...} object.
type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// credentials is the shared request body for signup and login; login
// ignores the display name.
type credentials struct {
	Email       string `json:"email"`
	Password    string `json:"password"`
	DisplayName string `json:"displayName"`
}

func (c *credentials) normalize() {
	c.Email = strings.ToLower(strings.TrimSpace(c.Email))
	c.DisplayName = strings.TrimSpace(c.DisplayName)
}

// checkSignup returns a user-facing complaint, or "" when the body is
// acceptable. Email validation is deliberately shallow; the address is
// only ever used as a login name.
func (c *credentials) checkSignup() string {
	switch {
	case !strings.Contains(c.Email, "@"):
		return "a valid email address is required"
	case len(c.Password) < minPasswordLen:
		return fmt.Sprintf("password must be at least %d characters", minPasswordLen)
	case c.DisplayName == "":
		return "a display name is required"
	}
	return ""
}

func (c *credentials) checkLogin() string {
	if c.Email == "" || c.Password == "" {
		return "email and password are required"
	}
	return ""
}

func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	creds, ok := decodeCredentials(w, r)
	if !ok {
		return
	}
	if complaint := creds.checkSignup(); complaint != "" {
		respondError(w, http.StatusBadRequest, complaint)
		return
	}

	result, err := h.service.Register(r.Context(), creds.Email, creds.Password, creds.DisplayName)
	switch {
	case errors.Is(err, ErrEmailTaken):
		respondError(w, http.StatusConflict, "that email is already registered")
	case err != nil:
		slog.Error("signup failed", "error", err)
		respondError(w, http.StatusInternalServerError, "internal error")
	default:
		respond(w, http.StatusCreated, result)
	}
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	creds, ok := decodeCredentials(w, r)
	if !ok {
		return
	}
	if complaint := creds.checkLogin(); complaint != "" {
		respondError(w, http.StatusBadRequest, complaint)
		return
	}

	result, err := h.service.Login(r.Context(), creds.Email, creds.Password)
	switch {
	case errors.Is(err, ErrInvalidCredentials):
		// Same answer for an unknown email and a wrong password.
		respondError(w, http.StatusUnauthorized, "wrong email or password")
	case err != nil:
		slog.Error("login failed", "error", err)
		respondError(w, http.StatusInternalServerError, "internal error")
	default:
		respond(w, http.StatusOK, result)
	}
}

func decodeCredentials(w http.ResponseWriter, r *http.Request) (credentials, bool) {
	var creds credentials
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		respondError(w, http.StatusBadRequest, "request body must be JSON")
		return credentials{}, false
	}
	creds.normalize()
	return creds, true
}

func respond(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func respondError(w http.ResponseWriter, status int, msg string) {
	respond(w, status, map[string]string{"error": msg})
}
