package sheet

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/gridwire/gridwire/backend-go/internal/auth"
	"github.com/gridwire/gridwire/backend-go/internal/typeid"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

type createRequest struct {
	Name string `json:"name"`
}

type inviteRequest struct {
	Email string `json:"email"`
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	userID := auth.UserIDFromContext(r.Context())

	var req createRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Name == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "name is required"})
		return
	}

	sh, err := h.service.Create(r.Context(), req.Name, userID)
	if err != nil {
		slog.Error("create sheet", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal error"})
		return
	}

	writeJSON(w, http.StatusCreated, sh)
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	userID := auth.UserIDFromContext(r.Context())

	sheets, err := h.service.List(r.Context(), userID)
	if err != nil {
		slog.Error("list sheets", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal error"})
		return
	}

	writeJSON(w, http.StatusOK, sheets)
}

// sheetIDFrom pulls the sheet ID route variable and checks its shape.
// Malformed IDs are indistinguishable from missing sheets to the caller,
// but skipping the database round-trip for them is worth the check.
func sheetIDFrom(w http.ResponseWriter, r *http.Request) (string, bool) {
	sheetID := mux.Vars(r)["sheetId"]
	if err := typeid.Validate(sheetID, typeid.PrefixSheet); err != nil {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "sheet not found"})
		return "", false
	}
	return sheetID, true
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	userID := auth.UserIDFromContext(r.Context())
	sheetID, ok := sheetIDFrom(w, r)
	if !ok {
		return
	}

	sh, err := h.service.Get(r.Context(), sheetID, userID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, sh)
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	userID := auth.UserIDFromContext(r.Context())
	sheetID, ok := sheetIDFrom(w, r)
	if !ok {
		return
	}

	if err := h.service.Delete(r.Context(), sheetID, userID); err != nil {
		writeServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) Invite(w http.ResponseWriter, r *http.Request) {
	userID := auth.UserIDFromContext(r.Context())
	sheetID, ok := sheetIDFrom(w, r)
	if !ok {
		return
	}

	var req inviteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Email == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "email is required"})
		return
	}

	member, err := h.service.Invite(r.Context(), sheetID, userID, req.Email)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, member)
}

func (h *Handler) ListMembers(w http.ResponseWriter, r *http.Request) {
	userID := auth.UserIDFromContext(r.Context())
	sheetID, ok := sheetIDFrom(w, r)
	if !ok {
		return
	}

	members, err := h.service.ListMembers(r.Context(), sheetID, userID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, members)
}

func (h *Handler) RemoveMember(w http.ResponseWriter, r *http.Request) {
	requesterID := auth.UserIDFromContext(r.Context())
	sheetID, ok := sheetIDFrom(w, r)
	if !ok {
		return
	}

	if err := h.service.RemoveMember(r.Context(), sheetID, requesterID, mux.Vars(r)["userId"]); err != nil {
		writeServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrNotFound):
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "sheet not found"})
	case errors.Is(err, ErrForbidden):
		writeJSON(w, http.StatusForbidden, map[string]string{"error": "forbidden"})
	case errors.Is(err, ErrNotMember):
		writeJSON(w, http.StatusForbidden, map[string]string{"error": "not a sheet member"})
	default:
		slog.Error("sheet request failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal error"})
	}
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}
