package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/tasknest/tasknest/internal/domain"
	"github.com/tasknest/tasknest/internal/service"
)

// ProfileHandler handles user profile HTTP requests.
type ProfileHandler struct {
	profiles *service.ProfileService
}

// NewProfileHandler creates a new ProfileHandler.
func NewProfileHandler(profiles *service.ProfileService) *ProfileHandler {
	return &ProfileHandler{profiles: profiles}
}

// HandleGetProfile returns the authenticated user's profile.
// GET /api/user/profile
func (h *ProfileHandler) HandleGetProfile(w http.ResponseWriter, r *http.Request) {
	user := UserFromContext(r.Context())

	profile := h.profiles.Get(r.Context(), user)
	writeJSON(w, http.StatusOK, ProfileDTO{
		Username:  profile.Username,
		Email:     profile.Email,
		ListTitle: profile.ListTitle,
	})
}

// HandleUpdateListTitle stores a new list title for the authenticated user.
// PUT /api/user/list-title
// Request:  {"listTitle":"..."}
// Response: {"listTitle":"...","message":"..."}
func (h *ProfileHandler) HandleUpdateListTitle(w http.ResponseWriter, r *http.Request) {
	user := UserFromContext(r.Context())

	var req struct {
		ListTitle string `json:"listTitle"`
	}
	if err := readJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body.")
		return
	}

	stored, err := h.profiles.UpdateListTitle(r.Context(), user, req.ListTitle)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			writeError(w, http.StatusBadRequest, "List title cannot be empty")
			return
		}
		slog.Error("update list title", "error", err, "user", user.Username)
		writeError(w, http.StatusInternalServerError, "An unexpected error occurred.")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"listTitle": stored,
		"message":   "List title updated successfully",
	})
}
