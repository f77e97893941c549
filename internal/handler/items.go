package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/tasknest/tasknest/internal/domain"
	"github.com/tasknest/tasknest/internal/service"
)

// ItemHandler handles item CRUD HTTP requests. All routes require an
// authenticated user in the request context.
type ItemHandler struct {
	items *service.ItemService
}

// NewItemHandler creates a new ItemHandler.
func NewItemHandler(items *service.ItemService) *ItemHandler {
	return &ItemHandler{items: items}
}

type itemRequest struct {
	Title     string `json:"title"`
	Checked   bool   `json:"checked"`
	Favourite bool   `json:"favourite"`
}

// HandleList returns the user's items in priority order.
// GET /api/items
func (h *ItemHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	user := UserFromContext(r.Context())

	items, err := h.items.List(r.Context(), user)
	if err != nil {
		slog.Error("list items", "error", err, "user", user.Username)
		writeError(w, http.StatusInternalServerError, "An unexpected error occurred.")
		return
	}

	writeJSON(w, http.StatusOK, toItemDTOs(items))
}

// HandleAdd creates a new item owned by the authenticated user. Any owner
// information in the request body is ignored.
// POST /api/items
func (h *ItemHandler) HandleAdd(w http.ResponseWriter, r *http.Request) {
	user := UserFromContext(r.Context())

	var req itemRequest
	if err := readJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body.")
		return
	}

	item := &domain.Item{
		Title:     req.Title,
		Checked:   req.Checked,
		Favourite: req.Favourite,
	}
	if err := h.items.Add(r.Context(), user, item); err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		slog.Error("add item", "error", err, "user", user.Username)
		writeError(w, http.StatusInternalServerError, "An unexpected error occurred.")
		return
	}

	writeJSON(w, http.StatusOK, toItemDTO(item))
}

// HandleUpdate updates title, checked, and favourite of an item the user owns.
// PUT /api/items/{id}
func (h *ItemHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	user := UserFromContext(r.Context())

	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid item id.")
		return
	}

	var req itemRequest
	if err := readJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body.")
		return
	}

	patch := &domain.Item{
		Title:     req.Title,
		Checked:   req.Checked,
		Favourite: req.Favourite,
	}
	updated, err := h.items.Update(r.Context(), user, id, patch)
	if err != nil {
		h.writeItemError(w, err, "update item", user)
		return
	}

	writeJSON(w, http.StatusOK, toItemDTO(updated))
}

// HandleDelete removes an item the user owns.
// DELETE /api/items/{id}
func (h *ItemHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	user := UserFromContext(r.Context())

	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid item id.")
		return
	}

	if err := h.items.Delete(r.Context(), user, id); err != nil {
		h.writeItemError(w, err, "delete item", user)
		return
	}

	w.WriteHeader(http.StatusOK)
}

// HandleReorder returns the user's items freshly sorted by priority.
// POST /api/items/reorder
func (h *ItemHandler) HandleReorder(w http.ResponseWriter, r *http.Request) {
	user := UserFromContext(r.Context())

	items, err := h.items.Reorder(r.Context(), user)
	if err != nil {
		slog.Error("reorder items", "error", err, "user", user.Username)
		writeError(w, http.StatusInternalServerError, "An unexpected error occurred.")
		return
	}

	writeJSON(w, http.StatusOK, toItemDTOs(items))
}

func (h *ItemHandler) writeItemError(w http.ResponseWriter, err error, op string, user *domain.User) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, "Item not found.")
	case errors.Is(err, domain.ErrForbidden):
		writeError(w, http.StatusForbidden, "You don't have permission to modify this item.")
	default:
		slog.Error(op, "error", err, "user", user.Username)
		writeError(w, http.StatusInternalServerError, "An unexpected error occurred.")
	}
}
