package items

import (
	"net/http"

	"github.com/user/todo-go/apperror"
	"github.com/user/todo-go/auth"
	"github.com/user/todo-go/httputil"
)

// Handlers wraps the item Service with HTTP handlers. The create and list
// handlers are mounted under /api/lists/{id}/items; update and delete are
// mounted under /api/items/{id}.
type Handlers struct {
	service Service
}

// NewHandlers creates a new Handlers instance.
func NewHandlers(service Service) *Handlers {
	return &Handlers{service: service}
}

func requireUserID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		httputil.WriteError(w, r, apperror.NewAuthError("not authenticated", nil))
		return 0, false
	}
	return userID, true
}

// HandleCreate godoc
// @Summary Create an item
// @Description Creates an item under one of the authenticated user's lists.
// @Tags items
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "List ID"
// @Param itemBody body items.CreateItemRequest true "Item to create"
// @Success 201 {object} items.Item "Item created"
// @Failure 401 {object} apperror.ErrorResponse "Not authenticated"
// @Failure 404 {object} apperror.ErrorResponse "Parent list absent or not owned"
// @Failure 422 {object} apperror.ErrorResponse "Empty or missing title"
// @Router /api/lists/{id}/items [post]
func (h *Handlers) HandleCreate() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := requireUserID(w, r)
		if !ok {
			return
		}
		listID, err := httputil.URLParamID(r, "id")
		if err != nil {
			httputil.WriteError(w, r, err)
			return
		}

		var req CreateItemRequest
		if err := httputil.DecodeJSON(r, &req); err != nil {
			httputil.WriteError(w, r, err)
			return
		}
		if err := httputil.CheckStruct(&req); err != nil {
			httputil.WriteError(w, r, err)
			return
		}

		item, err := h.service.Create(r.Context(), userID, listID, req)
		if err != nil {
			httputil.WriteError(w, r, err)
			return
		}

		httputil.WriteJSON(w, http.StatusCreated, item)
	}
}

// HandleList godoc
// @Summary List items of a list
// @Description Returns all items of an owned list in creation order.
// @Tags items
// @Produce json
// @Security BearerAuth
// @Param id path int true "List ID"
// @Success 200 {array} items.Item "The list's items"
// @Failure 401 {object} apperror.ErrorResponse "Not authenticated"
// @Failure 404 {object} apperror.ErrorResponse "Parent list absent or not owned"
// @Router /api/lists/{id}/items [get]
func (h *Handlers) HandleList() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := requireUserID(w, r)
		if !ok {
			return
		}
		listID, err := httputil.URLParamID(r, "id")
		if err != nil {
			httputil.WriteError(w, r, err)
			return
		}

		result, err := h.service.List(r.Context(), userID, listID)
		if err != nil {
			httputil.WriteError(w, r, err)
			return
		}

		httputil.WriteJSON(w, http.StatusOK, result)
	}
}

// HandleUpdate godoc
// @Summary Update an item
// @Description Partially updates an item; omitted fields are unchanged.
// @Tags items
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Item ID"
// @Param itemBody body items.UpdateItemRequest true "Fields to update"
// @Success 200 {object} items.Item "The updated item"
// @Failure 401 {object} apperror.ErrorResponse "Not authenticated"
// @Failure 404 {object} apperror.ErrorResponse "Item absent or not owned"
// @Failure 422 {object} apperror.ErrorResponse "Empty title"
// @Router /api/items/{id} [put]
func (h *Handlers) HandleUpdate() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := requireUserID(w, r)
		if !ok {
			return
		}
		itemID, err := httputil.URLParamID(r, "id")
		if err != nil {
			httputil.WriteError(w, r, err)
			return
		}

		var req UpdateItemRequest
		if err := httputil.DecodeJSON(r, &req); err != nil {
			httputil.WriteError(w, r, err)
			return
		}
		if err := httputil.CheckStruct(&req); err != nil {
			httputil.WriteError(w, r, err)
			return
		}

		item, err := h.service.Update(r.Context(), userID, itemID, req)
		if err != nil {
			httputil.WriteError(w, r, err)
			return
		}

		httputil.WriteJSON(w, http.StatusOK, item)
	}
}

// HandleDelete godoc
// @Summary Delete an item
// @Description Deletes exactly one item.
// @Tags items
// @Security BearerAuth
// @Param id path int true "Item ID"
// @Success 204 "Item deleted"
// @Failure 401 {object} apperror.ErrorResponse "Not authenticated"
// @Failure 404 {object} apperror.ErrorResponse "Item absent or not owned"
// @Router /api/items/{id} [delete]
func (h *Handlers) HandleDelete() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := requireUserID(w, r)
		if !ok {
			return
		}
		itemID, err := httputil.URLParamID(r, "id")
		if err != nil {
			httputil.WriteError(w, r, err)
			return
		}

		if err := h.service.Delete(r.Context(), userID, itemID); err != nil {
			httputil.WriteError(w, r, err)
			return
		}

		httputil.WriteJSON(w, http.StatusNoContent, nil)
	}
}
