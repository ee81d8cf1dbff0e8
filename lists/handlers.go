package lists

import (
	"net/http"

	"github.com/user/todo-go/apperror"
	"github.com/user/todo-go/auth"
	"github.com/user/todo-go/httputil"
)

// Handlers wraps the list Service with HTTP handlers.
type Handlers struct {
	service Service
}

// NewHandlers creates a new Handlers instance.
func NewHandlers(service Service) *Handlers {
	return &Handlers{service: service}
}

// requireUserID reads the authenticated identity set by the middleware.
func requireUserID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		httputil.WriteError(w, r, apperror.NewAuthError("not authenticated", nil))
		return 0, false
	}
	return userID, true
}

// HandleCreate godoc
// @Summary Create a list
// @Description Creates a new list owned by the authenticated user.
// @Tags lists
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param listBody body lists.CreateListRequest true "List to create"
// @Success 201 {object} lists.List "List created"
// @Failure 401 {object} apperror.ErrorResponse "Not authenticated"
// @Failure 422 {object} apperror.ErrorResponse "Empty or missing title"
// @Router /api/lists [post]
func (h *Handlers) HandleCreate() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := requireUserID(w, r)
		if !ok {
			return
		}

		var req CreateListRequest
		if err := httputil.DecodeJSON(r, &req); err != nil {
			httputil.WriteError(w, r, err)
			return
		}
		if err := httputil.CheckStruct(&req); err != nil {
			httputil.WriteError(w, r, err)
			return
		}

		list, err := h.service.Create(r.Context(), userID, req)
		if err != nil {
			httputil.WriteError(w, r, err)
			return
		}

		httputil.WriteJSON(w, http.StatusCreated, list)
	}
}

// HandleList godoc
// @Summary List own lists
// @Description Returns the authenticated user's lists in creation order.
// @Tags lists
// @Produce json
// @Security BearerAuth
// @Success 200 {array} lists.List "The caller's lists"
// @Failure 401 {object} apperror.ErrorResponse "Not authenticated"
// @Router /api/lists [get]
func (h *Handlers) HandleList() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := requireUserID(w, r)
		if !ok {
			return
		}

		result, err := h.service.List(r.Context(), userID)
		if err != nil {
			httputil.WriteError(w, r, err)
			return
		}

		httputil.WriteJSON(w, http.StatusOK, result)
	}
}

// HandleGet godoc
// @Summary Get a list
// @Description Returns one of the authenticated user's lists by id.
// @Tags lists
// @Produce json
// @Security BearerAuth
// @Param id path int true "List ID"
// @Success 200 {object} lists.List "The list"
// @Failure 401 {object} apperror.ErrorResponse "Not authenticated"
// @Failure 404 {object} apperror.ErrorResponse "List absent or not owned"
// @Router /api/lists/{id} [get]
func (h *Handlers) HandleGet() http.HandlerFunc {
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

		list, err := h.service.Get(r.Context(), userID, listID)
		if err != nil {
			httputil.WriteError(w, r, err)
			return
		}

		httputil.WriteJSON(w, http.StatusOK, list)
	}
}

// HandleUpdate godoc
// @Summary Update a list
// @Description Partially updates a list; omitted fields are unchanged.
// @Tags lists
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "List ID"
// @Param listBody body lists.UpdateListRequest true "Fields to update"
// @Success 200 {object} lists.List "The updated list"
// @Failure 401 {object} apperror.ErrorResponse "Not authenticated"
// @Failure 404 {object} apperror.ErrorResponse "List absent or not owned"
// @Failure 422 {object} apperror.ErrorResponse "Empty title"
// @Router /api/lists/{id} [put]
func (h *Handlers) HandleUpdate() http.HandlerFunc {
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

		var req UpdateListRequest
		if err := httputil.DecodeJSON(r, &req); err != nil {
			httputil.WriteError(w, r, err)
			return
		}
		if err := httputil.CheckStruct(&req); err != nil {
			httputil.WriteError(w, r, err)
			return
		}

		list, err := h.service.Update(r.Context(), userID, listID, req)
		if err != nil {
			httputil.WriteError(w, r, err)
			return
		}

		httputil.WriteJSON(w, http.StatusOK, list)
	}
}

// HandleDelete godoc
// @Summary Delete a list
// @Description Deletes a list and all of its items atomically.
// @Tags lists
// @Security BearerAuth
// @Param id path int true "List ID"
// @Success 204 "List and items deleted"
// @Failure 401 {object} apperror.ErrorResponse "Not authenticated"
// @Failure 404 {object} apperror.ErrorResponse "List absent or not owned"
// @Router /api/lists/{id} [delete]
func (h *Handlers) HandleDelete() http.HandlerFunc {
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

		if err := h.service.Delete(r.Context(), userID, listID); err != nil {
			httputil.WriteError(w, r, err)
			return
		}

		httputil.WriteJSON(w, http.StatusNoContent, nil)
	}
}
