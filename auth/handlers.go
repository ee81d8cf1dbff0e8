package auth

import (
	"net/http"

	"github.com/user/todo-go/apperror"
	"github.com/user/todo-go/httputil"
)

// Handlers wraps the auth Service with HTTP handlers.
type Handlers struct {
	service Service
}

// NewHandlers creates a new Handlers instance.
func NewHandlers(service Service) *Handlers {
	return &Handlers{service: service}
}

// HandleRegister godoc
// @Summary Register a new user
// @Description Creates an account with a unique username and a hashed password.
// @Tags auth
// @Accept json
// @Produce json
// @Param registerBody body auth.RegisterRequest true "Registration details"
// @Success 201 {object} auth.UserResponse "User created"
// @Failure 409 {object} apperror.ErrorResponse "Username already registered"
// @Failure 422 {object} apperror.ErrorResponse "Invalid username or password shape"
// @Failure 500 {object} apperror.ErrorResponse "Internal server error"
// @Router /api/auth/register [post]
func (h *Handlers) HandleRegister() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req RegisterRequest
		if err := httputil.DecodeJSON(r, &req); err != nil {
			httputil.WriteError(w, r, err)
			return
		}
		if err := httputil.CheckStruct(&req); err != nil {
			httputil.WriteError(w, r, err)
			return
		}

		user, err := h.service.Register(r.Context(), req)
		if err != nil {
			httputil.WriteError(w, r, err)
			return
		}

		httputil.WriteJSON(w, http.StatusCreated, UserResponse{
			ID:       user.ID,
			Username: user.Username,
		})
	}
}

// HandleLogin godoc
// @Summary Log in
// @Description Verifies credentials and returns a bearer access token.
// @Tags auth
// @Accept json
// @Produce json
// @Param loginBody body auth.LoginRequest true "Login credentials"
// @Success 200 {object} auth.TokenResponse "Access token issued"
// @Failure 401 {object} apperror.ErrorResponse "Invalid credentials"
// @Failure 422 {object} apperror.ErrorResponse "Missing username or password"
// @Failure 500 {object} apperror.ErrorResponse "Internal server error"
// @Router /api/auth/login [post]
func (h *Handlers) HandleLogin() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req LoginRequest
		if err := httputil.DecodeJSON(r, &req); err != nil {
			httputil.WriteError(w, r, err)
			return
		}
		if err := httputil.CheckStruct(&req); err != nil {
			httputil.WriteError(w, r, err)
			return
		}

		resp, err := h.service.Login(r.Context(), req)
		if err != nil {
			httputil.WriteError(w, r, err)
			return
		}

		httputil.WriteJSON(w, http.StatusOK, resp)
	}
}

// HandleMe godoc
// @Summary Get the authenticated user
// @Description Returns the account resolved from the bearer token.
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} auth.User "Current user"
// @Failure 401 {object} apperror.ErrorResponse "Missing, invalid, or expired token"
// @Router /api/auth/me [get]
func (h *Handlers) HandleMe() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := UserIDFromContext(r.Context())
		if !ok {
			httputil.WriteError(w, r, apperror.NewAuthError("not authenticated", nil))
			return
		}

		user, err := h.service.GetUserByID(r.Context(), userID)
		if err != nil {
			// The account can vanish between the middleware check and
			// this lookup; report it like any other invalid token.
			if apperror.IsNotFound(err) {
				err = apperror.NewAuthError(invalidTokenMessage, nil)
			}
			httputil.WriteError(w, r, err)
			return
		}

		httputil.WriteJSON(w, http.StatusOK, user)
	}
}
