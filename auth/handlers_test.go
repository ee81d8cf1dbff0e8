package auth

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/user/todo-go/apperror"
)

type fakeAuthService struct {
	registerOut *User
	registerErr error
	registered  []RegisterRequest

	loginOut *TokenResponse
	loginErr error

	getOut *User
	getErr error
}

func (f *fakeAuthService) Register(_ context.Context, req RegisterRequest) (*User, error) {
	f.registered = append(f.registered, req)
	if f.registerErr != nil {
		return nil, f.registerErr
	}
	return f.registerOut, nil
}

func (f *fakeAuthService) Login(_ context.Context, _ LoginRequest) (*TokenResponse, error) {
	if f.loginErr != nil {
		return nil, f.loginErr
	}
	return f.loginOut, nil
}

func (f *fakeAuthService) GetUserByID(_ context.Context, _ int64) (*User, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.getOut, nil
}

func postJSON(t *testing.T, handler http.HandlerFunc, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handler(rec, req)
	return rec
}

func TestHandleRegister_Created(t *testing.T) {
	t.Parallel()

	svc := &fakeAuthService{
		registerOut: &User{ID: 7, Username: "alice", HashedPassword: "$2a$10$x", CreatedAt: time.Now()},
	}
	h := NewHandlers(svc)

	rec := postJSON(t, h.HandleRegister(), "/api/auth/register", `{"username":"alice","password":"pw"}`)

	assert.Equal(t, http.StatusCreated, rec.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, float64(7), resp["id"])
	assert.Equal(t, "alice", resp["username"])
	// The response must never carry credential material.
	assert.NotContains(t, rec.Body.String(), "$2a$")
	assert.NotContains(t, rec.Body.String(), "pw")
}

func TestHandleRegister_DuplicateUsername(t *testing.T) {
	t.Parallel()

	svc := &fakeAuthService{registerErr: apperror.NewConflictError("username already registered", nil)}
	h := NewHandlers(svc)

	rec := postJSON(t, h.HandleRegister(), "/api/auth/register", `{"username":"alice","password":"pw"}`)

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, rec.Body.String(), "username already registered")
}

func TestHandleRegister_InvalidShape(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		"username too short": `{"username":"ab","password":"pw"}`,
		"missing password":   `{"username":"alice"}`,
		"username too long":  `{"username":"` + strings.Repeat("a", 51) + `","password":"pw"}`,
		"malformed body":     `{"username":`,
	}
	for name, body := range cases {
		body := body
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			svc := &fakeAuthService{}
			h := NewHandlers(svc)

			rec := postJSON(t, h.HandleRegister(), "/api/auth/register", body)

			assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
			assert.Empty(t, svc.registered, "service must not be called for invalid input")
		})
	}
}

func TestHandleLogin_Success(t *testing.T) {
	t.Parallel()

	svc := &fakeAuthService{loginOut: &TokenResponse{AccessToken: "token-abc", TokenType: "bearer"}}
	h := NewHandlers(svc)

	rec := postJSON(t, h.HandleLogin(), "/api/auth/login", `{"username":"alice","password":"pw"}`)

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp TokenResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "token-abc", resp.AccessToken)
	assert.Equal(t, "bearer", resp.TokenType)
}

func TestHandleLogin_InvalidCredentials(t *testing.T) {
	t.Parallel()

	svc := &fakeAuthService{loginErr: apperror.NewAuthError("invalid username or password", nil)}
	h := NewHandlers(svc)

	rec := postJSON(t, h.HandleLogin(), "/api/auth/login", `{"username":"alice","password":"wrong"}`)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "invalid username or password")
}

func TestHandleMe_Success(t *testing.T) {
	t.Parallel()

	created := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	svc := &fakeAuthService{getOut: &User{ID: 7, Username: "alice", HashedPassword: "$2a$10$x", CreatedAt: created}}
	h := NewHandlers(svc)

	req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	req = req.WithContext(ContextWithUserID(req.Context(), 7))
	rec := httptest.NewRecorder()
	h.HandleMe()(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, float64(7), resp["id"])
	assert.Equal(t, "alice", resp["username"])
	assert.Contains(t, resp, "created_at")
	assert.NotContains(t, rec.Body.String(), "$2a$")
}

func TestHandleMe_NoIdentity(t *testing.T) {
	t.Parallel()

	h := NewHandlers(&fakeAuthService{})

	req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	rec := httptest.NewRecorder()
	h.HandleMe()(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestHandleMe_UserGone(t *testing.T) {
	t.Parallel()

	svc := &fakeAuthService{getErr: apperror.NewNotFoundError("user not found", nil)}
	h := NewHandlers(svc)

	req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	req = req.WithContext(ContextWithUserID(req.Context(), 99))
	rec := httptest.NewRecorder()
	h.HandleMe()(rec, req)

	// A vanished account reads as an invalid token, not a 404.
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
