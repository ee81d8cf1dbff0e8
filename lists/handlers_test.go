package lists

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/user/todo-go/apperror"
	"github.com/user/todo-go/auth"
)

type fakeListService struct {
	createOut *List
	createErr error

	listOut []List
	listErr error

	getOut *List
	getErr error

	updateOut *List
	updateErr error
	updateReq *UpdateListRequest

	deleteErr error

	calls int
}

func (f *fakeListService) Create(_ context.Context, _ int64, _ CreateListRequest) (*List, error) {
	f.calls++
	return f.createOut, f.createErr
}

func (f *fakeListService) List(_ context.Context, _ int64) ([]List, error) {
	f.calls++
	return f.listOut, f.listErr
}

func (f *fakeListService) Get(_ context.Context, _, _ int64) (*List, error) {
	f.calls++
	return f.getOut, f.getErr
}

func (f *fakeListService) Update(_ context.Context, _, _ int64, req UpdateListRequest) (*List, error) {
	f.calls++
	f.updateReq = &req
	return f.updateOut, f.updateErr
}

func (f *fakeListService) Delete(_ context.Context, _, _ int64) error {
	f.calls++
	return f.deleteErr
}

func newRouter(svc Service) http.Handler {
	h := NewHandlers(svc)
	r := chi.NewRouter()
	r.Post("/api/lists", h.HandleCreate())
	r.Get("/api/lists", h.HandleList())
	r.Get("/api/lists/{id}", h.HandleGet())
	r.Put("/api/lists/{id}", h.HandleUpdate())
	r.Delete("/api/lists/{id}", h.HandleDelete())
	return r
}

func doRequest(t *testing.T, router http.Handler, method, target, body string, userID int64) *httptest.ResponseRecorder {
	t.Helper()
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if userID != 0 {
		req = req.WithContext(auth.ContextWithUserID(req.Context(), userID))
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestHandleCreate_Created(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	svc := &fakeListService{createOut: &List{ID: 3, Title: "groceries", UserID: 1, CreatedAt: now, UpdatedAt: now}}
	router := newRouter(svc)

	rec := doRequest(t, router, http.MethodPost, "/api/lists", `{"title":"groceries"}`, 1)

	assert.Equal(t, http.StatusCreated, rec.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, float64(3), resp["id"])
	assert.Equal(t, "groceries", resp["title"])
	// Owner id is server-side only.
	assert.NotContains(t, resp, "user_id")
}

func TestHandleCreate_EmptyTitle(t *testing.T) {
	t.Parallel()

	for name, body := range map[string]string{
		"empty title":   `{"title":""}`,
		"missing title": `{}`,
	} {
		body := body
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			svc := &fakeListService{}
			router := newRouter(svc)

			rec := doRequest(t, router, http.MethodPost, "/api/lists", body, 1)

			assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
			assert.Zero(t, svc.calls, "service must not be called for invalid input")
		})
	}
}

func TestHandleCreate_Unauthenticated(t *testing.T) {
	t.Parallel()

	svc := &fakeListService{}
	router := newRouter(svc)

	rec := doRequest(t, router, http.MethodPost, "/api/lists", `{"title":"groceries"}`, 0)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Zero(t, svc.calls)
}

func TestHandleList_ReturnsOwnListsInOrder(t *testing.T) {
	t.Parallel()

	svc := &fakeListService{listOut: []List{
		{ID: 1, Title: "first"},
		{ID: 2, Title: "second"},
	}}
	router := newRouter(svc)

	rec := doRequest(t, router, http.MethodGet, "/api/lists", "", 1)

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp []map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp, 2)
	assert.Equal(t, "first", resp[0]["title"])
	assert.Equal(t, "second", resp[1]["title"])
}

func TestHandleList_EmptyIsArray(t *testing.T) {
	t.Parallel()

	svc := &fakeListService{listOut: []List{}}
	router := newRouter(svc)

	rec := doRequest(t, router, http.MethodGet, "/api/lists", "", 1)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "[]", strings.TrimSpace(rec.Body.String()))
}

func TestHandleGet_NotOwnedIsNotFound(t *testing.T) {
	t.Parallel()

	svc := &fakeListService{getErr: apperror.NewNotFoundError("list not found", nil)}
	router := newRouter(svc)

	rec := doRequest(t, router, http.MethodGet, "/api/lists/5", "", 1)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "list not found")
}

func TestHandleGet_BadID(t *testing.T) {
	t.Parallel()

	svc := &fakeListService{}
	router := newRouter(svc)

	rec := doRequest(t, router, http.MethodGet, "/api/lists/abc", "", 1)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Zero(t, svc.calls)
}

func TestHandleUpdate_PartialFields(t *testing.T) {
	t.Parallel()

	svc := &fakeListService{updateOut: &List{ID: 5, Title: "renamed"}}
	router := newRouter(svc)

	rec := doRequest(t, router, http.MethodPut, "/api/lists/5", `{"title":"renamed"}`, 1)

	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, svc.updateReq)
	require.NotNil(t, svc.updateReq.Title)
	assert.Equal(t, "renamed", *svc.updateReq.Title)
}

func TestHandleUpdate_OmittedFieldStaysNil(t *testing.T) {
	t.Parallel()

	svc := &fakeListService{updateOut: &List{ID: 5, Title: "unchanged"}}
	router := newRouter(svc)

	rec := doRequest(t, router, http.MethodPut, "/api/lists/5", `{}`, 1)

	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, svc.updateReq)
	assert.Nil(t, svc.updateReq.Title, "omitted title must not reach the service as a value")
}

func TestHandleUpdate_EmptyTitleRejected(t *testing.T) {
	t.Parallel()

	svc := &fakeListService{}
	router := newRouter(svc)

	rec := doRequest(t, router, http.MethodPut, "/api/lists/5", `{"title":""}`, 1)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Zero(t, svc.calls)
}

func TestHandleDelete_NoContent(t *testing.T) {
	t.Parallel()

	svc := &fakeListService{}
	router := newRouter(svc)

	rec := doRequest(t, router, http.MethodDelete, "/api/lists/5", "", 1)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())
}

func TestHandleDelete_NotOwnedIsNotFound(t *testing.T) {
	t.Parallel()

	svc := &fakeListService{deleteErr: apperror.NewNotFoundError("list not found", nil)}
	router := newRouter(svc)

	rec := doRequest(t, router, http.MethodDelete, "/api/lists/5", "", 1)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
