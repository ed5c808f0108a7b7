package users

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roster-hq/roster/internal/platform/httpx"
)

func newTestRouter(t *testing.T) chi.Router {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	handler := NewHandler(logger, NewService(NewRegistry()))
	router := chi.NewRouter()
	handler.MountRoutes(router)
	return router
}

func doRequest(t *testing.T, router chi.Router, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

func decodeUser(t *testing.T, rr *httptest.ResponseRecorder) User {
	t.Helper()
	var user User
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &user))
	return user
}

func decodeProblem(t *testing.T, rr *httptest.ResponseRecorder) httpx.ProblemDetail {
	t.Helper()
	var problem httpx.ProblemDetail
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &problem))
	return problem
}

func TestUserLifecycle(t *testing.T) {
	router := newTestRouter(t)

	// Create.
	rr := doRequest(t, router, http.MethodPost, "/users/", `{"name":"John Doe","email":"john@example.com","age":30}`)
	require.Equal(t, http.StatusCreated, rr.Code)
	created := decodeUser(t, rr)
	assert.Equal(t, int64(1), created.ID)
	assert.Equal(t, "John Doe", created.Name)
	assert.True(t, created.IsActive)
	assert.False(t, created.CreatedAt.IsZero())

	// Duplicate email.
	rr = doRequest(t, router, http.MethodPost, "/users/", `{"name":"Imposter","email":"john@example.com","age":40}`)
	require.Equal(t, http.StatusBadRequest, rr.Code)
	problem := decodeProblem(t, rr)
	assert.Contains(t, problem.Detail, "email already registered")

	// Fetch.
	rr = doRequest(t, router, http.MethodGet, "/users/1", "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, created, decodeUser(t, rr))

	// Merge patch via PUT: email stays put.
	rr = doRequest(t, router, http.MethodPut, "/users/1", `{"name":"John Smith","age":31}`)
	require.Equal(t, http.StatusOK, rr.Code)
	updated := decodeUser(t, rr)
	assert.Equal(t, "John Smith", updated.Name)
	assert.Equal(t, 31, updated.Age)
	assert.Equal(t, "john@example.com", updated.Email)
	assert.Equal(t, created.CreatedAt, updated.CreatedAt)

	// Delete, then fetch again.
	rr = doRequest(t, router, http.MethodDelete, "/users/1", "")
	require.Equal(t, http.StatusNoContent, rr.Code)
	assert.Empty(t, rr.Body.String())

	rr = doRequest(t, router, http.MethodGet, "/users/1", "")
	require.Equal(t, http.StatusNotFound, rr.Code)
}

func TestCreateValidation(t *testing.T) {
	cases := []struct {
		name string
		body string
	}{
		{"missing name", `{"email":"a@example.com","age":30}`},
		{"name too long", `{"name":"` + strings.Repeat("x", 101) + `","email":"a@example.com","age":30}`},
		{"missing email", `{"name":"A","age":30}`},
		{"missing age", `{"name":"A","email":"a@example.com"}`},
		{"age negative", `{"name":"A","email":"a@example.com","age":-1}`},
		{"age too large", `{"name":"A","email":"a@example.com","age":151}`},
		{"malformed body", `{"name":`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			router := newTestRouter(t)
			rr := doRequest(t, router, http.MethodPost, "/users/", tc.body)
			assert.Equal(t, http.StatusBadRequest, rr.Code)
			assert.Equal(t, "Validation Failed", decodeProblem(t, rr).Title)
		})
	}
}

func TestCreateAgeZeroIsValid(t *testing.T) {
	router := newTestRouter(t)
	rr := doRequest(t, router, http.MethodPost, "/users/", `{"name":"Newborn","email":"n@example.com","age":0}`)
	require.Equal(t, http.StatusCreated, rr.Code)
	assert.Equal(t, 0, decodeUser(t, rr).Age)
}

func TestListWindowing(t *testing.T) {
	router := newTestRouter(t)
	emails := []string{"a@x.com", "b@x.com", "c@x.com"}
	for _, email := range emails {
		rr := doRequest(t, router, http.MethodPost, "/users/", `{"name":"U","email":"`+email+`","age":20}`)
		require.Equal(t, http.StatusCreated, rr.Code)
	}

	rr := doRequest(t, router, http.MethodGet, "/users/", "")
	require.Equal(t, http.StatusOK, rr.Code)
	var list []User
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &list))
	require.Len(t, list, 3)
	for i, email := range emails {
		assert.Equal(t, email, list[i].Email)
	}

	rr = doRequest(t, router, http.MethodGet, "/users/?skip=1&limit=1", "")
	require.Equal(t, http.StatusOK, rr.Code)
	list = nil
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &list))
	require.Len(t, list, 1)
	assert.Equal(t, "b@x.com", list[0].Email)

	rr = doRequest(t, router, http.MethodGet, "/users/?skip=10", "")
	require.Equal(t, http.StatusOK, rr.Code)
	list = nil
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &list))
	assert.Empty(t, list)
}

func TestPatchIsActive(t *testing.T) {
	router := newTestRouter(t)
	rr := doRequest(t, router, http.MethodPost, "/users/", `{"name":"A","email":"a@x.com","age":20}`)
	require.Equal(t, http.StatusCreated, rr.Code)

	rr = doRequest(t, router, http.MethodPatch, "/users/1", `{"is_active":false}`)
	require.Equal(t, http.StatusOK, rr.Code)
	updated := decodeUser(t, rr)
	assert.False(t, updated.IsActive)
	assert.Equal(t, "A", updated.Name)
}

func TestUpdateEmailConflict(t *testing.T) {
	router := newTestRouter(t)
	require.Equal(t, http.StatusCreated, doRequest(t, router, http.MethodPost, "/users/", `{"name":"A","email":"a@x.com","age":20}`).Code)
	require.Equal(t, http.StatusCreated, doRequest(t, router, http.MethodPost, "/users/", `{"name":"B","email":"b@x.com","age":21}`).Code)

	rr := doRequest(t, router, http.MethodPut, "/users/2", `{"email":"a@x.com"}`)
	require.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, decodeProblem(t, rr).Detail, "email already registered")

	rr = doRequest(t, router, http.MethodGet, "/users/2", "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "b@x.com", decodeUser(t, rr).Email)
}

func TestUpdateUnknownUser(t *testing.T) {
	router := newTestRouter(t)
	rr := doRequest(t, router, http.MethodPut, "/users/99", `{"name":"Ghost"}`)
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestDeleteUnknownUser(t *testing.T) {
	router := newTestRouter(t)
	rr := doRequest(t, router, http.MethodDelete, "/users/99", "")
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestNonNumericIDIsValidationFailure(t *testing.T) {
	router := newTestRouter(t)
	rr := doRequest(t, router, http.MethodGet, "/users/abc", "")
	require.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, "invalid user id", decodeProblem(t, rr).Detail)
}
