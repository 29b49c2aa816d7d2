package router

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"

	"github.com/deppfellow/newsletter-api/internal/config"
	"github.com/deppfellow/newsletter-api/internal/errs"
	"github.com/deppfellow/newsletter-api/internal/handler"
	"github.com/deppfellow/newsletter-api/internal/model"
	"github.com/deppfellow/newsletter-api/internal/repository"
	"github.com/deppfellow/newsletter-api/internal/server"
	"github.com/deppfellow/newsletter-api/internal/service"
	"github.com/jackc/pgx/v5"
	"github.com/labstack/echo/v4"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memoryStore keeps newsletters in a map; transactions are not isolated.
type memoryStore struct {
	mu     sync.Mutex
	rows   map[int]model.Newsletter
	nextID int
}

func (m *memoryStore) ListNewsletters(context.Context) ([]model.Newsletter, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := []model.Newsletter{}
	for id := 1; id < m.nextID; id++ {
		if n, ok := m.rows[id]; ok {
			out = append(out, n)
		}
	}
	return out, nil
}

func (m *memoryStore) CreateNewsletter(_ context.Context, n model.Newsletter) (*model.Newsletter, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	n.ID = m.nextID
	m.nextID++
	m.rows[n.ID] = n
	return &n, nil
}

func (m *memoryStore) GetNewsletterByID(_ context.Context, id int) (*model.Newsletter, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	n, ok := m.rows[id]
	if !ok {
		return nil, fmt.Errorf("newsletter %d: %w", id, pgx.ErrNoRows)
	}
	return &n, nil
}

func (m *memoryStore) GetNewsletterForUpdate(ctx context.Context, id int) (*model.Newsletter, error) {
	return m.GetNewsletterByID(ctx, id)
}

func (m *memoryStore) UpdateNewsletter(_ context.Context, n model.Newsletter) (*model.Newsletter, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.rows[n.ID] = n
	return &n, nil
}

func (m *memoryStore) DeleteNewsletter(_ context.Context, id int) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.rows[id]; !ok {
		return fmt.Errorf("newsletter %d: %w", id, pgx.ErrNoRows)
	}
	delete(m.rows, id)
	return nil
}

func (m *memoryStore) WithinTx(_ context.Context, fn func(store repository.NewsletterStore) error) error {
	return fn(m)
}

func newTestRouter(t *testing.T) *echo.Echo {
	t.Helper()

	return newRouterWithStore(t, &memoryStore{rows: map[int]model.Newsletter{}, nextID: 1})
}

func newRouterWithStore(t *testing.T, store repository.NewsletterStore) *echo.Echo {
	t.Helper()

	logger := zerolog.Nop()
	s := &server.Server{
		Config: config.DefaultConfig(),
		Logger: &logger,
	}

	services := &service.Services{
		Newsletter: service.NewNewsletterService(store, nil),
	}

	return NewRouter(s, handler.NewHandlers(s, services))
}

func do(t *testing.T, r *echo.Echo, method, target string, form url.Values) *httptest.ResponseRecorder {
	t.Helper()

	var body *strings.Reader
	if form != nil {
		body = strings.NewReader(form.Encode())
	} else {
		body = strings.NewReader("")
	}

	req := httptest.NewRequest(method, target, body)
	if form != nil {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	}

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()

	var out T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out), rec.Body.String())
	return out
}

func create(t *testing.T, r *echo.Echo, title, body string) model.Newsletter {
	t.Helper()

	rec := do(t, r, http.MethodPost, "/newsletters", url.Values{"title": {title}, "body": {body}})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	return decode[model.Newsletter](t, rec)
}

func TestHome(t *testing.T) {
	rec := do(t, newTestRouter(t), http.MethodGet, "/", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, handler.MessageResponse{Message: "Welcome to the Newsletter RESTful API"},
		decode[handler.MessageResponse](t, rec))
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
}

func TestCreateThenFetch(t *testing.T) {
	r := newTestRouter(t)

	created := create(t, r, "A", "B")
	assert.Equal(t, "A", created.Title)
	assert.Equal(t, "B", created.Body)

	rec := do(t, r, http.MethodGet, fmt.Sprintf("/newsletters/%d", created.ID), nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, fmt.Sprintf(`{"id":%d,"title":"A","body":"B"}`, created.ID), rec.Body.String())
}

func TestListEmptyAndPopulated(t *testing.T) {
	r := newTestRouter(t)

	rec := do(t, r, http.MethodGet, "/newsletters", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())

	create(t, r, "one", "1")
	create(t, r, "two", "")

	rec = do(t, r, http.MethodGet, "/newsletters", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decode[[]model.Newsletter](t, rec), 2)
}

func TestCreateMissingFieldIsBadRequest(t *testing.T) {
	r := newTestRouter(t)

	rec := do(t, r, http.MethodPost, "/newsletters", url.Values{"title": {"only title"}})

	require.Equal(t, http.StatusBadRequest, rec.Code)
	body := decode[errs.HTTPError](t, rec)
	assert.Equal(t, []errs.FieldError{{Field: "body", Error: "is required"}}, body.Errors)
}

func TestFetchErrors(t *testing.T) {
	r := newTestRouter(t)

	rec := do(t, r, http.MethodGet, "/newsletters/404", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "NEWSLETTER_NOT_FOUND", decode[errs.HTTPError](t, rec).Code)

	rec = do(t, r, http.MethodGet, "/newsletters/abc", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestIDBeyondColumnRangeIsNotFound(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)

	r := newRouterWithStore(t, repository.NewNewsletterRepository(mock))
	target := "/newsletters/99999999999"

	mock.ExpectBegin()
	mock.ExpectRollback()
	mock.ExpectBegin()
	mock.ExpectRollback()

	rec := do(t, r, http.MethodGet, target, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code, rec.Body.String())
	assert.Equal(t, "NEWSLETTER_NOT_FOUND", decode[errs.HTTPError](t, rec).Code)

	rec = do(t, r, http.MethodPatch, target, url.Values{"title": {"x"}})
	assert.Equal(t, http.StatusNotFound, rec.Code, rec.Body.String())

	rec = do(t, r, http.MethodDelete, target, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code, rec.Body.String())

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPatch(t *testing.T) {
	r := newTestRouter(t)
	created := create(t, r, "A", "B")
	target := fmt.Sprintf("/newsletters/%d", created.ID)

	for range 2 {
		rec := do(t, r, http.MethodPatch, target, url.Values{"title": {"C"}})
		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
		assert.Equal(t, model.Newsletter{ID: created.ID, Title: "C", Body: "B"}, decode[model.Newsletter](t, rec))
	}

	rec := do(t, r, http.MethodPatch, target, url.Values{"author": {"me"}})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, []errs.FieldError{{Field: "author", Error: "is not a writable field"}},
		decode[errs.HTTPError](t, rec).Errors)

	rec = do(t, r, http.MethodPatch, target, url.Values{})
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, model.Newsletter{ID: created.ID, Title: "C", Body: "B"}, decode[model.Newsletter](t, rec))

	rec = do(t, r, http.MethodPatch, "/newsletters/999", url.Values{"title": {"x"}})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDeleteThenFetch(t *testing.T) {
	r := newTestRouter(t)
	created := create(t, r, "A", "B")
	target := fmt.Sprintf("/newsletters/%d", created.ID)

	rec := do(t, r, http.MethodDelete, target, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"record successfully deleted"}`, rec.Body.String())

	assert.Equal(t, http.StatusNotFound, do(t, r, http.MethodGet, target, nil).Code)
	assert.Equal(t, http.StatusNotFound, do(t, r, http.MethodDelete, target, nil).Code)
}

func TestUnknownRoute(t *testing.T) {
	rec := do(t, newTestRouter(t), http.MethodGet, "/missing", nil)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Route not found", decode[errs.HTTPError](t, rec).Message)
}

func TestPrettyJSON(t *testing.T) {
	rec := do(t, newTestRouter(t), http.MethodGet, "/?pretty", nil)

	assert.Contains(t, rec.Body.String(), "\n  \"message\"")
}

func TestStatusWithoutChecks(t *testing.T) {
	rec := do(t, newTestRouter(t), http.MethodGet, "/status", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "healthy", decode[map[string]any](t, rec)["status"])
}
