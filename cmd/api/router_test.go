package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"library-api/internal/config"
	"library-api/pkg/container"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestContainer(t *testing.T) *container.Container {
	t.Helper()
	cfg := config.New()
	cfg.Database.Driver = config.DriverSQLite
	cfg.Database.SQLitePath = ":memory:"

	c, err := container.New(context.Background(), cfg)
	require.NoError(t, err)
	t.Cleanup(c.Cleanup)
	return c
}

func newTestRouter(t *testing.T) (*gin.Engine, *container.Container) {
	t.Helper()
	c := newTestContainer(t)
	return SetupRouter(c), c
}

func do(t *testing.T, r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())
	return v
}

type authorBody struct {
	ID   int64   `json:"id"`
	Name string  `json:"name"`
	Bio  *string `json:"bio"`
}

type bookBody struct {
	ID              int64       `json:"id"`
	Title           string      `json:"title"`
	Summary         *string     `json:"summary"`
	PublicationDate string      `json:"publication_date"`
	AuthorID        int64       `json:"author_id"`
	Author          *authorBody `json:"author,omitempty"`
}

func createAuthor(t *testing.T, r http.Handler, name string) authorBody {
	t.Helper()
	rec := do(t, r, http.MethodPost, "/authors/", fmt.Sprintf(`{"name":%q}`, name))
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	return decode[authorBody](t, rec)
}

func createBook(t *testing.T, r http.Handler, title string, authorID int64) bookBody {
	t.Helper()
	body := fmt.Sprintf(`{"title":%q,"publication_date":"2001-02-03","author_id":%d}`, title, authorID)
	rec := do(t, r, http.MethodPost, "/books/", body)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	return decode[bookBody](t, rec)
}

func TestAuthorNotFound(t *testing.T) {
	r, _ := newTestRouter(t)

	rec := do(t, r, http.MethodGet, "/authors/9999999/", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"detail":"Author not found"}`, rec.Body.String())
}

func TestAuthorRoundTrip(t *testing.T) {
	r, _ := newTestRouter(t)

	rec := do(t, r, http.MethodPost, "/authors/", `{"name":"A","bio":"B"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	created := decode[authorBody](t, rec)
	require.NotZero(t, created.ID)
	assert.JSONEq(t, fmt.Sprintf(`{"id":%d,"name":"A","bio":"B"}`, created.ID), rec.Body.String())

	rec = do(t, r, http.MethodGet, fmt.Sprintf("/authors/%d/", created.ID), "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, fmt.Sprintf(`{"id":%d,"name":"A","bio":"B"}`, created.ID), rec.Body.String())
}

func TestAuthorWithoutBio(t *testing.T) {
	r, _ := newTestRouter(t)

	created := createAuthor(t, r, "Solo")

	rec := do(t, r, http.MethodGet, fmt.Sprintf("/authors/%d/", created.ID), "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, fmt.Sprintf(`{"id":%d,"name":"Solo","bio":null}`, created.ID), rec.Body.String())
}

func TestListAuthors_Pagination(t *testing.T) {
	r, _ := newTestRouter(t)

	rec := do(t, r, http.MethodGet, "/authors/", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())

	for i := 0; i < 12; i++ {
		createAuthor(t, r, fmt.Sprintf("author-%02d", i))
	}

	rec = do(t, r, http.MethodGet, "/authors/", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decode[[]authorBody](t, rec), 10)

	rec = do(t, r, http.MethodGet, "/authors/?skip=10&limit=5", "")
	require.Equal(t, http.StatusOK, rec.Code)
	page := decode[[]authorBody](t, rec)
	require.Len(t, page, 2)
	assert.Equal(t, "author-10", page[0].Name)

	rec = do(t, r, http.MethodGet, "/authors/?skip=-1", "")
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	rec = do(t, r, http.MethodGet, "/authors/?limit=abc", "")
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, rec.Body.String(), `"detail"`)
}

func TestCreateAuthor_Invalid(t *testing.T) {
	r, _ := newTestRouter(t)

	rec := do(t, r, http.MethodPost, "/authors/", `{"bio":"no name"}`)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	rec = do(t, r, http.MethodPost, "/authors/", `{"name":`)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestBookDetailEmbedsAuthor(t *testing.T) {
	r, _ := newTestRouter(t)

	a := createAuthor(t, r, "Herbert")
	b := createBook(t, r, "Dune", a.ID)
	assert.Equal(t, "2001-02-03", b.PublicationDate)
	assert.Nil(t, b.Author)

	rec := do(t, r, http.MethodGet, fmt.Sprintf("/books/%d/", b.ID), "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	detail := decode[bookBody](t, rec)
	require.NotNil(t, detail.Author)
	assert.Equal(t, detail.AuthorID, detail.Author.ID)
	assert.Equal(t, "Herbert", detail.Author.Name)
	assert.Equal(t, "Dune", detail.Title)
}

func TestBookNotFound(t *testing.T) {
	r, _ := newTestRouter(t)

	rec := do(t, r, http.MethodGet, "/books/424242/", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"detail":"Book not found"}`, rec.Body.String())
}

func TestCreateBook_OrphanRejected(t *testing.T) {
	r, _ := newTestRouter(t)

	rec := do(t, r, http.MethodPost, "/books/", `{"title":"Orphan","publication_date":"2020-01-01","author_id":9999}`)
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.JSONEq(t, `{"detail":"Author does not exist"}`, rec.Body.String())

	rec = do(t, r, http.MethodGet, "/books/", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestCreateBook_Invalid(t *testing.T) {
	r, _ := newTestRouter(t)
	a := createAuthor(t, r, "A")

	cases := map[string]string{
		"missing date": fmt.Sprintf(`{"title":"T","author_id":%d}`, a.ID),
		"bad date":     fmt.Sprintf(`{"title":"T","publication_date":"03/02/2001","author_id":%d}`, a.ID),
		"empty title":  fmt.Sprintf(`{"title":"","publication_date":"2001-02-03","author_id":%d}`, a.ID),
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			rec := do(t, r, http.MethodPost, "/books/", body)
			assert.Equal(t, http.StatusUnprocessableEntity, rec.Code, rec.Body.String())
		})
	}
}

func TestListBooks_FilterByAuthor(t *testing.T) {
	r, _ := newTestRouter(t)

	a := createAuthor(t, r, "A")
	b := createAuthor(t, r, "B")
	c := createAuthor(t, r, "C")
	createBook(t, r, "a1", a.ID)
	createBook(t, r, "b1", b.ID)
	createBook(t, r, "a2", a.ID)

	rec := do(t, r, http.MethodGet, fmt.Sprintf("/books/?author=%d", a.ID), "")
	require.Equal(t, http.StatusOK, rec.Code)
	byA := decode[[]bookBody](t, rec)
	require.Len(t, byA, 2)
	for _, bk := range byA {
		assert.Equal(t, a.ID, bk.AuthorID)
	}

	rec = do(t, r, http.MethodGet, fmt.Sprintf("/books/?author=%d", c.ID), "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())

	rec = do(t, r, http.MethodGet, "/books/?skip=1&limit=1", "")
	require.Equal(t, http.StatusOK, rec.Code)
	window := decode[[]bookBody](t, rec)
	require.Len(t, window, 1)
	assert.Equal(t, "b1", window[0].Title)

	rec = do(t, r, http.MethodGet, "/books/?author=x", "")
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestFailureMessage(t *testing.T) {
	r, c := newTestRouter(t)
	require.NoError(t, c.Store.Close())

	rec := do(t, r, http.MethodGet, "/authors/?skip=0", "")

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	body := decode[map[string]string](t, rec)
	assert.True(t,
		strings.HasPrefix(body["message"], "Failed method GET at URL http://example.com/authors/?skip=0. Exception message is "),
		body["message"])
	assert.True(t, strings.HasSuffix(body["message"], "."))
}

func TestHealth(t *testing.T) {
	r, c := newTestRouter(t)

	rec := do(t, r, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"database":"ok"`)

	require.NoError(t, c.Store.Close())
	rec = do(t, r, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestMetricsEndpoint(t *testing.T) {
	r, _ := newTestRouter(t)

	createAuthor(t, r, "Counted")

	rec := do(t, r, http.MethodGet, "/metrics", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `route="/authors/"`)
	assert.Contains(t, rec.Body.String(), "library_api_db_sessions_open 0")
}
