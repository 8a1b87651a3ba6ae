package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type sessionKey struct{}

type fakeOpener struct {
	openErr  error
	opened   int
	released int
}

func (f *fakeOpener) OpenSession(ctx context.Context) (context.Context, func(), error) {
	if f.openErr != nil {
		return ctx, func() {}, f.openErr
	}
	f.opened++
	return context.WithValue(ctx, sessionKey{}, f.opened), func() { f.released++ }, nil
}

type countingObserver struct{ open int }

func (o *countingObserver) SessionOpened() { o.open++ }
func (o *countingObserver) SessionClosed() { o.open-- }

func newEngine(opener *fakeOpener, observer *countingObserver, h gin.HandlerFunc) *gin.Engine {
	r := gin.New()
	r.Use(Recovery(), RequestID())
	r.GET("/things/", DBSession(opener, observer), h)
	return r
}

func serve(r http.Handler, path string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func message(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body["message"]
}

func TestDBSession_ReleasedOnSuccess(t *testing.T) {
	opener := &fakeOpener{}
	observer := &countingObserver{}
	r := newEngine(opener, observer, func(c *gin.Context) {
		assert.Equal(t, 1, c.Request.Context().Value(sessionKey{}))
		assert.Equal(t, 1, observer.open)
		c.JSON(http.StatusOK, gin.H{})
	})

	rec := serve(r, "/things/")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 1, opener.released)
	assert.Equal(t, 0, observer.open)
}

func TestDBSession_ReleasedOnPanic(t *testing.T) {
	opener := &fakeOpener{}
	observer := &countingObserver{}
	r := newEngine(opener, observer, func(c *gin.Context) {
		panic("boom")
	})

	rec := serve(r, "/things/?x=1")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "Failed method GET at URL http://example.com/things/?x=1. Exception message is boom.", message(t, rec))
	assert.Equal(t, 1, opener.released)
	assert.Equal(t, 0, observer.open)
}

func TestDBSession_ReleasedOnHandlerError(t *testing.T) {
	opener := &fakeOpener{}
	r := newEngine(opener, &countingObserver{}, func(c *gin.Context) {
		_ = c.Error(errors.New("store unavailable"))
	})

	rec := serve(r, "/things/")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "Failed method GET at URL http://example.com/things/. Exception message is store unavailable.", message(t, rec))
	assert.Equal(t, 1, opener.released)
}

func TestDBSession_OpenFailure(t *testing.T) {
	opener := &fakeOpener{openErr: errors.New("pool exhausted")}
	observer := &countingObserver{}
	called := false
	r := newEngine(opener, observer, func(c *gin.Context) {
		called = true
	})

	rec := serve(r, "/things/")

	assert.False(t, called)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, message(t, rec), "Exception message is pool exhausted.")
	assert.Equal(t, 0, observer.open)
}

func TestRecovery_KeepsWrittenResponse(t *testing.T) {
	r := gin.New()
	r.Use(Recovery())
	r.GET("/x", func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"detail": "Author not found"})
		_ = c.Error(errors.New("already handled"))
	})

	rec := serve(r, "/x")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"detail":"Author not found"}`, rec.Body.String())
}

func TestRequestID(t *testing.T) {
	r := gin.New()
	r.Use(RequestID())
	r.GET("/x", func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString(RequestIDKey))
	})

	rec := serve(r, "/x")
	assert.NotEmpty(t, rec.Header().Get(RequestIDHeader))
	assert.Equal(t, rec.Header().Get(RequestIDHeader), rec.Body.String())

	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	req.Header.Set(RequestIDHeader, "fixed-id")
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	assert.Equal(t, "fixed-id", rec.Body.String())
}
