package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"library-api/internal/shared"
)

func newContext(target string) *gin.Context {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodGet, target, nil)
	return c
}

func TestParsePage(t *testing.T) {
	page, err := ParsePage(newContext("/authors/"))
	require.NoError(t, err)
	assert.Equal(t, shared.Page{Skip: 0, Limit: 10}, page)

	page, err = ParsePage(newContext("/authors/?skip=5&limit=2"))
	require.NoError(t, err)
	assert.Equal(t, shared.Page{Skip: 5, Limit: 2}, page)

	_, err = ParsePage(newContext("/authors/?limit=ten"))
	assert.Error(t, err)
}

func TestOptionalInt64Query(t *testing.T) {
	v, err := OptionalInt64Query(newContext("/books/"), "author")
	require.NoError(t, err)
	assert.Nil(t, v)

	v, err = OptionalInt64Query(newContext("/books/?author=3"), "author")
	require.NoError(t, err)
	require.NotNil(t, v)
	assert.Equal(t, int64(3), *v)

	_, err = OptionalInt64Query(newContext("/books/?author=x"), "author")
	assert.Error(t, err)
}

func TestParseIDParam(t *testing.T) {
	c := newContext("/authors/12/")
	c.Params = gin.Params{{Key: "id", Value: "12"}}
	id, err := ParseIDParam(c, "id")
	require.NoError(t, err)
	assert.Equal(t, int64(12), id)

	c.Params = gin.Params{{Key: "id", Value: "abc"}}
	_, err = ParseIDParam(c, "id")
	assert.Error(t, err)
}
