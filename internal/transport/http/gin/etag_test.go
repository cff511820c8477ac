package httpgin

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteJSONWithCache_SetsHeaders(t *testing.T) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

	writeJSONWithCache(c, http.StatusOK, gin.H{"id": 1}, "public, max-age=60", true)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "public, max-age=60", w.Header().Get("Cache-Control"))
	assert.NotEmpty(t, w.Header().Get("ETag"))
	assert.JSONEq(t, `{"id":1}`, w.Body.String())
}

func TestWriteJSONWithCache_NotModified(t *testing.T) {
	gin.SetMode(gin.TestMode)

	first := httptest.NewRecorder()
	c1, _ := gin.CreateTestContext(first)
	c1.Request = httptest.NewRequest(http.MethodGet, "/", nil)

	writeJSONWithCache(c1, http.StatusOK, gin.H{"id": 1}, "", true)

	tag := first.Header().Get("ETag")
	require.NotEmpty(t, tag)

	second := httptest.NewRecorder()
	c2, _ := gin.CreateTestContext(second)
	c2.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	c2.Request.Header.Set("If-None-Match", tag)

	writeJSONWithCache(c2, http.StatusOK, gin.H{"id": 1}, "", true)
	// Flush the buffered status; the engine normally does this after handlers.
	c2.Writer.WriteHeaderNow()

	assert.Equal(t, http.StatusNotModified, second.Code)
	assert.Empty(t, second.Body.String())
}
