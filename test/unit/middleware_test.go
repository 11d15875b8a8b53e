package unit

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/assert/v2"

	"zoo-service/middleware"
)

func TestCORSHeadersApplied(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := gin.Default()
	r.Use(middleware.CORSMiddleware())
	r.GET("/animals", func(c *gin.Context) { c.Status(http.StatusOK) })

	req, _ := http.NewRequest("GET", "/animals", nil)
	w := httptest.NewRecorder()

	r.ServeHTTP(w, req)

	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "POST, GET, OPTIONS, PUT, DELETE, PATCH, CONNECT, TRACE", w.Header().Get("Access-Control-Allow-Methods"))
	assert.Equal(t, "X-Item-Length, X-Request-ID", w.Header().Get("Access-Control-Expose-Headers"))
	assert.Equal(t, "86400", w.Header().Get("Access-Control-Max-Age"))
}

func TestRequestIDGenerated(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := gin.Default()
	r.Use(middleware.RequestIDMiddleware())
	r.GET("/animals", func(c *gin.Context) { c.Status(http.StatusOK) })

	req, _ := http.NewRequest("GET", "/animals", nil)
	w := httptest.NewRecorder()

	r.ServeHTTP(w, req)

	// a fresh uuid is issued when the caller sends none
	assert.NotEqual(t, "", w.Header().Get("X-Request-ID"))
}

func TestRequestIDPassthrough(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := gin.Default()
	r.Use(middleware.RequestIDMiddleware())
	r.GET("/animals", func(c *gin.Context) { c.Status(http.StatusOK) })

	req, _ := http.NewRequest("GET", "/animals", nil)
	req.Header.Set("X-Request-ID", "caller-supplied-id")
	w := httptest.NewRecorder()

	r.ServeHTTP(w, req)

	// a caller supplied id is passed through unchanged
	assert.Equal(t, "caller-supplied-id", w.Header().Get("X-Request-ID"))
}
