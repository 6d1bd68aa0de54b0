package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/filmtv1308-cmyk/Big-TeleSales/internal/observability/logging"
)

func newRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.Use(Gin(GinConfig{SkipPaths: []string{"/health"}, Module: "test"}))
	r.Use(PanicRecoveryGin())
	r.GET("/echo", func(c *gin.Context) {
		c.String(http.StatusOK, logging.RequestIDFromContext(c.Request.Context()))
	})
	r.GET("/boom", func(c *gin.Context) {
		panic("boom")
	})
	return r
}

func TestGinRequestID(t *testing.T) {
	r := newRouter()

	t.Run("propagates header", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/echo", nil)
		req.Header.Set(RequestIDHeader, "req-7")
		r.ServeHTTP(w, req)

		if w.Body.String() != "req-7" || w.Header().Get(RequestIDHeader) != "req-7" {
			t.Errorf("body = %q, header = %q", w.Body.String(), w.Header().Get(RequestIDHeader))
		}
	})

	t.Run("generates one", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/echo", nil))

		if w.Body.String() == "" || w.Body.String() != w.Header().Get(RequestIDHeader) {
			t.Errorf("body = %q, header = %q", w.Body.String(), w.Header().Get(RequestIDHeader))
		}
	})
}

func TestPanicRecoveryGin(t *testing.T) {
	w := httptest.NewRecorder()
	newRouter().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/boom", nil))

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", w.Code)
	}
	if w.Body.String() != `{"error":"internal_error","message":"internal server error"}` {
		t.Errorf("body = %s", w.Body.String())
	}
}
