package http

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
)

func TestCORSMiddleware(t *testing.T) {
	newRouter := func(origins []string) *gin.Engine {
		router := gin.New()
		router.Use(CORSMiddleware(origins))
		router.GET("/test", func(c *gin.Context) {
			c.Status(http.StatusOK)
		})
		return router
	}

	t.Run("allows configured origin", func(t *testing.T) {
		router := newRouter([]string{"http://localhost:3000"})

		req, _ := http.NewRequest("GET", "/test", nil)
		req.Header.Set("Origin", "http://localhost:3000")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		if got := w.Header().Get("Access-Control-Allow-Origin"); got != "http://localhost:3000" {
			t.Errorf("Allow-Origin = %q, want http://localhost:3000", got)
		}
	})

	t.Run("rejects unknown origin", func(t *testing.T) {
		router := newRouter([]string{"http://localhost:3000"})

		req, _ := http.NewRequest("GET", "/test", nil)
		req.Header.Set("Origin", "https://evil.example")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		if got := w.Header().Get("Access-Control-Allow-Origin"); got != "" {
			t.Errorf("Allow-Origin = %q, want empty", got)
		}
	})

	t.Run("supports wildcard suffix", func(t *testing.T) {
		router := newRouter([]string{"http://localhost:*"})

		req, _ := http.NewRequest("GET", "/test", nil)
		req.Header.Set("Origin", "http://localhost:5173")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		if got := w.Header().Get("Access-Control-Allow-Origin"); got != "http://localhost:5173" {
			t.Errorf("Allow-Origin = %q, want the request origin", got)
		}
	})

	t.Run("answers preflight with 204", func(t *testing.T) {
		router := newRouter([]string{"http://localhost:3000"})

		req, _ := http.NewRequest("OPTIONS", "/test", nil)
		req.Header.Set("Origin", "http://localhost:3000")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		if w.Code != http.StatusNoContent {
			t.Errorf("Status = %d, want %d", w.Code, http.StatusNoContent)
		}
	})
}

func TestRateLimitMiddleware(t *testing.T) {
	newRouter := func(window time.Duration, max int) *gin.Engine {
		router := gin.New()
		router.Use(RateLimitMiddleware(window, max))
		router.GET("/test", func(c *gin.Context) {
			c.Status(http.StatusOK)
		})
		return router
	}

	get := func(router *gin.Engine, ip string) *httptest.ResponseRecorder {
		req, _ := http.NewRequest("GET", "/test", nil)
		req.RemoteAddr = ip + ":12345"
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w
	}

	t.Run("answers 429 once the budget is spent", func(t *testing.T) {
		router := newRouter(time.Hour, 3)

		for i := 0; i < 3; i++ {
			if w := get(router, "10.0.0.1"); w.Code != http.StatusOK {
				t.Fatalf("request %d: Status = %d, want %d", i+1, w.Code, http.StatusOK)
			}
		}

		if w := get(router, "10.0.0.1"); w.Code != http.StatusTooManyRequests {
			t.Errorf("Status = %d, want %d", w.Code, http.StatusTooManyRequests)
		}
	})

	t.Run("limits are per client IP", func(t *testing.T) {
		router := newRouter(time.Hour, 1)

		if w := get(router, "10.0.0.1"); w.Code != http.StatusOK {
			t.Fatalf("first client: Status = %d, want %d", w.Code, http.StatusOK)
		}
		if w := get(router, "10.0.0.1"); w.Code != http.StatusTooManyRequests {
			t.Errorf("first client second request: Status = %d, want 429", w.Code)
		}
		if w := get(router, "10.0.0.2"); w.Code != http.StatusOK {
			t.Errorf("second client: Status = %d, want %d", w.Code, http.StatusOK)
		}
	})

	t.Run("disabled when config is zero", func(t *testing.T) {
		router := newRouter(0, 0)

		for i := 0; i < 20; i++ {
			if w := get(router, "10.0.0.1"); w.Code != http.StatusOK {
				t.Fatalf("request %d: Status = %d, want %d", i+1, w.Code, http.StatusOK)
			}
		}
	})
}
