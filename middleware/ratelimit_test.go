package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestRateLimiter_Allow(t *testing.T) {
	rl := NewRateLimiter(3, time.Minute, "too many requests")

	for i := 0; i < 3; i++ {
		if !rl.Allow("1.2.3.4") {
			t.Fatalf("request %d should be allowed", i+1)
		}
	}
	if rl.Allow("1.2.3.4") {
		t.Fatal("4th request should be rejected")
	}

	// 其他 IP 不受影响
	if !rl.Allow("5.6.7.8") {
		t.Fatal("different ip should have its own budget")
	}
}

func TestRateLimiter_Middleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/ping", NewRateLimiter(2, time.Minute, "slow down").Middleware(), func(c *gin.Context) {
		c.String(http.StatusOK, "pong")
	})

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.RemoteAddr = "9.9.9.9:1234"
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		codes = append(codes, w.Code)
	}
	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)
}

func TestRouteLimit_OnlyNamedRoutes(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RouteLimit(map[string]*RateLimiter{
		"/login": NewRateLimiter(1, time.Minute, "too many login attempts"),
	}))
	r.GET("/login", func(c *gin.Context) { c.String(http.StatusOK, "ok") })
	r.GET("/open", func(c *gin.Context) { c.String(http.StatusOK, "ok") })

	hit := func(path string) int {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		req.RemoteAddr = "9.9.9.9:1234"
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w.Code
	}

	assert.Equal(t, http.StatusOK, hit("/login"))
	assert.Equal(t, http.StatusTooManyRequests, hit("/login"))

	// 未列出的路由不限
	for i := 0; i < 5; i++ {
		assert.Equal(t, http.StatusOK, hit("/open"))
	}
}
