package middleware

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"SnackShop/pkg/response"

	"github.com/gin-gonic/gin"
	cmap "github.com/orcaman/concurrent-map/v2"
)

// RateLimiter 按 IP 的固定窗口限流
type RateLimiter struct {
	limit   int
	window  time.Duration
	message string
	hits    cmap.ConcurrentMap[string, int]
}

func NewRateLimiter(limit int, window time.Duration, message string) *RateLimiter {
	rl := &RateLimiter{
		limit:   limit,
		window:  window,
		message: message,
		hits:    cmap.New[int](),
	}
	go rl.janitor()
	return rl
}

func (rl *RateLimiter) windowKey(ip string, now time.Time) string {
	bucket := now.Unix() / int64(rl.window.Seconds())
	return fmt.Sprintf("%s:%d", ip, bucket)
}

// janitor 定期清掉过期窗口的计数
func (rl *RateLimiter) janitor() {
	ticker := time.NewTicker(rl.window)
	defer ticker.Stop()
	for range ticker.C {
		current := strconv.FormatInt(time.Now().Unix()/int64(rl.window.Seconds()), 10)
		for _, key := range rl.hits.Keys() {
			if !strings.HasSuffix(key, ":"+current) {
				rl.hits.Remove(key)
			}
		}
	}
}

func (rl *RateLimiter) Allow(ip string) bool {
	key := rl.windowKey(ip, time.Now())
	count := rl.hits.Upsert(key, 1, func(exist bool, cur, n int) int {
		if exist {
			return cur + n
		}
		return n
	})
	return count <= rl.limit
}

func (rl *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !rl.Allow(c.ClientIP()) {
			response.Abort(c, http.StatusTooManyRequests, rl.message)
			return
		}
		c.Next()
	}
}

// RouteLimit 对个别路由叠加更严的限流，按 FullPath 匹配
func RouteLimit(limits map[string]*RateLimiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		if rl, ok := limits[c.FullPath()]; ok && !rl.Allow(c.ClientIP()) {
			response.Abort(c, http.StatusTooManyRequests, rl.message)
			return
		}
		c.Next()
	}
}
