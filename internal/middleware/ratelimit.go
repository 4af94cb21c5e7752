package middleware

import (
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/time/rate"

	"github.com/yhoon3002/schedule-bot/pkg/response"
)

const (
	maxClients = 1000
	clientTTL  = 5 * time.Minute
)

// RateLimit caps the per-client request rate keyed by source IP.
// Zero or negative disables the limit.
func (m Middleware) RateLimit(requestsPerMin int) gin.HandlerFunc {
	if requestsPerMin <= 0 {
		return func(c *gin.Context) { c.Next() }
	}
	table := newLimiterTable(requestsPerMin)

	return func(c *gin.Context) {
		ip := extractIP(c.Request)
		if !table.allow(ip) {
			m.l.Warnf(c.Request.Context(), "middleware: rate limit exceeded for %s", ip)
			c.AbortWithStatusJSON(http.StatusTooManyRequests, response.Resp{
				ErrorCode: http.StatusTooManyRequests,
				Message:   "Too many requests. Please slow down.",
			})
			return
		}
		c.Next()
	}
}

// limiterTable keeps one token bucket per client, evicting idle clients
// so the table cannot grow without bound.
type limiterTable struct {
	limiters *expirable.LRU[string, *rate.Limiter]
	rate     rate.Limit
	burst    int
}

func newLimiterTable(requestsPerMin int) *limiterTable {
	burst := requestsPerMin / 10
	if burst < 1 {
		burst = 1
	}
	return &limiterTable{
		limiters: expirable.NewLRU[string, *rate.Limiter](maxClients, nil, clientTTL),
		rate:     rate.Limit(float64(requestsPerMin) / 60.0),
		burst:    burst,
	}
}

func (t *limiterTable) allow(key string) bool {
	limiter, ok := t.limiters.Get(key)
	if !ok {
		limiter = rate.NewLimiter(t.rate, t.burst)
		t.limiters.Add(key, limiter)
	}
	return limiter.Allow()
}

// extractIP resolves the client IP, trusting proxy headers when present.
func extractIP(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		ips := strings.Split(xff, ",")
		return strings.TrimSpace(ips[0])
	}
	if xri := r.Header.Get("X-Real-IP"); xri != "" {
		return xri
	}
	ip, _, _ := net.SplitHostPort(r.RemoteAddr)
	return ip
}
