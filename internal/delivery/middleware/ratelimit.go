package middleware

import (
	"net/http"
	"sync"
	"time"

	"roicalc/pkg/metrics"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// idle limiters are dropped after this long
const limiterTTL = 10 * time.Minute

type clientLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// limiterSet hands out one token bucket per client IP
type limiterSet struct {
	mu       sync.Mutex
	clients  map[string]*clientLimiter
	limit    rate.Limit
	burst    int
	lastScan time.Time
}

func newLimiterSet(perSecond float64, burst int) *limiterSet {
	return &limiterSet{
		clients: make(map[string]*clientLimiter),
		limit:   rate.Limit(perSecond),
		burst:   burst,
	}
}

func (s *limiterSet) allow(key string, now time.Time) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if now.Sub(s.lastScan) > limiterTTL {
		for k, cl := range s.clients {
			if now.Sub(cl.lastSeen) > limiterTTL {
				delete(s.clients, k)
			}
		}
		s.lastScan = now
	}

	cl, ok := s.clients[key]
	if !ok {
		cl = &clientLimiter{limiter: rate.NewLimiter(s.limit, s.burst)}
		s.clients[key] = cl
	}
	cl.lastSeen = now

	return cl.limiter.AllowN(now, 1)
}

// RateLimit rejects clients that exceed perSecond requests with burst headroom.
// A non-positive perSecond disables limiting.
func RateLimit(perSecond float64, burst int, m *metrics.Metrics) gin.HandlerFunc {
	if perSecond <= 0 {
		return func(c *gin.Context) { c.Next() }
	}
	if burst < 1 {
		burst = 1
	}
	limiters := newLimiterSet(perSecond, burst)

	return func(c *gin.Context) {
		if !limiters.allow(c.ClientIP(), time.Now()) {
			m.RecordRateLimited()
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error":      "Rate limit exceeded",
				"request_id": c.GetString("request_id"),
			})
			return
		}

		c.Next()
	}
}
