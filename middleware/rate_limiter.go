package middleware

import (
	"net/http"
	"sync"
	"time"

	"staynest/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// limiterIdleTTL is how long a client's limiter is kept after its last request.
// A limiter idle for a full minute has refilled its burst, so dropping it
// afterwards loses no state.
const limiterIdleTTL = 3 * time.Minute

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// rateLimiterStore holds a map of client IPs to their rate limiters.
type rateLimiterStore struct {
	visitors  map[string]*visitor
	perMin    int
	idleTTL   time.Duration
	lastSweep time.Time
	now       func() time.Time
	mu        sync.Mutex
}

func newRateLimiterStore(perMin int) *rateLimiterStore {
	if perMin <= 0 {
		perMin = 100
	}
	return &rateLimiterStore{
		visitors: make(map[string]*visitor),
		perMin:   perMin,
		idleTTL:  limiterIdleTTL,
		now:      time.Now,
	}
}

// getLimiter returns the rate limiter for a given IP, creating one if it
// doesn't exist. Idle entries are swept at most once per idleTTL.
func (s *rateLimiterStore) getLimiter(ip string) *rate.Limiter {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	if now.Sub(s.lastSweep) >= s.idleTTL {
		s.evictIdle(now)
		s.lastSweep = now
	}

	v, exists := s.visitors[ip]
	if !exists {
		// perMin requests per minute, bursting up to the full minute's allowance.
		v = &visitor{limiter: rate.NewLimiter(rate.Every(time.Minute/time.Duration(s.perMin)), s.perMin)}
		s.visitors[ip] = v
	}
	v.lastSeen = now
	return v.limiter
}

func (s *rateLimiterStore) evictIdle(now time.Time) {
	for ip, v := range s.visitors {
		if now.Sub(v.lastSeen) >= s.idleTTL {
			delete(s.visitors, ip)
		}
	}
}

func (s *rateLimiterStore) size() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.visitors)
}

// RateLimitMiddleware limits requests per client IP to perMin per minute.
// The IP comes from gin's ClientIP, so forwarding headers only count when the
// engine trusts the connecting proxy (see gin.Engine.SetTrustedProxies).
func RateLimitMiddleware(perMin int) gin.HandlerFunc {
	return rateLimit(newRateLimiterStore(perMin))
}

func rateLimit(store *rateLimiterStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		ip := c.ClientIP()
		if !store.getLimiter(ip).Allow() {
			utils.RequestLogger(c).Warn("Rate limit exceeded", zap.String("ip", ip))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "Rate limit exceeded. Try again later."})
			return
		}
		c.Next()
	}
}
