package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
)

// Limiter is a per-client token bucket, refilled at rps tokens per second.
// Applied to the auth routes so a credential-stuffing loop cannot hammer
// bcrypt.
type Limiter struct {
	mu      sync.Mutex
	buckets map[string]chan struct{}
	rps     int
}

func NewLimiter(rps int) *Limiter {
	return &Limiter{
		buckets: make(map[string]chan struct{}),
		rps:     rps,
	}
}

// RateLimit returns a gin middleware drawing from the client's bucket.
func (l *Limiter) RateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokens := l.bucket(c.ClientIP())
		select {
		case <-tokens:
			c.Next()
		default:
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "rate limit exceeded"})
		}
	}
}

func (l *Limiter) bucket(id string) chan struct{} {
	l.mu.Lock()
	defer l.mu.Unlock()
	tokens, ok := l.buckets[id]
	if !ok {
		tokens = make(chan struct{}, l.rps)
		for i := 0; i < l.rps; i++ {
			tokens <- struct{}{}
		}
		l.buckets[id] = tokens
		go refill(tokens, l.rps)
	}
	return tokens
}

func refill(tokens chan struct{}, rps int) {
	ticker := time.NewTicker(time.Second / time.Duration(rps))
	defer ticker.Stop()
	for range ticker.C {
		select {
		case tokens <- struct{}{}:
		default:
		}
	}
}
