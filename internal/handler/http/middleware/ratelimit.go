package middleware

import (
	"net"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/habtesl/devblog/internal/handler/http/dto"
	"github.com/habtesl/devblog/internal/infrastructure/metrics"
	"github.com/habtesl/devblog/internal/infrastructure/ratelimit"
	usecasecontract "github.com/habtesl/devblog/internal/usecase/contract"
)

// RateLimiter applies the sliding-window limiter per client identity. Health
// checks bypass the limiter entirely. Quota headers are set on every
// non-bypassed response, allowed or denied.
func RateLimiter(limiter *ratelimit.Limiter, logger usecasecontract.IAppLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.URL.Path == "/health" {
			c.Next()
			return
		}

		clientID := ClientIdentity(c.Request)
		decision := limiter.Allow(clientID, time.Now())

		c.Header("X-RateLimit-Limit-Minute", strconv.Itoa(decision.LimitMinute))
		c.Header("X-RateLimit-Remaining-Minute", strconv.Itoa(decision.RemainingMinute))
		c.Header("X-RateLimit-Limit-Hour", strconv.Itoa(decision.LimitHour))
		c.Header("X-RateLimit-Remaining-Hour", strconv.Itoa(decision.RemainingHour))

		if !decision.Allowed {
			logger.Warningf("rate limit exceeded for client: %s", clientID)
			metrics.RateLimitDenials.Inc()
			c.Header("Retry-After", strconv.Itoa(int(decision.RetryAfter.Seconds())))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, dto.ErrorResponse{
				Detail:    "Rate limit exceeded. Please try again later.",
				ErrorCode: "RATE_LIMITED",
			})
			return
		}

		c.Next()
	}
}

// ClientIdentity extracts the client identity used for rate limiting:
// the first X-Forwarded-For value, then X-Real-IP, then the transport peer
// address. Requests with no resolvable identity share one "unknown" bucket.
func ClientIdentity(r *http.Request) string {
	if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
		return strings.TrimSpace(strings.SplitN(forwarded, ",", 2)[0])
	}
	if realIP := r.Header.Get("X-Real-IP"); realIP != "" {
		return realIP
	}
	if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil && host != "" {
		return host
	}
	if r.RemoteAddr != "" {
		return r.RemoteAddr
	}
	return "unknown"
}
