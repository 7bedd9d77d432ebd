package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/habtesl/devblog/internal/infrastructure/metrics"
	usecasecontract "github.com/habtesl/devblog/internal/usecase/contract"
)

// RequestLogger logs one line per request with latency, status, client IP and
// a request ID, and feeds the request counter. Health checks are not logged
// in prod to keep probe noise out of the logs.
func RequestLogger(logger usecasecontract.IAppLogger, environment string) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		requestID := c.Request.Header.Get("X-Request-ID")
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Header("X-Request-ID", requestID)

		c.Next()

		status := c.Writer.Status()
		route := c.FullPath()
		if route == "" {
			route = c.Request.URL.Path
		}
		metrics.HTTPRequests.WithLabelValues(c.Request.Method, route, strconv.Itoa(status)).Inc()

		if environment == "prod" && c.Request.URL.Path == "/health" {
			return
		}
		elapsed := time.Since(start)
		logger.Infof("request: %s %s - status: %d - time: %.2fms - ip: %s - id: %s",
			c.Request.Method, c.Request.URL.Path, status,
			float64(elapsed.Microseconds())/1000.0, ClientIdentity(c.Request), requestID)
	}
}
