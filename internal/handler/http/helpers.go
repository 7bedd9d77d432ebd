package http

import (
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/habtesl/devblog/internal/handler/http/dto"
)

// Version is the API version reported by /health and /.
const Version = "0.1.0"

// Machine-readable error codes returned in ErrorResponse bodies.
const (
	ErrCodeValidation   = "VALIDATION_ERROR"
	ErrCodePostNotFound = "POST_NOT_FOUND"
	ErrCodeStorage      = "STORAGE_ERROR"
	ErrCodeRateLimited  = "RATE_LIMITED"
	ErrCodeInternal     = "INTERNAL_ERROR"
)

// ErrorHandler centralizes error responses.
func ErrorHandler(c *gin.Context, statusCode int, detail, errorCode string) {
	c.JSON(statusCode, dto.ErrorResponse{Detail: detail, ErrorCode: errorCode})
}

// SuccessHandler centralizes success responses.
func SuccessHandler(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, data)
}

// MessageHandler centralizes message responses.
func MessageHandler(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, dto.MessageResponse{Message: message})
}

// GenerateETag returns the quoted MD5 hex digest of content.
func GenerateETag(content string) string {
	sum := md5.Sum([]byte(content))
	return `"` + hex.EncodeToString(sum[:]) + `"`
}

// SetCacheHeaders marks the response publicly cacheable for the cache TTL.
func SetCacheHeaders(c *gin.Context, ttl time.Duration, etag string) {
	c.Header("Cache-Control", fmt.Sprintf("public, max-age=%d", int(ttl.Seconds())))
	if etag != "" {
		c.Header("ETag", etag)
	}
}
