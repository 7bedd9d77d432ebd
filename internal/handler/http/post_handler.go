package http

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/habtesl/devblog/internal/domain/entity"
	"github.com/habtesl/devblog/internal/handler/http/dto"
	usecasecontract "github.com/habtesl/devblog/internal/usecase/contract"
)

// Pagination bounds enforced at this boundary, not in the usecase.
const (
	DefaultPageLimit = 20
	MaxPageLimit     = 100
)

// PostHandlerInterface defines the methods for the post handler to allow
// interface-based dependency injection (for testing/mocking).
type PostHandlerInterface interface {
	ListPostsHandler(*gin.Context)
	GetPostHandler(*gin.Context)
}

// Ensure PostHandler implements PostHandlerInterface
var _ PostHandlerInterface = (*PostHandler)(nil)

type PostHandler struct {
	postUsecase usecasecontract.IPostUseCase
	config      usecasecontract.IConfigProvider
	logger      usecasecontract.IAppLogger
}

func NewPostHandler(postUsecase usecasecontract.IPostUseCase, config usecasecontract.IConfigProvider, logger usecasecontract.IAppLogger) *PostHandler {
	return &PostHandler{
		postUsecase: postUsecase,
		config:      config,
		logger:      logger,
	}
}

// ListPostsHandler serves GET /posts with limit/offset pagination.
func (h *PostHandler) ListPostsHandler(c *gin.Context) {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(DefaultPageLimit)))
	if err != nil || limit < 1 || limit > MaxPageLimit {
		ErrorHandler(c, http.StatusUnprocessableEntity,
			fmt.Sprintf("limit must be an integer between 1 and %d", MaxPageLimit), ErrCodeValidation)
		return
	}

	offset, err := strconv.Atoi(c.DefaultQuery("offset", "0"))
	if err != nil || offset < 0 {
		ErrorHandler(c, http.StatusUnprocessableEntity,
			"offset must be a non-negative integer", ErrCodeValidation)
		return
	}

	posts, total, err := h.postUsecase.ListPosts(c.Request.Context(), limit, offset)
	if err != nil {
		h.renderError(c, err)
		return
	}

	summaries := make([]dto.PostSummaryResponse, 0, len(posts))
	for _, p := range posts {
		summaries = append(summaries, dto.ToPostSummaryResponse(p))
	}

	SetCacheHeaders(c, h.config.GetCacheTTL(), GenerateETag(fmt.Sprintf("%d-%d-%d", total, offset, limit)))
	SuccessHandler(c, http.StatusOK, dto.PostListResponse{
		Posts:  summaries,
		Total:  total,
		Limit:  limit,
		Offset: offset,
	})
}

// GetPostHandler serves GET /post/:slug.
func (h *PostHandler) GetPostHandler(c *gin.Context) {
	slug := c.Param("slug")

	detail, err := h.postUsecase.GetPost(c.Request.Context(), slug)
	if err != nil {
		h.renderError(c, err)
		return
	}

	SetCacheHeaders(c, h.config.GetCacheTTL(), GenerateETag(detail.Content))
	SuccessHandler(c, http.StatusOK, dto.ToPostDetailResponse(detail))
}

// renderError maps domain errors onto the HTTP error taxonomy. Unclassified
// errors become an opaque 500 so no internal detail leaks.
func (h *PostHandler) renderError(c *gin.Context, err error) {
	path := c.Request.URL.Path

	var parseErr *entity.ParseError
	var storageErr *entity.StorageError

	switch {
	case errors.Is(err, entity.ErrInvalidSlug):
		h.logger.Warningf("validation error on %s: %v", path, err)
		ErrorHandler(c, http.StatusBadRequest,
			"Invalid slug format. Use only alphanumeric characters, hyphens, and underscores.", ErrCodeValidation)
	case errors.Is(err, entity.ErrPostNotFound):
		h.logger.Debugf("post not found on %s", path)
		ErrorHandler(c, http.StatusNotFound, "Post not found", ErrCodePostNotFound)
	case errors.As(err, &parseErr):
		h.logger.Warningf("validation error on %s: %v", path, err)
		ErrorHandler(c, http.StatusBadRequest,
			fmt.Sprintf("Invalid frontmatter format in post: %s", parseErr.Slug), ErrCodeValidation)
	case errors.As(err, &storageErr):
		h.logger.Errorf("storage error on %s: %v", path, err)
		ErrorHandler(c, http.StatusServiceUnavailable, "Content temporarily unavailable", ErrCodeStorage)
	default:
		h.logger.Errorf("unhandled error on %s: %v", path, err)
		ErrorHandler(c, http.StatusInternalServerError, "Internal server error", ErrCodeInternal)
	}
}
