package dto

import "github.com/habtesl/devblog/internal/domain/entity"

// PostSummaryResponse is the DTO for a post in listings and detail metadata.
type PostSummaryResponse struct {
	Slug        string   `json:"slug"`
	Title       string   `json:"title"`
	Date        string   `json:"date"`
	Description *string  `json:"description"`
	Tags        []string `json:"tags"`
}

// PostListResponse is the paginated listing payload.
type PostListResponse struct {
	Posts  []PostSummaryResponse `json:"posts"`
	Total  int                   `json:"total"`
	Limit  int                   `json:"limit"`
	Offset int                   `json:"offset"`
}

// PostDetailResponse is the full post payload.
type PostDetailResponse struct {
	Meta    PostSummaryResponse `json:"meta"`
	Content string              `json:"content"`
}

// converts an entity.PostSummary to its DTO.
func ToPostSummaryResponse(m entity.PostSummary) PostSummaryResponse {
	return PostSummaryResponse{
		Slug:        m.Slug,
		Title:       m.Title,
		Date:        m.Date,
		Description: m.Description,
		Tags:        m.Tags,
	}
}

// converts an entity.PostDetail to its DTO.
func ToPostDetailResponse(d entity.PostDetail) PostDetailResponse {
	return PostDetailResponse{
		Meta:    ToPostSummaryResponse(d.Meta),
		Content: d.Content,
	}
}
