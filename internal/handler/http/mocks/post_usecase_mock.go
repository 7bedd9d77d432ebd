package mocks

import (
	"context"
	"errors"

	"github.com/habtesl/devblog/internal/domain/entity"
	usecasecontract "github.com/habtesl/devblog/internal/usecase/contract"
)

// MockPostUsecase is a mock implementation of the IPostUseCase interface.
type MockPostUsecase struct {
	// Control mock behavior
	ShouldFailList    bool
	ShouldStorageFail bool

	// Return values
	MockPosts  []entity.PostSummary
	MockDetail entity.PostDetail

	// Call tracking
	ClearCalls int
}

// Ensure MockPostUsecase implements the interface expected by handlers
var _ usecasecontract.IPostUseCase = (*MockPostUsecase)(nil)

func NewMockPostUsecase() *MockPostUsecase {
	desc := "A mock post"
	return &MockPostUsecase{
		MockPosts: []entity.PostSummary{
			{Slug: "newest-post", Title: "Newest Post", Date: "2024-01-15", Description: &desc, Tags: []string{"go"}},
			{Slug: "older-post", Title: "Older Post", Date: "2024-01-10", Tags: []string{}},
		},
		MockDetail: entity.PostDetail{
			Meta:    entity.PostMeta{Slug: "newest-post", Title: "Newest Post", Date: "2024-01-15", Tags: []string{"go"}},
			Content: "# Newest Post\n\nmock body\n",
		},
	}
}

func (m *MockPostUsecase) ListPosts(ctx context.Context, limit, offset int) ([]entity.PostSummary, int, error) {
	if m.ShouldStorageFail {
		return nil, 0, &entity.StorageError{Op: "list", Err: errors.New("backend unavailable")}
	}
	if m.ShouldFailList {
		return nil, 0, errors.New("listing failed")
	}
	total := len(m.MockPosts)
	if offset > total {
		offset = total
	}
	end := offset + limit
	if end > total {
		end = total
	}
	return m.MockPosts[offset:end], total, nil
}

func (m *MockPostUsecase) GetPost(ctx context.Context, slug string) (entity.PostDetail, error) {
	if err := entity.ValidateSlug(slug); err != nil {
		return entity.PostDetail{}, err
	}
	if m.ShouldStorageFail {
		return entity.PostDetail{}, &entity.StorageError{Op: "load", Err: errors.New("backend unavailable")}
	}
	if slug != m.MockDetail.Meta.Slug {
		return entity.PostDetail{}, entity.ErrPostNotFound
	}
	return m.MockDetail, nil
}

func (m *MockPostUsecase) CacheStats() usecasecontract.CacheStats {
	return usecasecontract.CacheStats{
		PostsListSize: 1,
		PostCacheSize: 2,
		PostCacheMax:  512,
		SlugMapSize:   0,
		TTLSeconds:    300,
	}
}

func (m *MockPostUsecase) ClearCaches() {
	m.ClearCalls++
}
