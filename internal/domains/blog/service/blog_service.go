package service

import (
	"bytes"
	"context"

	"github.com/google/uuid"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	b "studio-backend/internal/domains/blog"
	"studio-backend/pkg/logger"
)

type blogService struct {
	repo     b.Repository
	markdown goldmark.Markdown
}

func NewBlogService(repo b.Repository) b.Service {
	return &blogService{
		repo: repo,
		markdown: goldmark.New(
			goldmark.WithExtensions(extension.GFM),
		),
	}
}

func (s *blogService) List(ctx context.Context) ([]*b.PostResponse, bool) {
	posts, err := s.repo.List(ctx)
	if err != nil {
		logger.Error("blog listing degraded to empty result", err)
		return []*b.PostResponse{}, true
	}

	responses := make([]*b.PostResponse, 0, len(posts))
	for _, post := range posts {
		responses = append(responses, s.toResponse(post))
	}
	return responses, false
}

func (s *blogService) Create(ctx context.Context, req *b.CreateRequest) (*b.PostResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	post := &b.Post{
		ID:       uuid.New(),
		Title:    req.Title,
		Excerpt:  req.Excerpt,
		Content:  req.Content,
		Author:   req.Author,
		Date:     req.Date,
		Category: req.Category,
		ImageURL: req.ImageURL,
	}

	created, err := s.repo.Create(ctx, post)
	if err != nil {
		return nil, err
	}
	return s.toResponse(created), nil
}

func (s *blogService) Update(ctx context.Context, id uuid.UUID, req *b.UpdateRequest) (*b.PostResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	updated, err := s.repo.Update(ctx, id, req)
	if err != nil {
		return nil, err
	}
	return s.toResponse(updated), nil
}

func (s *blogService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}

// toResponse renders the markdown body. A render failure falls back to
// the raw content rather than dropping the post.
func (s *blogService) toResponse(post *b.Post) *b.PostResponse {
	var buf bytes.Buffer
	if err := s.markdown.Convert([]byte(post.Content), &buf); err != nil {
		logger.Error("markdown render failed", err)
		return &b.PostResponse{Post: *post, ContentHTML: post.Content}
	}

	return &b.PostResponse{Post: *post, ContentHTML: buf.String()}
}
