package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	b "studio-backend/internal/domains/blog"
)

type fakeBlogRepo struct {
	posts   []*b.Post
	listErr error
}

func (f *fakeBlogRepo) List(ctx context.Context) ([]*b.Post, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.posts, nil
}

func (f *fakeBlogRepo) Create(ctx context.Context, p *b.Post) (*b.Post, error) {
	f.posts = append(f.posts, p)
	return p, nil
}

func (f *fakeBlogRepo) Update(ctx context.Context, id uuid.UUID, req *b.UpdateRequest) (*b.Post, error) {
	for _, post := range f.posts {
		if post.ID == id {
			if req.Title != nil {
				post.Title = *req.Title
			}
			if req.Content != nil {
				post.Content = *req.Content
			}
			return post, nil
		}
	}
	return nil, b.ErrPostNotFound
}

func (f *fakeBlogRepo) Delete(ctx context.Context, id uuid.UUID) error {
	for i, post := range f.posts {
		if post.ID == id {
			f.posts = append(f.posts[:i], f.posts[i+1:]...)
			return nil
		}
	}
	return b.ErrPostNotFound
}

func validCreateRequest() *b.CreateRequest {
	return &b.CreateRequest{
		Title:   "Faith and Enterprise",
		Content: "## Week one\n\nWe kicked off the cohort.",
		Author:  "Jane",
		Date:    time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
	}
}

func TestCreate_RendersMarkdown(t *testing.T) {
	svc := NewBlogService(&fakeBlogRepo{})

	created, err := svc.Create(context.Background(), validCreateRequest())

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, created.ID)
	assert.Contains(t, created.ContentHTML, "<h2")
	assert.Contains(t, created.ContentHTML, "Week one")
	// Raw markdown stays intact for editing.
	assert.Contains(t, created.Content, "## Week one")
}

func TestCreate_RequiresTitleContentAuthorDate(t *testing.T) {
	svc := NewBlogService(&fakeBlogRepo{})

	for _, mutate := range []func(*b.CreateRequest){
		func(r *b.CreateRequest) { r.Title = "" },
		func(r *b.CreateRequest) { r.Content = "" },
		func(r *b.CreateRequest) { r.Author = "" },
		func(r *b.CreateRequest) { r.Date = time.Time{} },
	} {
		req := validCreateRequest()
		mutate(req)

		_, err := svc.Create(context.Background(), req)
		assert.Error(t, err)
	}
}

func TestList_ReadFailureDegradesToEmpty(t *testing.T) {
	svc := NewBlogService(&fakeBlogRepo{listErr: errors.New("connection refused")})

	posts, degraded := svc.List(context.Background())

	assert.Empty(t, posts)
	assert.True(t, degraded)
}

func TestUpdate_RerendersChangedContent(t *testing.T) {
	repo := &fakeBlogRepo{}
	svc := NewBlogService(repo)

	created, err := svc.Create(context.Background(), validCreateRequest())
	require.NoError(t, err)

	content := "**bold** update"
	updated, err := svc.Update(context.Background(), created.ID, &b.UpdateRequest{Content: &content})

	require.NoError(t, err)
	assert.Contains(t, updated.ContentHTML, "<strong>bold</strong>")
}

func TestDelete_UnknownIDNotFound(t *testing.T) {
	svc := NewBlogService(&fakeBlogRepo{})

	err := svc.Delete(context.Background(), uuid.New())

	assert.ErrorIs(t, err, b.ErrPostNotFound)
}
