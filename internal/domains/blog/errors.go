package blog

import (
	"errors"
	"fmt"
)

var ErrPostNotFound = errors.New("blog post not found")

func NewListPostsError(err error) error {
	return fmt.Errorf("failed to list blog posts: %w", err)
}

func NewCreatePostError(err error) error {
	return fmt.Errorf("failed to add blog post: %w", err)
}

func NewUpdatePostError(err error) error {
	return fmt.Errorf("failed to update blog post: %w", err)
}

func NewDeletePostError(err error) error {
	return fmt.Errorf("failed to remove blog post: %w", err)
}
