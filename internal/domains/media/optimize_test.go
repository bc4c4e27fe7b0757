package media

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOptimizedURL_NonCloudinaryUnchanged(t *testing.T) {
	url := "https://example.com/images/photo.jpg"
	assert.Equal(t, url, OptimizedURL(url, 400, 300, "auto"))
}

func TestOptimizedURL_NoDirectivesUnchanged(t *testing.T) {
	url := "https://res.cloudinary.com/x/image/upload/v1/abc.jpg"
	assert.Equal(t, url, OptimizedURL(url, 0, 0, ""))
}

func TestOptimizedURL_SplicesAllDirectives(t *testing.T) {
	url := "https://res.cloudinary.com/x/image/upload/v1/abc.jpg"
	got := OptimizedURL(url, 400, 300, "auto")
	assert.Equal(t, "https://res.cloudinary.com/x/image/upload/w_400,h_300,q_auto/v1/abc.jpg", got)
}

func TestOptimizedURL_PartialDirectives(t *testing.T) {
	url := "https://res.cloudinary.com/x/image/upload/v1/abc.jpg"

	assert.Equal(t,
		"https://res.cloudinary.com/x/image/upload/w_400/v1/abc.jpg",
		OptimizedURL(url, 400, 0, ""))

	assert.Equal(t,
		"https://res.cloudinary.com/x/image/upload/h_300,q_80/v1/abc.jpg",
		OptimizedURL(url, 0, 300, "80"))
}

func TestOptimizedURL_NoUploadSegmentUnchanged(t *testing.T) {
	url := "https://res.cloudinary.com/x/image/fetch/v1/abc.jpg"
	assert.Equal(t, url, OptimizedURL(url, 400, 300, "auto"))
}

func TestOptimizedURL_Deterministic(t *testing.T) {
	url := "https://res.cloudinary.com/demo/image/upload/sample.png"
	first := OptimizedURL(url, 120, 0, "auto")
	second := OptimizedURL(url, 120, 0, "auto")
	assert.Equal(t, first, second)
}
