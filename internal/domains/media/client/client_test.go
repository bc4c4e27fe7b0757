package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"studio-backend/internal/domains/media"
)

// countingServer records whether the relay was ever contacted.
func countingServer(t *testing.T, status int, body string) (*httptest.Server, *int) {
	t.Helper()
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv, &calls
}

func TestUpload_RejectsEmptyFileBeforeNetwork(t *testing.T) {
	srv, calls := countingServer(t, http.StatusOK, `{}`)
	c := New(srv.URL)

	_, err := c.Upload(context.Background(), "empty.jpg", "image/jpeg", nil)

	assert.ErrorIs(t, err, media.ErrNoFile)
	assert.Equal(t, 0, *calls)
}

func TestUpload_RejectsNonImageBeforeNetwork(t *testing.T) {
	srv, calls := countingServer(t, http.StatusOK, `{}`)
	c := New(srv.URL)

	_, err := c.Upload(context.Background(), "notes.pdf", "application/pdf", []byte("%PDF-1.4"))

	assert.ErrorIs(t, err, media.ErrNotAnImage)
	assert.Equal(t, 0, *calls)
}

func TestUpload_RejectsOversizedFileBeforeNetwork(t *testing.T) {
	srv, calls := countingServer(t, http.StatusOK, `{}`)
	c := New(srv.URL)

	oversized := make([]byte, 15*1024*1024)
	_, err := c.Upload(context.Background(), "huge.jpg", "image/jpeg", oversized)

	assert.ErrorIs(t, err, media.ErrTooLarge)
	assert.Equal(t, 0, *calls)
}

func TestUpload_ReturnsAssetOnSuccess(t *testing.T) {
	body := `{
    "success": true,
    "data": {
      "url": "http://localhost:9000/studio-media/blog_images/abc.jpg",
      "publicId": "blog_images/abc",
      "width": 1200,
      "height": 800
    }
  }`
	srv, calls := countingServer(t, http.StatusOK, body)
	c := New(srv.URL)

	asset, err := c.Upload(context.Background(), "photo.jpg", "image/jpeg", []byte("fake image bytes"))

	require.NoError(t, err)
	assert.Equal(t, 1, *calls)
	assert.Equal(t, "blog_images/abc", asset.PublicID)
	assert.Equal(t, 1200, asset.Width)
	assert.Equal(t, 800, asset.Height)
}

func TestUpload_WrapsServerError(t *testing.T) {
	body := `{"success": false, "error": {"message": "Upload failed"}}`
	srv, _ := countingServer(t, http.StatusInternalServerError, body)
	c := New(srv.URL)

	_, err := c.Upload(context.Background(), "photo.jpg", "image/jpeg", []byte("fake image bytes"))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "Upload failed")
}

func TestUpload_SendsImageField(t *testing.T) {
	var fieldSeen bool
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _, err := r.FormFile("image")
		fieldSeen = err == nil
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"success": true, "data": {"url": "u", "publicId": "p", "width": 1, "height": 1}}`))
	}))
	defer srv.Close()

	c := New(srv.URL)
	_, err := c.Upload(context.Background(), "photo.jpg", "image/jpeg", []byte("fake image bytes"))

	require.NoError(t, err)
	assert.True(t, fieldSeen)
}

func TestDelete_Success(t *testing.T) {
	var path string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path = r.URL.Path
		w.Write([]byte(`{"success": true}`))
	}))
	defer srv.Close()

	c := New(srv.URL)
	err := c.Delete(context.Background(), "blog_images/abc")

	require.NoError(t, err)
	assert.Equal(t, "/api/delete/blog_images/abc", path)
}

func TestDelete_WrapsFailure(t *testing.T) {
	srv, _ := countingServer(t, http.StatusInternalServerError, `{"success": false}`)
	c := New(srv.URL)

	err := c.Delete(context.Background(), "blog_images/missing")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 500")
}
