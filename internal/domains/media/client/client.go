package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"strings"
	"time"

	"studio-backend/internal/domains/media"
)

const maxUploadBytes = 10 * 1024 * 1024

// Client talks to the upload relay over HTTP. Validation runs before
// any network call so an oversized or non-image file never leaves the
// caller.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

func New(baseURL string) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 60 * time.Second},
	}
}

type envelope struct {
	Success bool         `json:"success"`
	Data    *media.Asset `json:"data"`
	Error   *struct {
		Message string `json:"message"`
	} `json:"error"`
}

// Upload validates the file locally, then posts it as the "image"
// multipart field.
func (c *Client) Upload(ctx context.Context, filename, contentType string, data []byte) (*media.Asset, error) {
	if len(data) == 0 {
		return nil, media.ErrNoFile
	}
	if !strings.HasPrefix(contentType, "image/") {
		return nil, media.ErrNotAnImage
	}
	if len(data) > maxUploadBytes {
		return nil, media.ErrTooLarge
	}

	body := new(bytes.Buffer)
	writer := multipart.NewWriter(body)

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="image"; filename="%s"`, filename))
	header.Set("Content-Type", contentType)

	part, err := writer.CreatePart(header)
	if err != nil {
		return nil, fmt.Errorf("failed to build upload request: %w", err)
	}
	if _, err := part.Write(data); err != nil {
		return nil, fmt.Errorf("failed to build upload request: %w", err)
	}
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("failed to build upload request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/upload", body)
	if err != nil {
		return nil, fmt.Errorf("failed to build upload request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("upload request failed: %w", err)
	}
	defer resp.Body.Close()

	var result envelope
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to parse upload response: %w", err)
	}

	if resp.StatusCode != http.StatusOK || !result.Success || result.Data == nil {
		if result.Error != nil && result.Error.Message != "" {
			return nil, fmt.Errorf("upload failed: %s", result.Error.Message)
		}
		return nil, fmt.Errorf("upload failed: status %d", resp.StatusCode)
	}

	return result.Data, nil
}

// Delete removes an asset by its public id.
func (c *Client) Delete(ctx context.Context, publicID string) error {
	url := c.baseURL + "/api/delete/" + publicID

	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, url, nil)
	if err != nil {
		return fmt.Errorf("failed to build delete request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("delete request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return fmt.Errorf("delete failed: status %d: %s", resp.StatusCode, string(respBody))
	}

	return nil
}
