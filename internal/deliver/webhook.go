// Hands the clean dataset off to downstream automation.

package deliver

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"time"
)

// Webhook uploads a CSV artifact as a multipart form to an automation
// endpoint (n8n-style), with an optional bearer token.
type Webhook struct {
	URL   string
	Token string
	HTTP  *http.Client
}

// NewWebhook builds an uploader for the given endpoint.
func NewWebhook(url, token string) *Webhook {
	return &Webhook{
		URL:   url,
		Token: token,
		HTTP:  &http.Client{Timeout: 60 * time.Second},
	}
}

// Upload posts the file under the "file" form field. Delivery failure is an
// error for the caller to report; it never destroys local artifacts.
func (w *Webhook) Upload(ctx context.Context, path string) error {
	if w.URL == "" {
		return fmt.Errorf("webhook URL not configured")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}

	var body bytes.Buffer
	form := multipart.NewWriter(&body)
	part, err := form.CreateFormFile("file", filepath.Base(path))
	if err != nil {
		return err
	}
	if _, err := part.Write(data); err != nil {
		return err
	}
	if err := form.Close(); err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, w.URL, &body)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", form.FormDataContentType())
	if w.Token != "" {
		req.Header.Set("Authorization", "Bearer "+w.Token)
	}

	resp, err := w.HTTP.Do(req)
	if err != nil {
		return fmt.Errorf("upload: %w", err)
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("upload rejected: %s", resp.Status)
	}
	return nil
}
