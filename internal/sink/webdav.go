package sink

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"path"
	"time"

	"github.com/emersion/go-webdav"
)

// WebDAV saves documents into a WebDAV collection, e.g. a shared folder the
// team hands out to attendees.
type WebDAV struct {
	client  *webdav.Client
	dir     string
	timeout time.Duration
}

// NewWebDAV creates a Saver for the collection at endpoint. Credentials are
// optional.
func NewWebDAV(endpoint, dir, username, password string, timeout time.Duration) (*WebDAV, error) {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	var httpClient webdav.HTTPClient = &http.Client{Timeout: timeout}
	if username != "" {
		httpClient = webdav.HTTPClientWithBasicAuth(httpClient, username, password)
	}

	client, err := webdav.NewClient(httpClient, endpoint)
	if err != nil {
		return nil, fmt.Errorf("create webdav client: %w", err)
	}

	if dir == "" {
		dir = "/"
	}
	return &WebDAV{client: client, dir: dir, timeout: timeout}, nil
}

// Save uploads data as filename in the configured collection.
func (w *WebDAV) Save(data []byte, filename string) error {
	ctx, cancel := context.WithTimeout(context.Background(), w.timeout)
	defer cancel()

	name := path.Join(w.dir, path.Base(filename))
	wc, err := w.client.Create(ctx, name)
	if err != nil {
		return fmt.Errorf("create %s: %w", name, err)
	}
	if _, err := wc.Write(data); err != nil {
		wc.Close()
		return fmt.Errorf("upload %s: %w", name, err)
	}
	// The request completes on Close.
	if err := wc.Close(); err != nil {
		return fmt.Errorf("upload %s: %w", name, err)
	}

	slog.Info("uploaded calendar file", "name", name, "bytes", len(data))
	return nil
}
