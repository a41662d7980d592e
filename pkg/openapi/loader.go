package openapi

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"os"
	"time"
)

// LoaderOptions configures document loading.
type LoaderOptions struct {
	// FileSystem backs SourceKindFS sources.
	FileSystem fs.FS
	// HTTPClient overrides the client used for URL sources.
	HTTPClient *http.Client
	// AllowHTTP enables URL sources; they are rejected otherwise.
	AllowHTTP bool
	// RequestTimeout bounds URL fetches when no client is supplied.
	RequestTimeout time.Duration
}

// Loader fetches raw OpenAPI documents from a Source.
type Loader struct {
	fs        fs.FS
	http      *http.Client
	allowHTTP bool
}

// NewLoader constructs a Loader.
func NewLoader(options LoaderOptions) *Loader {
	var client *http.Client
	switch {
	case options.HTTPClient != nil:
		clone := *options.HTTPClient
		if options.RequestTimeout > 0 && clone.Timeout == 0 {
			clone.Timeout = options.RequestTimeout
		}
		client = &clone
	case options.AllowHTTP:
		client = &http.Client{Timeout: options.RequestTimeout}
	}
	return &Loader{
		fs:        options.FileSystem,
		http:      client,
		allowHTTP: client != nil,
	}
}

// Load fetches the raw payload for a source.
func (l *Loader) Load(ctx context.Context, src Source) ([]byte, error) {
	if src == nil {
		return nil, errors.New("openapi loader: source is nil")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	switch src.Kind() {
	case SourceKindFile:
		data, err := os.ReadFile(src.Location())
		if err != nil {
			return nil, fmt.Errorf("openapi loader: read file: %w", err)
		}
		return data, nil
	case SourceKindFS:
		if l.fs == nil {
			return nil, errors.New("openapi loader: no filesystem configured")
		}
		data, err := fs.ReadFile(l.fs, src.Location())
		if err != nil {
			return nil, fmt.Errorf("openapi loader: read fs entry: %w", err)
		}
		return data, nil
	case SourceKindURL:
		if !l.allowHTTP {
			return nil, errors.New("openapi loader: http support disabled")
		}
		return l.fetch(ctx, src.Location())
	default:
		return nil, fmt.Errorf("openapi loader: unsupported source kind %q", src.Kind())
	}
}

func (l *Loader) fetch(ctx context.Context, rawURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("openapi loader: build request: %w", err)
	}
	resp, err := l.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("openapi loader: fetch document: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("openapi loader: unexpected status %d from %s", resp.StatusCode, rawURL)
	}
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("openapi loader: read body: %w", err)
	}
	return data, nil
}
