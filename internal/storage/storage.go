// Package storage provides read access to the site's managed content: the
// legal pages (privacy policy, terms, user agreement) published as HTML
// fragments.
//
// Two implementations exist:
// - LocalStorage: files under a directory, for development
// - R2Storage: Cloudflare R2 (S3-compatible) bucket, for production
package storage

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"mime"
	"path"
	"time"
)

// Storage defines read operations on stored content.
//
// All methods are context-aware for timeout and cancellation support.
type Storage interface {
	// Get retrieves the data at key. The caller must close the reader.
	// Returns ErrNotFound if the key doesn't exist.
	Get(ctx context.Context, key string) (io.ReadCloser, ObjectInfo, error)
}

// ObjectInfo contains metadata about a stored object.
type ObjectInfo struct {
	Key          string
	Size         int64
	ContentType  string
	LastModified time.Time
	ETag         string
}

// LocalConfig holds configuration for local filesystem storage.
type LocalConfig struct {
	// BasePath is the root directory, e.g. "./content".
	BasePath string
}

// R2Config holds configuration for Cloudflare R2 storage.
type R2Config struct {
	AccountID       string
	AccessKeyID     string
	SecretAccessKey string
	BucketName      string

	// Region is required by the AWS SDK; R2 accepts "auto".
	Region string

	// Endpoint overrides the account endpoint (tests, S3-compatible mocks).
	Endpoint string
}

const (
	ProviderLocal = "local"
	ProviderR2    = "r2"
)

// Config selects and configures a provider.
type Config struct {
	Provider string
	Local    LocalConfig
	R2       R2Config
}

// New creates the configured Storage.
func New(cfg Config, logger *slog.Logger) (Storage, error) {
	switch cfg.Provider {
	case ProviderLocal, "":
		return NewLocalStorage(cfg.Local, logger)
	case ProviderR2:
		return NewR2Storage(cfg.R2, logger)
	default:
		return nil, fmt.Errorf("unknown storage provider %q", cfg.Provider)
	}
}

// LegalKey returns the key of a legal page, e.g. "legal/privacy.html".
func LegalKey(slug string) string {
	return "legal/" + slug + ".html"
}

// ReadAll fetches the object at key and returns its contents, reading at most
// limit bytes.
func ReadAll(ctx context.Context, s Storage, key string, limit int64) ([]byte, ObjectInfo, error) {
	rc, info, err := s.Get(ctx, key)
	if err != nil {
		return nil, info, err
	}
	defer rc.Close()

	data, err := io.ReadAll(io.LimitReader(rc, limit))
	if err != nil {
		return nil, info, &StorageError{Op: "Read", Key: key, Err: err}
	}
	return data, info, nil
}

// contentTypeFor guesses a MIME type from the key's extension.
func contentTypeFor(key string) string {
	if ct := mime.TypeByExtension(path.Ext(key)); ct != "" {
		return ct
	}
	return "application/octet-stream"
}
