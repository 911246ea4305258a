package storage

import (
	"context"
	"fmt"
	"io"
)

// Storage abstracts the blob store holding uploaded documents (CVs,
// identification, incorporation papers).
type Storage interface {
	// Save stores a file under the given key.
	Save(ctx context.Context, key string, reader io.Reader, contentType string) error

	// Get retrieves a stored file.
	Get(ctx context.Context, key string) (io.ReadCloser, error)

	// Delete removes a stored file.
	Delete(ctx context.Context, key string) error

	// Exists checks whether a file is stored under the key.
	Exists(ctx context.Context, key string) (bool, error)

	// URL returns the public URL for a stored file.
	URL(key string) string
}

// Config holds blob storage configuration.
type Config struct {
	Type       string // local, s3, cloudflare_r2
	BasePath   string // local only
	BaseURL    string // public URL base
	Bucket     string
	Region     string
	AccessKey  string
	SecretKey  string
	Endpoint   string // R2 or custom S3
	PublicRead bool
}

// New builds the backend selected by cfg.Type.
func New(cfg Config) (Storage, error) {
	switch cfg.Type {
	case "local":
		return NewLocalStorage(cfg)
	case "s3":
		return NewS3Storage(cfg)
	case "cloudflare_r2":
		return NewCloudflareR2Storage(cfg)
	default:
		return nil, fmt.Errorf("unsupported storage type: %s", cfg.Type)
	}
}
