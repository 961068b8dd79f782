package storage

import (
	"context"
	"io"
)

// Storage is the interface the media handlers depend on.
type Storage interface {
	// Upload stores an object and returns its metadata, including the
	// public URL to persist on the owning record.
	Upload(ctx context.Context, r io.Reader, size int64, contentType string) (*FileInfo, error)

	// Delete removes an object by key.
	Delete(ctx context.Context, key string) error
}

// FileInfo describes a stored object.
type FileInfo struct {
	Key         string `json:"key"`
	URL         string `json:"url"`
	ContentType string `json:"content_type"`
	Size        int64  `json:"size"`
}

// Config holds S3-compatible storage configuration.
// Embed this in your app config for env parsing with caarlos0/env.
type Config struct {
	Bucket    string `env:"STORAGE_BUCKET" envDefault:"property-images"`
	AccessKey string `env:"STORAGE_ACCESS_KEY"`
	SecretKey string `env:"STORAGE_SECRET_KEY"`

	// Endpoint overrides the AWS endpoint for MinIO and other
	// S3-compatible providers. PathStyle is required for MinIO.
	Endpoint  string `env:"STORAGE_ENDPOINT"`
	Region    string `env:"STORAGE_REGION" envDefault:"us-east-1"`
	PathStyle bool   `env:"STORAGE_PATH_STYLE" envDefault:"false"`

	// PublicURL is the CDN or public URL prefix for stored objects.
	// If unset, the standard S3 public URL is derived from bucket/region.
	PublicURL string `env:"STORAGE_PUBLIC_URL"`

	// MaxUploadSize caps a single photo upload, in bytes.
	MaxUploadSize int64 `env:"STORAGE_MAX_UPLOAD_SIZE" envDefault:"10485760"`
}

func (c Config) validate() error {
	if c.Bucket == "" || c.AccessKey == "" || c.SecretKey == "" {
		return ErrMissingConfig
	}
	return nil
}
