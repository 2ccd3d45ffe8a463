package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/google/uuid"
	"github.com/karinaconstandache/PhotoBooker/internal/config"
)

var ErrInvalidKey = errors.New("invalid storage key")

// ObjectStorage stores uploaded files and knows their public URL.
type ObjectStorage interface {
	Put(ctx context.Context, key string, r io.Reader, size int64, contentType string) (string, error)
	Delete(ctx context.Context, key string) error
}

// NewObjectStorage picks the backend named by STORAGE_DRIVER.
func NewObjectStorage(cfg *config.Config) (ObjectStorage, error) {
	switch cfg.Storage.Driver {
	case "local":
		return NewLocalStorage(cfg.Storage.UploadDir, cfg.PublicBaseURL+"/uploads")
	case "s3":
		return NewS3Storage(cfg.S3)
	default:
		return nil, fmt.Errorf("unsupported storage driver %q", cfg.Storage.Driver)
	}
}

// NewImageKey returns "portfolios/<id>/<uuid><ext>".
func NewImageKey(portfolioID uint, ext string) string {
	return fmt.Sprintf("portfolios/%d/%s%s", portfolioID, uuid.NewString(), strings.ToLower(ext))
}

// ThumbnailKey places the thumbnail of key next to it under thumbs/.
func ThumbnailKey(key string) string {
	dir, file := path.Split(key)
	base := strings.TrimSuffix(file, path.Ext(file))
	return dir + "thumbs/" + base + ".jpg"
}

func validateKey(key string) error {
	if key == "" || strings.HasPrefix(key, "/") || strings.Contains(key, "\\") {
		return ErrInvalidKey
	}
	if path.Clean(key) != key {
		return ErrInvalidKey
	}
	for _, part := range strings.Split(key, "/") {
		if part == ".." || part == "." {
			return ErrInvalidKey
		}
	}
	return nil
}
