package services

import (
	"context"
	"fmt"
	"mime/multipart"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"inakat_backend/internal/storage"
	"inakat_backend/pkg/apperrors"
)

// MaxUploadSize caps uploaded documents at 5MB.
const MaxUploadSize = 5 * 1024 * 1024

var allowedUploadTypes = map[string]string{
	"application/pdf": ".pdf",
	"image/jpeg":      ".jpg",
	"image/png":       ".png",
}

type UploadResult struct {
	Key string `json:"key"`
	URL string `json:"url"`
}

type UploadService interface {
	Upload(ctx context.Context, category string, header *multipart.FileHeader) (*UploadResult, error)
}

type UploadServiceImpl struct {
	store storage.Storage
}

func NewUploadService(store storage.Storage) UploadService {
	return &UploadServiceImpl{store: store}
}

// Upload validates type and size, then stores the file under a
// uuid-prefixed key so client filenames never collide or traverse paths.
func (s *UploadServiceImpl) Upload(ctx context.Context, category string, header *multipart.FileHeader) (*UploadResult, error) {
	if header.Size > MaxUploadSize {
		return nil, apperrors.ErrFileTooLarge
	}

	contentType := header.Header.Get("Content-Type")
	ext, ok := allowedUploadTypes[contentType]
	if !ok {
		// Fall back to the extension when the browser sent a generic type.
		ext = strings.ToLower(filepath.Ext(header.Filename))
		switch ext {
		case ".pdf":
			contentType = "application/pdf"
		case ".jpg", ".jpeg":
			contentType, ext = "image/jpeg", ".jpg"
		case ".png":
			contentType = "image/png"
		default:
			return nil, apperrors.ErrInvalidFileType
		}
	}

	category = sanitizeCategory(category)
	key := fmt.Sprintf("%s/%s%s", category, uuid.New().String(), ext)

	file, err := header.Open()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	defer file.Close()

	if err := s.store.Save(ctx, key, file, contentType); err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &UploadResult{Key: key, URL: s.store.URL(key)}, nil
}

func sanitizeCategory(category string) string {
	category = strings.ToLower(strings.TrimSpace(category))
	var b strings.Builder
	for _, r := range category {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '-' || r == '_' {
			b.WriteRune(r)
		}
	}
	if b.Len() == 0 {
		return "documents"
	}
	return b.String()
}
