package services

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"agenthub_backend/internal/storage"
	"agenthub_backend/pkg/apperrors"
)

// allowedUploadExtensions limits uploads to profile assets.
var allowedUploadExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".webp": true,
	".pdf":  true,
}

type UploadService struct {
	storage storage.Storage
	maxSize int64
}

func NewUploadService(store storage.Storage, maxSize int64) *UploadService {
	return &UploadService{
		storage: store,
		maxSize: maxSize,
	}
}

// Upload stores a file under the owner's directory and returns its
// public URL. The stored name is generated, never the client's, so
// uploads cannot collide or traverse paths.
func (s *UploadService) Upload(ctx context.Context, userID, filename, contentType string, size int64, reader io.Reader) (string, error) {
	if s.maxSize > 0 && size > s.maxSize {
		return "", apperrors.NewBadRequestError(fmt.Sprintf("File exceeds the %d byte limit", s.maxSize))
	}

	ext := strings.ToLower(filepath.Ext(filename))
	if !allowedUploadExtensions[ext] {
		return "", apperrors.NewBadRequestError("Unsupported file type")
	}

	path := fmt.Sprintf("%s/%s%s", userID, uuid.NewString(), ext)

	if err := s.storage.Save(ctx, path, reader, contentType); err != nil {
		return "", apperrors.InternalError(err)
	}

	url, err := s.storage.GetURL(ctx, path)
	if err != nil {
		return "", apperrors.InternalError(err)
	}
	return url, nil
}
