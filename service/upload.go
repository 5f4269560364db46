package service

import (
	"context"
	"io"
	"luxefurnish/domain"
	"luxefurnish/utils"
	"strings"
	"time"
)

type uploadService struct {
	storage domain.FileStorage
	now     func() time.Time
}

func NewUploadService(storage domain.FileStorage) domain.UploadUseCase {
	return &uploadService{storage: storage, now: time.Now}
}

func (s *uploadService) UploadImage(ctx context.Context, originalName, contentType string, r io.Reader) (string, error) {
	if strings.TrimSpace(originalName) == "" || r == nil {
		return "", domain.NewError(domain.ErrValidation, "No file uploaded")
	}

	name := utils.UploadFilename(originalName, s.now())
	return s.storage.Save(ctx, name, contentType, r)
}
