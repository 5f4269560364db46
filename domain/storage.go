package domain

import (
	"context"
	"io"
)

// FileStorage persists uploaded files and returns the reference clients use to fetch them.
type FileStorage interface {
	Save(ctx context.Context, name, contentType string, r io.Reader) (string, error)
}

type UploadUseCase interface {
	UploadImage(ctx context.Context, originalName, contentType string, r io.Reader) (string, error)
}
