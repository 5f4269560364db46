package repository

import (
	"context"
	"fmt"
	"io"
	"luxefurnish/domain"
	"os"
	"path"
	"path/filepath"
)

type diskStorage struct {
	dir       string
	urlPrefix string
}

// NewDiskStorage stores files under dir; the returned reference is urlPrefix/name.
func NewDiskStorage(dir, urlPrefix string) (domain.FileStorage, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &diskStorage{dir: dir, urlPrefix: urlPrefix}, nil
}

func (s *diskStorage) Save(ctx context.Context, name, contentType string, r io.Reader) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	dst := filepath.Join(s.dir, filepath.Base(name))
	f, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return "", err
	}

	if _, err := io.Copy(f, r); err != nil {
		f.Close()
		os.Remove(dst)
		return "", err
	}
	if err := f.Close(); err != nil {
		os.Remove(dst)
		return "", err
	}

	return path.Join(s.urlPrefix, filepath.Base(name)), nil
}
