package repository

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiskStorage_Save(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "uploads")
	storage, err := NewDiskStorage(dir, "/uploads")
	require.NoError(t, err)

	url, err := storage.Save(context.Background(), "1700000000000-abcd1234.png", "image/png", strings.NewReader("png-bytes"))
	require.NoError(t, err)
	assert.Equal(t, "/uploads/1700000000000-abcd1234.png", url)

	data, err := os.ReadFile(filepath.Join(dir, "1700000000000-abcd1234.png"))
	require.NoError(t, err)
	assert.Equal(t, "png-bytes", string(data))

	// names are never overwritten
	_, err = storage.Save(context.Background(), "1700000000000-abcd1234.png", "image/png", strings.NewReader("other"))
	assert.Error(t, err)
}
