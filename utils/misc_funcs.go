package utils

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// GenerateOrderNumber returns a human-facing order number like ORD-250314-048213.
func GenerateOrderNumber(now time.Time) (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("ORD-%s-%06d", now.Format("060102"), n.Int64()), nil
}

// UploadFilename derives a stored file name from the upload time and the
// original extension. The random suffix keeps same-millisecond uploads apart.
func UploadFilename(originalName string, now time.Time) string {
	ext := strings.ToLower(filepath.Ext(filepath.Base(originalName)))
	return fmt.Sprintf("%d-%s%s", now.UnixMilli(), uuid.NewString()[:8], ext)
}

// GetAPIHitter returns the authenticated user id set by AuthMiddleware, or "".
func GetAPIHitter(c *gin.Context) string {
	if v, ok := c.Get("userID"); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}
