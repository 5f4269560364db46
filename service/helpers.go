package service

import (
	"strings"

	"github.com/google/uuid"
)

func isValidID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
