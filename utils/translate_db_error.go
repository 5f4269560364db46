package utils

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

const pgUniqueViolation = "23505"

// IsUniqueViolation reports whether err is a duplicate-key error from postgres
// or from gorm's translated error set.
func IsUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgUniqueViolation
	}
	return strings.Contains(strings.ToLower(err.Error()), "unique constraint")
}

// TranslateDBError turns a database error into a message safe to show clients.
func TranslateDBError(err error) string {
	if err == nil {
		return ""
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation:
			if strings.Contains(pgErr.ConstraintName, "email") || strings.Contains(pgErr.Message, "email") {
				return "Email already in use"
			}
			if strings.Contains(pgErr.ConstraintName, "order_number") {
				return "Order number already exists"
			}
			return "Duplicate value, please use another"
		case "23503":
			return "This record is referenced by another table"
		case "23502":
			return "Some required fields are missing"
		case "22P02":
			return "Invalid data format"
		case "42703":
			return "Column not found in database"
		}
		return "A database error occurred"
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "Record not found"
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return "Duplicate value, please use another"
	}

	lowerErr := strings.ToLower(err.Error())
	if strings.Contains(lowerErr, "context deadline exceeded") {
		return "Request timeout"
	}
	if strings.Contains(lowerErr, "context canceled") {
		return "Request was cancelled"
	}
	if strings.Contains(lowerErr, "connection") {
		return "Failed to connect to database"
	}

	return "A database error occurred"
}
