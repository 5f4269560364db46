package domain

import (
	"context"
	"time"
)

type OTPEntry struct {
	Email     string
	Code      string
	ExpiresAt time.Time
}

// OTPRepository stores at most one live code per email.
//
// Get and Consume return ErrOTPNotFound when no unexpired entry exists.
// Consume deletes the entry only when code matches and reports whether it did,
// as a single atomic step.
type OTPRepository interface {
	SaveOTP(ctx context.Context, email, code string, ttl time.Duration) error
	GetOTP(ctx context.Context, email string) (*OTPEntry, error)
	ConsumeOTP(ctx context.Context, email, code string) (bool, error)
	DeleteOTP(ctx context.Context, email string) error
}

type Mailer interface {
	SendEmail(ctx context.Context, to, subject, htmlBody string) error
}

type OTPUseCase interface {
	SendOTP(ctx context.Context, email string) error
	VerifyOTP(ctx context.Context, email, code, orderID string) (*Order, error)
}
