package repository

import (
	"context"
	"luxefurnish/domain"
	"strings"
	"sync"
	"time"
)

// otpMemoryRepository keeps codes in process memory. Entries are lost on
// restart; expired ones are swept on every save.
type otpMemoryRepository struct {
	mu      sync.Mutex
	entries map[string]domain.OTPEntry
	now     func() time.Time
}

func NewOTPMemoryRepository() domain.OTPRepository {
	return NewOTPMemoryRepositoryWithClock(time.Now)
}

func NewOTPMemoryRepositoryWithClock(now func() time.Time) domain.OTPRepository {
	return &otpMemoryRepository{entries: make(map[string]domain.OTPEntry), now: now}
}

func memoryKey(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (r *otpMemoryRepository) SaveOTP(ctx context.Context, email, code string, ttl time.Duration) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	for k, e := range r.entries {
		if !now.Before(e.ExpiresAt) {
			delete(r.entries, k)
		}
	}

	r.entries[memoryKey(email)] = domain.OTPEntry{
		Email:     email,
		Code:      strings.TrimSpace(code),
		ExpiresAt: now.Add(ttl),
	}
	return nil
}

// live returns the unexpired entry for key; callers hold r.mu.
func (r *otpMemoryRepository) live(key string) (domain.OTPEntry, bool) {
	e, ok := r.entries[key]
	if !ok {
		return domain.OTPEntry{}, false
	}
	if !r.now().Before(e.ExpiresAt) {
		delete(r.entries, key)
		return domain.OTPEntry{}, false
	}
	return e, true
}

func (r *otpMemoryRepository) GetOTP(ctx context.Context, email string) (*domain.OTPEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.live(memoryKey(email))
	if !ok {
		return nil, domain.ErrOTPNotFound
	}
	return &e, nil
}

func (r *otpMemoryRepository) ConsumeOTP(ctx context.Context, email, code string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := memoryKey(email)
	e, ok := r.live(key)
	if !ok {
		return false, domain.ErrOTPNotFound
	}
	if e.Code != strings.TrimSpace(code) {
		return false, nil
	}
	delete(r.entries, key)
	return true, nil
}

func (r *otpMemoryRepository) DeleteOTP(ctx context.Context, email string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.entries, memoryKey(email))
	return nil
}
