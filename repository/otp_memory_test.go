package repository

import (
	"context"
	"luxefurnish/domain"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func TestOTPMemoryRepository_SaveGetConsume(t *testing.T) {
	ctx := context.Background()
	clock := &fakeClock{now: time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)}
	repo := NewOTPMemoryRepositoryWithClock(clock.Now)

	require.NoError(t, repo.SaveOTP(ctx, "A@x.com", "123456", time.Minute))

	entry, err := repo.GetOTP(ctx, "a@x.com")
	require.NoError(t, err)
	assert.Equal(t, "123456", entry.Code)
	assert.Equal(t, clock.Now().Add(time.Minute), entry.ExpiresAt)

	ok, err := repo.ConsumeOTP(ctx, "a@x.com", "654321")
	require.NoError(t, err)
	assert.False(t, ok)

	// wrong code keeps the entry
	_, err = repo.GetOTP(ctx, "a@x.com")
	require.NoError(t, err)

	ok, err = repo.ConsumeOTP(ctx, "a@x.com", " 123456 ")
	require.NoError(t, err)
	assert.True(t, ok)

	_, err = repo.ConsumeOTP(ctx, "a@x.com", "123456")
	assert.ErrorIs(t, err, domain.ErrOTPNotFound)
}

func TestOTPMemoryRepository_Expiry(t *testing.T) {
	ctx := context.Background()
	clock := &fakeClock{now: time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)}
	repo := NewOTPMemoryRepositoryWithClock(clock.Now)

	require.NoError(t, repo.SaveOTP(ctx, "a@x.com", "111111", time.Minute))
	clock.Advance(time.Minute)

	_, err := repo.GetOTP(ctx, "a@x.com")
	assert.ErrorIs(t, err, domain.ErrOTPNotFound)

	_, err = repo.ConsumeOTP(ctx, "a@x.com", "111111")
	assert.ErrorIs(t, err, domain.ErrOTPNotFound)
}

func TestOTPMemoryRepository_OverwriteAndSweep(t *testing.T) {
	ctx := context.Background()
	clock := &fakeClock{now: time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)}
	repo := NewOTPMemoryRepositoryWithClock(clock.Now).(*otpMemoryRepository)

	require.NoError(t, repo.SaveOTP(ctx, "a@x.com", "111111", time.Minute))
	require.NoError(t, repo.SaveOTP(ctx, "a@x.com", "222222", time.Minute))

	entry, err := repo.GetOTP(ctx, "a@x.com")
	require.NoError(t, err)
	assert.Equal(t, "222222", entry.Code)

	clock.Advance(2 * time.Minute)
	require.NoError(t, repo.SaveOTP(ctx, "b@x.com", "333333", time.Minute))
	assert.Len(t, repo.entries, 1)
}

func TestOTPMemoryRepository_ConcurrentConsume(t *testing.T) {
	ctx := context.Background()
	repo := NewOTPMemoryRepository()
	require.NoError(t, repo.SaveOTP(ctx, "a@x.com", "123456", time.Minute))

	var wins int32
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if ok, _ := repo.ConsumeOTP(ctx, "a@x.com", "123456"); ok {
				atomic.AddInt32(&wins, 1)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), wins)
}
