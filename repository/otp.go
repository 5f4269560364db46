package repository

import (
	"context"
	"luxefurnish/domain"
	"strconv"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

const otpKeyPrefix = "otp:"

type otpRedisRepository struct {
	client *redis.Client
}

func NewOTPRedisRepository(client *redis.Client) domain.OTPRepository {
	return &otpRedisRepository{client: client}
}

func otpKey(email string) string {
	return otpKeyPrefix + strings.ToLower(strings.TrimSpace(email))
}

// SaveOTP replaces any previous entry for the email and sets its TTL in one transaction.
func (r *otpRedisRepository) SaveOTP(ctx context.Context, email, code string, ttl time.Duration) error {
	key := otpKey(email)
	expiresAt := time.Now().Add(ttl)

	_, err := r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Del(ctx, key)
		pipe.HSet(ctx, key, map[string]interface{}{
			"code":       strings.TrimSpace(code),
			"expires_at": expiresAt.UnixMilli(),
		})
		pipe.PExpire(ctx, key, ttl)
		return nil
	})
	return err
}

func (r *otpRedisRepository) GetOTP(ctx context.Context, email string) (*domain.OTPEntry, error) {
	data, err := r.client.HGetAll(ctx, otpKey(email)).Result()
	if err != nil {
		return nil, err
	}
	if len(data) == 0 || data["code"] == "" {
		return nil, domain.ErrOTPNotFound
	}

	entry := &domain.OTPEntry{Email: email, Code: data["code"]}
	if ms, err := strconv.ParseInt(data["expires_at"], 10, 64); err == nil {
		entry.ExpiresAt = time.UnixMilli(ms)
	}
	return entry, nil
}

// consume: 0 = missing, 1 = deleted, -1 = code mismatch (entry kept)
var consumeOTPScript = redis.NewScript(`
local stored = redis.call('HGET', KEYS[1], 'code')
if stored == false then
	return 0
end
if stored ~= ARGV[1] then
	return -1
end
redis.call('DEL', KEYS[1])
return 1
`)

func (r *otpRedisRepository) ConsumeOTP(ctx context.Context, email, code string) (bool, error) {
	res, err := consumeOTPScript.Run(ctx, r.client, []string{otpKey(email)}, strings.TrimSpace(code)).Int()
	if err != nil {
		return false, err
	}
	switch res {
	case 0:
		return false, domain.ErrOTPNotFound
	case 1:
		return true, nil
	default:
		return false, nil
	}
}

func (r *otpRedisRepository) DeleteOTP(ctx context.Context, email string) error {
	return r.client.Del(ctx, otpKey(email)).Err()
}
