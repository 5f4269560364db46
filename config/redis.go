package config

import (
	"context"
	"fmt"
	"luxefurnish/domain"
	"time"

	"github.com/redis/go-redis/v9"
)

func InitRedisDB(cfg Redis) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if _, err := rdb.Ping(ctx).Result(); err != nil {
		return nil, fmt.Errorf("%w: connect redis: %v", domain.ErrUpstream, err)
	}

	return rdb, nil
}
