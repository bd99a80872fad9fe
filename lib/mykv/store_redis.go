package mykv

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

const redisKeyPrefix = "grocerystore:"

type redisStore struct {
	rdb *redis.Client
}

func NewRedisStore(c context.Context, addr, password string, db int) (Store, func(), error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	ctx, cancel := context.WithTimeout(c, 5*time.Second)
	defer cancel()

	err := rdb.Ping(ctx).Err()
	if err != nil {
		rdb.Close()
		return nil, func() {}, fmt.Errorf("redis ping failed: %w", err)
	}

	return &redisStore{rdb: rdb}, func() {
		rdb.Close()
	}, nil
}

func (s *redisStore) Put(c context.Context, key string, value []byte) error {
	err := s.rdb.Set(c, redisKeyPrefix+key, value, 0).Err()
	if err != nil {
		return fmt.Errorf("error storing key %s: %w", key, err)
	}
	return nil
}

func (s *redisStore) Get(c context.Context, key string) ([]byte, bool, error) {
	value, err := s.rdb.Get(c, redisKeyPrefix+key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("error fetching key %s: %w", key, err)
	}
	return value, true, nil
}

func (s *redisStore) Delete(c context.Context, key string) error {
	err := s.rdb.Del(c, redisKeyPrefix+key).Err()
	if err != nil {
		return fmt.Errorf("error deleting key %s: %w", key, err)
	}
	return nil
}
