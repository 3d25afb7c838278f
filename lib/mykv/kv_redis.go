package mykv

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

type redisCmdable interface {
	Get(c context.Context, key string) *redis.StringCmd
	Set(c context.Context, key string, value any, expiration time.Duration) *redis.StatusCmd
}

type redisStore struct {
	client    redisCmdable
	namespace string
}

func newRedisStore(c context.Context, url string, namespace string) (KeyValueStore, func(), error) {
	if url == "" {
		return nil, func() {}, errors.New("redis url is required")
	}
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, func() {}, fmt.Errorf("error parsing redis url: %w", err)
	}

	client := redis.NewClient(opts)
	err = client.Ping(c).Err()
	if err != nil {
		client.Close()
		return nil, func() {}, fmt.Errorf("error pinging redis: %w", err)
	}

	return &redisStore{client: client, namespace: namespace}, func() {
		client.Close()
	}, nil
}

func (s *redisStore) key(key string) string {
	if s.namespace == "" {
		return key
	}
	return s.namespace + ":" + key
}

func (s *redisStore) Get(c context.Context, key string) (string, bool, error) {
	value, err := s.client.Get(c, s.key(key)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("error reading key %s: %w", key, err)
	}
	return value, true, nil
}

func (s *redisStore) Set(c context.Context, key string, value string) error {
	// no expiry: the entry lives as long as the device keeps it
	err := s.client.Set(c, s.key(key), value, 0).Err()
	if err != nil {
		return fmt.Errorf("error writing key %s: %w", key, err)
	}
	return nil
}
