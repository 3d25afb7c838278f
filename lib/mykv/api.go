// Package mykv offers the local key-value storage the storefront keeps its cart and preferences in.
// Values are opaque strings; every Set replaces the previous value wholesale.
package mykv

import (
	"context"
	"fmt"
)

//go:generate mockgen -source=api.go -package mykv -destination kv_mock.go KeyValueStore
type KeyValueStore interface {
	// Get returns the stored value and whether the key exists.
	Get(c context.Context, key string) (string, bool, error)
	Set(c context.Context, key string, value string) error
}

const (
	BackendMemory = "memory"
	BackendSQLite = "sqlite"
	BackendRedis  = "redis"
)

type Options struct {
	Backend    string
	SQLitePath string
	RedisURL   string
	Namespace  string
}

func New(c context.Context, opts Options) (KeyValueStore, func(), error) {
	switch opts.Backend {
	case "", BackendMemory:
		return NewInMemoryStore(), func() {}, nil
	case BackendSQLite:
		return newSQLiteStore(opts.SQLitePath)
	case BackendRedis:
		return newRedisStore(c, opts.RedisURL, opts.Namespace)
	default:
		return nil, func() {}, fmt.Errorf("unknown key-value backend %q", opts.Backend)
	}
}
