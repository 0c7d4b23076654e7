package myredis

import (
	"context"
	"fmt"
	"time"

	"mytargets/helpers"
	"mytargets/interfaces"
	"mytargets/service"

	"github.com/go-redis/redis/v8"
)

type redisCache[T any] struct {
	client  redis.UniversalClient
	prefix  string
	marshal func(T) ([]byte, error)
	zero    T
}

// NewCache creates redis implementation of generic cache interface. Keys are stored as prefix:key.
// Panics on nil client or marshal and on empty prefix.
func NewCache[T any](client redis.UniversalClient, prefix string, marshal func(T) ([]byte, error)) interfaces.Cache[T] {
	return &redisCache[T]{
		client:  helpers.NilPanic(client, "adapters.myredis.cache.go: client is required"),
		prefix:  helpers.StrPanic(prefix, "adapters.myredis.cache.go: prefix is required"),
		marshal: helpers.NilPanic(marshal, "adapters.myredis.cache.go: marshal is required"),
	}
}

func (r *redisCache[T]) WriteValue(ctx context.Context, key string, item T, ttlMs int) error {
	bytes, err := r.marshal(item)
	if err != nil {
		return service.NewInternalServerError("Redis marshal item error", fmt.Errorf("can't marshal item of type %T, err: %w", item, err))
	}

	err = r.client.Set(ctx, r.generateKey(key), bytes, time.Duration(ttlMs)*time.Millisecond).Err()
	if err != nil {
		return service.NewInternalServerError("Redis write key error", fmt.Errorf("can't write item of type %T to redis (key='%s'), err: %w", item, key, err))
	}

	return nil
}

func (r *redisCache[T]) DeleteValue(ctx context.Context, key string) error {
	err := r.client.Del(ctx, r.generateKey(key)).Err()
	if err != nil {
		return service.NewInternalServerError("Redis delete key error", fmt.Errorf("can't delete item of type %T from redis (key='%s'), err: %w", r.zero, key, err))
	}
	return nil
}

func (r *redisCache[T]) generateKey(key string) string {
	return r.prefix + ":" + key
}
