package redis

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/dmitrymomot/storefront/core/storage"
)

// Storage implements core/storage.Storage on a redis key space.
type Storage struct {
	client redis.UniversalClient
	prefix string
	ttl    time.Duration
}

var _ storage.Storage = (*Storage)(nil)

// StorageOption configures a Storage.
type StorageOption func(*Storage)

// WithPrefix namespaces every key. Default "storefront:".
func WithPrefix(prefix string) StorageOption {
	return func(s *Storage) {
		s.prefix = prefix
	}
}

// WithTTL expires values after d. Zero keeps them forever.
func WithTTL(d time.Duration) StorageOption {
	return func(s *Storage) {
		s.ttl = d
	}
}

// NewStorage wraps client.
func NewStorage(client redis.UniversalClient, opts ...StorageOption) *Storage {
	s := &Storage{client: client, prefix: "storefront:"}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Storage) Get(ctx context.Context, key string) ([]byte, error) {
	v, err := s.client.Get(ctx, s.prefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, storage.ErrNotFound
	}
	if err != nil {
		return nil, errors.Join(storage.ErrStorageUnavailable, err)
	}
	return v, nil
}

func (s *Storage) Set(ctx context.Context, key string, value []byte) error {
	if err := s.client.Set(ctx, s.prefix+key, value, s.ttl).Err(); err != nil {
		return errors.Join(storage.ErrStorageUnavailable, err)
	}
	return nil
}

func (s *Storage) Delete(ctx context.Context, key string) error {
	if err := s.client.Del(ctx, s.prefix+key).Err(); err != nil {
		return errors.Join(storage.ErrStorageUnavailable, err)
	}
	return nil
}
