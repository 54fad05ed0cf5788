package bolt

import (
	"context"
	"fmt"
	"slices"
	"time"

	bolt "go.etcd.io/bbolt"

	"github.com/dmitrymomot/storefront/core/storage"
)

// DefaultBucket holds every key unless WithBucket says otherwise.
const DefaultBucket = "storefront"

// Storage keeps values in a single bbolt bucket.
type Storage struct {
	db     *bolt.DB
	bucket []byte
}

var _ storage.Storage = (*Storage)(nil)

// Option configures Open.
type Option func(*options)

type options struct {
	bucket  string
	timeout time.Duration
}

// WithBucket sets the bucket name.
func WithBucket(name string) Option {
	return func(o *options) {
		if name != "" {
			o.bucket = name
		}
	}
}

// WithTimeout bounds how long Open waits for the file lock.
func WithTimeout(d time.Duration) Option {
	return func(o *options) {
		o.timeout = d
	}
}

// Open opens or creates the database file at path and ensures the bucket exists.
func Open(path string, opts ...Option) (*Storage, error) {
	o := options{bucket: DefaultBucket, timeout: time.Second}
	for _, opt := range opts {
		opt(&o)
	}

	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: o.timeout})
	if err != nil {
		return nil, fmt.Errorf("%w: open %s: %w", ErrOpen, path, err)
	}
	s := &Storage{db: db, bucket: []byte(o.bucket)}
	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(s.bucket)
		return err
	})
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("%w: create bucket %s: %w", ErrOpen, o.bucket, err)
	}
	return s, nil
}

func (s *Storage) Get(ctx context.Context, key string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	var value []byte
	err := s.db.View(func(tx *bolt.Tx) error {
		v := tx.Bucket(s.bucket).Get([]byte(key))
		if v == nil {
			return storage.ErrNotFound
		}
		// v is only valid for the life of the transaction
		value = slices.Clone(v)
		return nil
	})
	return value, err
}

func (s *Storage) Set(ctx context.Context, key string, value []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if value == nil {
		value = []byte{}
	}
	return s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(s.bucket).Put([]byte(key), value)
	})
}

func (s *Storage) Delete(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(s.bucket).Delete([]byte(key))
	})
}

// Keys lists the keys of the bucket in byte order.
func (s *Storage) Keys() ([]string, error) {
	var keys []string
	err := s.db.View(func(tx *bolt.Tx) error {
		return tx.Bucket(s.bucket).ForEach(func(k, _ []byte) error {
			keys = append(keys, string(k))
			return nil
		})
	})
	return keys, err
}

// Close releases the database file.
func (s *Storage) Close() error {
	return s.db.Close()
}
