// Package storage provides the durable key-value layer the record store
// persists into. Backends are swappable; the record layer only sees KV.
package storage

import (
	"context"
	"errors"
)

// ErrNotFound is returned by Get when no value is stored at the key.
var ErrNotFound = errors.New("storage: key not found")

// KV is a durable key-value store. Implementations must treat Delete of an
// absent key as a no-op.
type KV interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, keys ...string) error
	Close() error
}
