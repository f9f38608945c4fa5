package store

import (
	"context"
	"errors"
)

// Document keys. Seluruh state aplikasi dipersist sebagai dua dokumen JSON.
const (
	KeyProducts     = "products"
	KeyTransactions = "transactions"
)

// ErrNotFound is returned by Load when the key has never been saved.
var ErrNotFound = errors.New("store: key not found")

// Store is the durability boundary: whole-document JSON load/save keyed by
// KeyProducts and KeyTransactions. In-memory state stays the source of truth;
// a Save must be all-or-nothing so a crash mid-write can only lose the latest
// mutation, never leave a partially applied document behind.
type Store interface {
	Load(ctx context.Context, key string) ([]byte, error)
	Save(ctx context.Context, key string, value []byte) error
	Close() error
}
