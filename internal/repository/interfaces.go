package repository

import "context"

// SlotRepo stores opaque values under named keys. Each Put overwrites
// the previous value for the key.
type SlotRepo interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}
