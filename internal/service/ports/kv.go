package ports

import "context"

// KVStore is the host key/value storage. Get returns nil, nil for a missing key.
type KVStore interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
}
