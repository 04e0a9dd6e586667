package store

import "context"

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// KeyValueStore is one storage tier holding raw values under string keys.
type KeyValueStore interface {
	// Get returns (nil, nil) when key is absent.
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	// SetMany writes all entries or none of them.
	SetMany(ctx context.Context, entries map[string][]byte) error
	Delete(ctx context.Context, key string) error
	Clear(ctx context.Context) error
	Close() error
}

// PersistentStore reads and writes JSON-encoded values in the durable and
// session tiers.
type PersistentStore interface {
	// Read decodes the value stored under key into dst. found is false when
	// the key is absent or its value cannot be decoded.
	Read(ctx context.Context, tier Tier, key string, dst any) (found bool, err error)
	Write(ctx context.Context, tier Tier, key string, value any) error
	// WriteAll encodes and stores every entry atomically.
	WriteAll(ctx context.Context, tier Tier, entries map[string]any) error
	Remove(ctx context.Context, tier Tier, key string) error
	Clear(ctx context.Context, tier Tier) error
	Close() error
}
