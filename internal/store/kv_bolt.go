package store

import (
	"context"
	"fmt"
	"time"

	"github.com/boltdb/bolt"
)

var entriesBucket = []byte("store_entries")

// boltTier keeps every key in a single BoltDB bucket.
type boltTier struct {
	db *bolt.DB
}

// NewBoltTier opens (or creates) the BoltDB file at path.
func NewBoltTier(path string) (KeyValueStore, error) {
	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("error opening bolt db %s: %w", path, err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(entriesBucket)
		return err
	})
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("error creating bolt bucket: %w", err)
	}

	return &boltTier{db: db}, nil
}

func (b *boltTier) Get(_ context.Context, key string) ([]byte, error) {
	var value []byte
	err := b.db.View(func(tx *bolt.Tx) error {
		v := tx.Bucket(entriesBucket).Get([]byte(key))
		if v != nil {
			// v is only valid for the lifetime of the transaction
			value = append([]byte{}, v...)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("bolt get %s: %w", key, err)
	}

	return value, nil
}

func (b *boltTier) Set(_ context.Context, key string, value []byte) error {
	err := b.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(entriesBucket).Put([]byte(key), value)
	})
	if err != nil {
		return fmt.Errorf("bolt set %s: %w", key, err)
	}

	return nil
}

func (b *boltTier) SetMany(_ context.Context, entries map[string][]byte) error {
	err := b.db.Update(func(tx *bolt.Tx) error {
		bucket := tx.Bucket(entriesBucket)
		for k, v := range entries {
			if err := bucket.Put([]byte(k), v); err != nil {
				return fmt.Errorf("put %s: %w", k, err)
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("bolt set many: %w", err)
	}

	return nil
}

func (b *boltTier) Delete(_ context.Context, key string) error {
	err := b.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(entriesBucket).Delete([]byte(key))
	})
	if err != nil {
		return fmt.Errorf("bolt delete %s: %w", key, err)
	}

	return nil
}

func (b *boltTier) Clear(_ context.Context) error {
	err := b.db.Update(func(tx *bolt.Tx) error {
		if err := tx.DeleteBucket(entriesBucket); err != nil && err != bolt.ErrBucketNotFound {
			return err
		}
		_, err := tx.CreateBucket(entriesBucket)
		return err
	})
	if err != nil {
		return fmt.Errorf("bolt clear: %w", err)
	}

	return nil
}

func (b *boltTier) Close() error {
	return b.db.Close()
}
