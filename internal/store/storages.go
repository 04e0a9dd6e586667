package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/recook-book/internal/config"
	"github.com/MKhiriev/recook-book/internal/logger"
)

// NewStorages initialises the storage layer from cfg:
//  1. Opens the durable tier with the configured driver. For SQLite the
//     database file is created if needed and the goose migrations are applied.
//  2. Creates an empty in-process session tier.
//
// Returns [ErrUnsupportedDriver] for an unknown driver.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storage, error) {
	log.Info().Str("driver", cfg.Durable.Driver).Msg("creating new storages...")

	var durable KeyValueStore
	switch cfg.Durable.Driver {
	case config.DriverSQLite, "":
		db, err := NewConnectSQLite(ctx, cfg.Durable, log)
		if err != nil {
			return nil, fmt.Errorf("sqlite connection error: %w", err)
		}
		if err = db.Migrate(); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("migration failed: %w", err)
		}
		durable = NewSQLiteTier(db)
	case config.DriverBolt:
		kv, err := NewBoltTier(cfg.Durable.DSN)
		if err != nil {
			return nil, err
		}
		durable = kv
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedDriver, cfg.Durable.Driver)
	}

	return NewStorage(durable, NewMemoryTier(), log), nil
}
