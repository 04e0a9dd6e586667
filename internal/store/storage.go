// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/MKhiriev/recook-book/internal/logger"
)

// Storage composes a durable and a session tier and stores values as JSON.
type Storage struct {
	durable KeyValueStore
	session KeyValueStore
	logger  *logger.Logger
}

// NewStorage builds a Storage from two already opened tiers.
func NewStorage(durable, session KeyValueStore, log *logger.Logger) *Storage {
	return &Storage{
		durable: durable,
		session: session,
		logger:  log,
	}
}

func (s *Storage) tier(t Tier) (KeyValueStore, error) {
	switch t {
	case TierDurable:
		return s.durable, nil
	case TierSession:
		return s.session, nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownTier, int(t))
	}
}

// Read decodes the value under key into dst. A value that is not valid JSON
// for dst is logged and reported as absent; dst may then hold partial data
// and should be discarded.
func (s *Storage) Read(ctx context.Context, tier Tier, key string, dst any) (bool, error) {
	kv, err := s.tier(tier)
	if err != nil {
		return false, err
	}

	raw, err := kv.Get(ctx, key)
	if err != nil {
		return false, fmt.Errorf("read %s/%s: %w", tier, key, err)
	}
	if raw == nil {
		return false, nil
	}

	if err = json.Unmarshal(raw, dst); err != nil {
		s.logger.Warn().Err(err).
			Str("func", "*Storage.Read").
			Stringer("tier", tier).
			Str("key", key).
			Msg("stored value is corrupt, treating it as absent")
		return false, nil
	}

	return true, nil
}

func (s *Storage) Write(ctx context.Context, tier Tier, key string, value any) error {
	kv, err := s.tier(tier)
	if err != nil {
		return err
	}

	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode %s/%s: %w", tier, key, err)
	}

	if err = kv.Set(ctx, key, raw); err != nil {
		return fmt.Errorf("write %s/%s: %w", tier, key, err)
	}

	return nil
}

// WriteAll encodes every entry first, so an encoding failure writes nothing.
func (s *Storage) WriteAll(ctx context.Context, tier Tier, entries map[string]any) error {
	kv, err := s.tier(tier)
	if err != nil {
		return err
	}

	encoded := make(map[string][]byte, len(entries))
	for key, value := range entries {
		raw, err := json.Marshal(value)
		if err != nil {
			return fmt.Errorf("encode %s/%s: %w", tier, key, err)
		}
		encoded[key] = raw
	}

	if err = kv.SetMany(ctx, encoded); err != nil {
		return fmt.Errorf("write all %s: %w", tier, err)
	}

	return nil
}

func (s *Storage) Remove(ctx context.Context, tier Tier, key string) error {
	kv, err := s.tier(tier)
	if err != nil {
		return err
	}

	if err = kv.Delete(ctx, key); err != nil {
		return fmt.Errorf("remove %s/%s: %w", tier, key, err)
	}

	return nil
}

func (s *Storage) Clear(ctx context.Context, tier Tier) error {
	kv, err := s.tier(tier)
	if err != nil {
		return err
	}

	if err = kv.Clear(ctx); err != nil {
		return fmt.Errorf("clear %s: %w", tier, err)
	}

	return nil
}

// Close releases both tiers.
func (s *Storage) Close() error {
	return errors.Join(s.durable.Close(), s.session.Close())
}
