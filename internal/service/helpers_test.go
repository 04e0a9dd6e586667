package service

import (
	"testing"
	"time"

	"github.com/MKhiriev/recook-book/internal/logger"
	"github.com/MKhiriev/recook-book/internal/store"
	"github.com/MKhiriev/recook-book/internal/utils"
)

var testNow = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

func newMemoryStorage(t *testing.T) *store.Storage {
	t.Helper()
	st := store.NewStorage(store.NewMemoryTier(), store.NewMemoryTier(), logger.Nop())
	t.Cleanup(func() { _ = st.Close() })
	return st
}

func newTestDirectory(t *testing.T, st store.PersistentStore) AccountDirectory {
	t.Helper()
	return NewAccountDirectory(st, utils.NewSequenceIDSource(100), utils.FixedClock{T: testNow}, logger.Nop())
}
