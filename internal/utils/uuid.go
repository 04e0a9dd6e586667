package utils

import (
	"encoding/binary"
	"sync"

	"github.com/google/uuid"
)

//go:generate mockgen -source=uuid.go -destination=../mock/id_source_mock.go -package=mock

// IDSource hands out unique record identifiers.
type IDSource interface {
	NextID() int64
}

// IDGenerator derives positive int64 identifiers from UUIDv7 values. The
// upper 64 bits of a v7 UUID hold the millisecond timestamp followed by a
// per-process monotonic sequence, so ids grow over time.
type IDGenerator struct {
	mu   sync.Mutex
	last int64
}

func NewIDGenerator() *IDGenerator {
	return &IDGenerator{}
}

func (g *IDGenerator) NextID() int64 {
	g.mu.Lock()
	defer g.mu.Unlock()

	id := fromUUID(g.generate())
	if id <= g.last {
		id = g.last + 1
	}
	g.last = id

	return id
}

func (g *IDGenerator) generate() uuid.UUID {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.New()
	}

	return v7
}

func fromUUID(u uuid.UUID) int64 {
	return int64(binary.BigEndian.Uint64(u[:8]) >> 1)
}

// SequenceIDSource returns consecutive ids starting at the given value.
// It is meant for tests and fixtures.
type SequenceIDSource struct {
	mu   sync.Mutex
	next int64
}

func NewSequenceIDSource(start int64) *SequenceIDSource {
	return &SequenceIDSource{next: start}
}

func (s *SequenceIDSource) NextID() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.next
	s.next++

	return id
}
