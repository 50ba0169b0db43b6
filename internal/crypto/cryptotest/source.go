// Package cryptotest provides deterministic [crypto.SecureRandomSource]
// implementations for tests. Never use them outside of tests.
package cryptotest

import (
	"encoding/binary"
	"math/rand/v2"

	"github.com/MKhiriev/go-pass-gen/internal/crypto"
)

// SeededSource is a reproducible source backed by ChaCha8.
type SeededSource struct {
	rng *rand.ChaCha8
}

// NewSeededSource returns a source whose output depends only on seed.
func NewSeededSource(seed uint64) *SeededSource {
	var key [32]byte
	binary.LittleEndian.PutUint64(key[:], seed)
	return &SeededSource{rng: rand.NewChaCha8(key)}
}

func (s *SeededSource) Uint32() uint32 {
	return uint32(s.rng.Uint64())
}

func (s *SeededSource) Intn(n int) int {
	return crypto.Reduce(s, n)
}

// SequenceSource replays a fixed list of draws, cycling when exhausted.
// Intn returns the next value modulo n, so the scripted values are indexes.
type SequenceSource struct {
	values []uint32
	pos    int
}

// NewSequenceSource returns a source replaying values in order.
func NewSequenceSource(values ...uint32) *SequenceSource {
	if len(values) == 0 {
		values = []uint32{0}
	}
	return &SequenceSource{values: values}
}

func (s *SequenceSource) Uint32() uint32 {
	v := s.values[s.pos%len(s.values)]
	s.pos++
	return v
}

func (s *SequenceSource) Intn(n int) int {
	return crypto.Reduce(s, n)
}

// Draws reports how many values have been consumed.
func (s *SequenceSource) Draws() int {
	return s.pos
}
