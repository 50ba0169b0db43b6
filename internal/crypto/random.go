// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/rand"
	"encoding/binary"
	"math"
)

// osRandomSource reads from the operating system CSPRNG.
// It holds no state and is safe for concurrent use.
type osRandomSource struct{}

// NewRandomSource returns the production [SecureRandomSource].
func NewRandomSource() SecureRandomSource {
	return osRandomSource{}
}

// Uint32 implements [SecureRandomSource].
func (osRandomSource) Uint32() uint32 {
	var b [4]byte
	// crypto/rand.Read never returns an error; on failure the runtime aborts.
	_, _ = rand.Read(b[:])
	return binary.BigEndian.Uint32(b[:])
}

// Intn implements [SecureRandomSource].
func (s osRandomSource) Intn(n int) int {
	return Reduce(s, n)
}

// Reduce maps draws from src onto [0, n) by modulo. Bounds wider than 32 bits
// combine two draws. It returns 0 when n <= 0.
func Reduce(src interface{ Uint32() uint32 }, n int) int {
	if n <= 0 {
		return 0
	}
	if uint64(n) <= math.MaxUint32 {
		return int(src.Uint32() % uint32(n))
	}
	wide := uint64(src.Uint32())<<32 | uint64(src.Uint32())
	return int(wide % uint64(n))
}
