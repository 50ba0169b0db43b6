// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package crypto holds the cryptographic primitives of the generator: the
// secure random source every draw goes through and the passphrase based
// sealing of exported secrets.
package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/crypto_mock.go -package=mock

// SecureRandomSource produces uniformly distributed random integers backed by
// a cryptographically secure generator.
//
// Production code uses [NewRandomSource]. Tests may substitute a seeded
// implementation from the cryptotest package to get reproducible output.
type SecureRandomSource interface {
	// Uint32 returns 32 random bits.
	Uint32() uint32

	// Intn returns a value in [0, n). It returns 0 when n <= 0.
	//
	// The value is a 32-bit draw reduced modulo n. The resulting bias for n
	// that does not divide 2^32 is accepted for password generation.
	Intn(n int) int
}

// Sealer encrypts export payloads with a key derived from a passphrase.
type Sealer interface {
	// Seal derives a key from passphrase with a fresh salt and returns the
	// authenticated ciphertext of plaintext, prefixed by everything Open needs.
	Seal(plaintext []byte, passphrase string) ([]byte, error)

	// Open reverses Seal. It fails with [ErrDecryptionFailed] when the
	// passphrase is wrong or the data was modified.
	Open(sealed []byte, passphrase string) ([]byte, error)

	// IsSealed reports whether data starts with the sealed payload header.
	IsSealed(data []byte) bool
}
