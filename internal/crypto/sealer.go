// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"bytes"
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"fmt"
	"io"

	"golang.org/x/crypto/argon2"
)

// sealedHeader marks the start of every sealed payload.
var sealedHeader = []byte("PGSEAL1\n")

const saltSize = 16

// argonSealer is the Argon2id + AES-256-GCM implementation of [Sealer].
type argonSealer struct {
	// Argon2id tuning parameters.
	argonTime    uint32
	argonMemory  uint32
	argonThreads uint8
	argonKeyLen  uint32
}

// NewSealer constructs a [Sealer] with the Argon2id parameters recommended by
// OWASP (2024):
//   - time cost:   1 iteration
//   - memory cost: 64 MiB
//   - parallelism: 4 threads
//   - key length:  32 bytes (256 bits)
func NewSealer() Sealer {
	return &argonSealer{
		argonTime:    1,
		argonMemory:  64 * 1024, // 64 MiB
		argonThreads: 4,
		argonKeyLen:  32, // 256 bits
	}
}

// Seal implements [Sealer]. Layout: header ‖ salt (16) ‖ nonce (12) ‖ ciphertext.
func (s *argonSealer) Seal(plaintext []byte, passphrase string) ([]byte, error) {
	if passphrase == "" {
		return nil, ErrEmptyPassphrase
	}

	salt := make([]byte, saltSize)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return nil, fmt.Errorf("generate salt: %w", err)
	}

	gcm, err := s.newGCM(passphrase, salt)
	if err != nil {
		return nil, err
	}

	nonce := make([]byte, gcm.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return nil, fmt.Errorf("generate nonce: %w", err)
	}

	out := make([]byte, 0, len(sealedHeader)+saltSize+len(nonce)+len(plaintext)+gcm.Overhead())
	out = append(out, sealedHeader...)
	out = append(out, salt...)
	out = append(out, nonce...)
	// the header is authenticated as additional data
	return gcm.Seal(out, nonce, plaintext, sealedHeader), nil
}

// Open implements [Sealer].
func (s *argonSealer) Open(sealed []byte, passphrase string) ([]byte, error) {
	if passphrase == "" {
		return nil, ErrEmptyPassphrase
	}
	if !s.IsSealed(sealed) {
		return nil, ErrNotSealed
	}

	blob := sealed[len(sealedHeader):]
	if len(blob) < saltSize {
		return nil, ErrSealedDataTooShort
	}
	salt, rest := blob[:saltSize], blob[saltSize:]

	gcm, err := s.newGCM(passphrase, salt)
	if err != nil {
		return nil, err
	}

	nonceSize := gcm.NonceSize()
	if len(rest) < nonceSize+gcm.Overhead() {
		return nil, ErrSealedDataTooShort
	}
	nonce, ciphertext := rest[:nonceSize], rest[nonceSize:]

	plaintext, err := gcm.Open(nil, nonce, ciphertext, sealedHeader)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecryptionFailed, err)
	}

	return plaintext, nil
}

// IsSealed implements [Sealer].
func (s *argonSealer) IsSealed(data []byte) bool {
	return bytes.HasPrefix(data, sealedHeader)
}

func (s *argonSealer) newGCM(passphrase string, salt []byte) (cipher.AEAD, error) {
	key := argon2.IDKey([]byte(passphrase), salt, s.argonTime, s.argonMemory, s.argonThreads, s.argonKeyLen)

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("create gcm: %w", err)
	}
	return gcm, nil
}
