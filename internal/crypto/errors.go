package crypto

import "errors"

var (
	// ErrEmptyPassphrase is returned when sealing or opening without a passphrase.
	ErrEmptyPassphrase = errors.New("passphrase is empty")
	// ErrNotSealed is returned by Open when the data has no sealed header.
	ErrNotSealed = errors.New("data is not sealed")
	// ErrSealedDataTooShort is returned when the sealed blob is truncated.
	ErrSealedDataTooShort = errors.New("sealed data too short")
	// ErrDecryptionFailed is returned when authentication of the ciphertext fails.
	ErrDecryptionFailed = errors.New("decryption failed")
)
