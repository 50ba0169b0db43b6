package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidMode        = errors.New("invalid generation mode")
	ErrInvalidCategory    = errors.New("invalid character category")
	ErrInvalidLength      = errors.New("invalid length")
	ErrInvalidWordCount   = errors.New("invalid word count")
	ErrInvalidBulkCount   = errors.New("invalid bulk count")
	ErrInvalidSeparator   = errors.New("separator must be at most one character")
	ErrInvalidPattern     = errors.New("invalid pattern")
	ErrInvalidCustomChars = errors.New("invalid custom characters")

	ErrInvalidPresetName = errors.New("invalid preset name")

	ErrInvalidExportFormat = errors.New("invalid export format")
	ErrEmptyPasswords      = errors.New("passwords list cannot be empty")
	ErrTooManyPasswords    = errors.New("too many passwords")
	ErrEmptyPassword       = errors.New("password is required")
	ErrPasswordTooLong     = errors.New("password is too long")
)
