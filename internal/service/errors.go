package service

import "errors"

var (
	ErrInvalidDataProvided   = errors.New("invalid data provided")
	ErrVersionIsNotSpecified = errors.New("app version is not specified")

	ErrPresetNotFound = errors.New("preset not found")

	ErrUnknownExportFormat = errors.New("unknown export format")
	ErrUnrepresentable     = errors.New("secrets cannot be represented in this format")
	ErrMalformedImport     = errors.New("malformed import data")
	ErrPassphraseRequired  = errors.New("passphrase is required for sealed data")
	ErrWrongPassphrase     = errors.New("wrong passphrase or corrupted data")
)
