// Package generator builds character sets and produces secrets in the four
// generation modes: standard, passphrase, pattern and bulk.
//
// Every function is pure apart from the injected [crypto.SecureRandomSource].
// A configuration that cannot produce a secret (empty charset, zero word
// count, empty pattern) yields empty output and never an error.
package generator
