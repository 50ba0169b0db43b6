package models

// SecretRequest carries a single user-supplied secret, e.g. for a breach
// lookup or a strength estimate of a typed password.
type SecretRequest struct {
	Password string `json:"password"`
}

// ExportRequest asks for a list of secrets rendered in Format. When
// Passphrase is set the rendered payload is sealed with it.
type ExportRequest struct {
	Format     ExportFormat `json:"format"`
	Passwords  []string     `json:"passwords"`
	Passphrase string       `json:"passphrase,omitempty"`
}
