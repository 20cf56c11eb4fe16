package store

import "github.com/google/uuid"

// RunIDGenerator generates unique run identifiers.
// Implemented by UUIDv7Generator (production) and FixedGenerator (tests).
type RunIDGenerator interface {
	Generate() string
}

// UUIDv7Generator issues time-ordered RFC 4122 UUIDs, so archived runs
// sort chronologically by ID.
type UUIDv7Generator struct{}

// Generate returns a new UUIDv7 string.
func (UUIDv7Generator) Generate() string {
	return uuid.Must(uuid.NewV7()).String()
}

// FixedGenerator always returns the same ID. Tests use it for
// deterministic archive contents.
type FixedGenerator struct {
	ID string
}

// Generate returns the fixed ID.
func (g FixedGenerator) Generate() string {
	return g.ID
}
