package util

import (
	"github.com/oklog/ulid/v2"
)

// NewULID generates a new ULID string from the package's monotonic,
// crypto-seeded entropy source.
func NewULID() string {
	return ulid.Make().String()
}

// IsULID reports whether s parses as a ULID.
func IsULID(s string) bool {
	_, err := ulid.ParseStrict(s)
	return err == nil
}
