package ulid

import (
	"github.com/oklog/ulid/v2"
)

// NewULID generates a new ULID string.
var NewULID = func() string {
	return ulid.Make().String()
}

// IsValid reports whether s is a well-formed ULID string.
func IsValid(s string) bool {
	_, err := ulid.ParseStrict(s)
	return err == nil
}
