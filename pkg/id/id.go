package id

import "github.com/oklog/ulid/v2"

// New returns a ULID string. Presets and saved sessions sort by creation
// time straight off their primary key; the package-level monotonic entropy
// keeps IDs minted within the same millisecond ordered too.
func New() string {
	return ulid.Make().String()
}
