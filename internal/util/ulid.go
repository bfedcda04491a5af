package util

import "github.com/oklog/ulid/v2"

// NewULID generates a new ULID string. ulid.Make draws entropy from
// crypto/rand, so concurrent callers never produce the same key; every
// uploaded file and chat session gets one, which is what keeps
// concurrent requests with identical filenames from colliding in the
// upload directory.
func NewULID() string {
	return ulid.Make().String()
}
