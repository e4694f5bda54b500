package cache

import "errors"

// Errors shared by every cache backend. Callers match them with errors.Is;
// the codec errors carry the underlying cause as well.
var (
	// ErrNotFound reports a miss: the key was never stored or its TTL ran out.
	ErrNotFound = errors.New("cache: key not found")

	// ErrClosed reports a write against a cache whose Close has already run.
	ErrClosed = errors.New("cache: already closed")

	// ErrMarshal wraps failures encoding a value for a byte-oriented backend.
	ErrMarshal = errors.New("cache: cannot encode value")

	// ErrUnmarshal wraps failures decoding a stored value.
	ErrUnmarshal = errors.New("cache: cannot decode value")
)
