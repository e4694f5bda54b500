package demo

import "errors"

// ErrUnknownDemo indicates a dispatch request named a demo that is not in
// the registry. Dispatchers fail fast on it without running anything.
var ErrUnknownDemo = errors.New("unknown demo")
