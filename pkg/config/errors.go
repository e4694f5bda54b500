package config

import "errors"

// ErrParseFailed indicates environment variables could not be parsed into
// the config struct.
var ErrParseFailed = errors.New("failed to parse config from environment")
