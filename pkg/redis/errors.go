package redis

import "errors"

// Sentinel errors returned by connection setup and the readiness probe.
var (
	ErrEmptyConnectionURL = errors.New("redis: connection URL is empty")
	ErrFailedToParseURL   = errors.New("redis: connection URL is not valid")
	ErrConnectionFailed   = errors.New("redis: server is unreachable")
	ErrHealthcheckFailed  = errors.New("redis: healthcheck failed")
)
