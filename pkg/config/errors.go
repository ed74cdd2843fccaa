package config

import "errors"

var (
	ErrNilPointer    = errors.New("config: target must be a non-nil pointer")
	ErrParsingConfig = errors.New("config: failed to parse environment")
)
