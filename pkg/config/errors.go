package config

import "errors"

var (
	ErrNilPointer    = errors.New("config pointer is nil")
	ErrParsingConfig = errors.New("failed to parse config from environment")
)
