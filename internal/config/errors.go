package config

import "errors"

// Sentinel errors returned by Load and Validate.
var (
	ErrInvalidConfig = errors.New("invalid explorer config")
	ErrLoadConfig    = errors.New("load explorer config failed")
)
