package policy

import "errors"

// Package-specific errors
var (
	// ErrReadPolicy is returned when the policy file cannot be read.
	ErrReadPolicy = errors.New("failed to read policy file")

	// ErrParsePolicy is returned when the policy document is not valid YAML.
	ErrParsePolicy = errors.New("failed to parse policy document")

	// ErrParseEnv is returned when environment variables cannot be parsed into the policy struct.
	ErrParseEnv = errors.New("failed to parse environment variables into policy")
)
