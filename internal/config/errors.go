package config

import "fmt"

// NotFoundError is returned by LoadConfig when the configuration file does not exist.
type NotFoundError struct {
	Path string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("configuration file not found: %s", e.Path)
}

// ParseError is returned when the document is syntactically malformed.
type ParseError struct {
	Path string // empty when parsing a stream
	Err  error
}

func (e *ParseError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("failed to parse configuration: %v", e.Err)
	}
	return fmt.Sprintf("failed to parse configuration file %s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
