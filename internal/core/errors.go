package core

import "fmt"

// ConfigError means the deployment is broken (missing API key, bad env),
// not that a provider is temporarily down. The fallback chain does not
// absorb it.
type ConfigError struct {
	Provider string
	Var      string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("%s: %s is not set", e.Provider, e.Var)
}

// TransientError covers network failures, timeouts, non-2xx statuses and
// unusable response bodies. The fallback chain logs it and advances.
type TransientError struct {
	Provider string
	Err      error
}

func (e *TransientError) Error() string {
	return fmt.Sprintf("%s: %v", e.Provider, e.Err)
}

func (e *TransientError) Unwrap() error { return e.Err }

// ParseError marks a malformed chunk inside an otherwise live stream.
// It is skipped per line and never aborts the response.
type ParseError struct {
	Provider string
	Line     string
	Err      error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: bad stream line %q: %v", e.Provider, e.Line, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }
