package domain

import (
	"errors"
	"fmt"
)

// ExitCode is the process exit status for every navigation failure
const ExitCode = 101

// Sentinel errors
var (
	// ErrManifestMissing indicates there is no Cargo.toml in the working directory
	ErrManifestMissing = errors.New("manifest missing")

	// ErrManifestUnreadable indicates Cargo.toml exists but could not be read
	ErrManifestUnreadable = errors.New("manifest unreadable")

	// ErrManifestInvalid indicates Cargo.toml failed to parse or lacks package.name
	ErrManifestInvalid = errors.New("manifest invalid")

	// ErrNetwork indicates the registry could not be reached
	ErrNetwork = errors.New("network error")

	// ErrResponseInvalid indicates the registry body is not crate metadata
	ErrResponseInvalid = errors.New("response invalid")

	// ErrFieldNotRegistered indicates the requested URL field is absent and has no fallback
	ErrFieldNotRegistered = errors.New("field not registered")

	// ErrUnknownURLKind indicates the target selector matches no URLKind
	ErrUnknownURLKind = errors.New("unknown URL kind")

	// ErrCrateNotFound indicates the registry has no crate with that name
	ErrCrateNotFound = errors.New("crate not found")

	// ErrLaunchFailed indicates the browser could not be started
	ErrLaunchFailed = errors.New("launch failed")
)

// NavigationError is the single error value surfaced to the user.
// Error() is the one-line message; Code is one of the sentinels above.
type NavigationError struct {
	Code    error
	Message string
	Err     error
}

func (e *NavigationError) Error() string {
	return e.Message
}

func (e *NavigationError) Unwrap() error {
	return e.Err
}

// Is reports whether target is the sentinel this error was built from
func (e *NavigationError) Is(target error) bool {
	return e.Code == target
}

// NewNavigationError creates a NavigationError
func NewNavigationError(code error, err error, format string, args ...any) *NavigationError {
	return &NavigationError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Err:     err,
	}
}

func NewManifestMissingError() *NavigationError {
	return NewNavigationError(ErrManifestMissing, nil, "Cargo.toml is missing")
}

func NewManifestUnreadableError(err error) *NavigationError {
	return NewNavigationError(ErrManifestUnreadable, err, "Failed to read Cargo.toml: %v", err)
}

func NewManifestInvalidError(err error) *NavigationError {
	return NewNavigationError(ErrManifestInvalid, err, "Invalid Cargo.toml file")
}

func NewNetworkError(err error) *NavigationError {
	return NewNavigationError(ErrNetwork, err, "Failed to reach the registry: %v", err)
}

// NewResponseInvalidError reports an undecodable registry body. detail is
// optional text taken from the registry's own error payload.
func NewResponseInvalidError(crate, detail string, err error) *NavigationError {
	if detail != "" {
		return NewNavigationError(ErrResponseInvalid, err, "Invalid registry response for crate %s: %s", crate, detail)
	}
	return NewNavigationError(ErrResponseInvalid, err, "Invalid registry response for crate %s", crate)
}

func NewFieldNotRegisteredError(kind URLKind) *NavigationError {
	return NewNavigationError(ErrFieldNotRegistered, nil, "%s URL is not registered in the crate", kind.Field())
}

func NewUnknownURLKindError(selector string) *NavigationError {
	return NewNavigationError(ErrUnknownURLKind, nil,
		"Unknown navigation target %q (use repo, home, docs or crates)", selector)
}

func NewCrateNotFoundError(crate string) *NavigationError {
	return NewNavigationError(ErrCrateNotFound, nil, "Crate %s is not found in the registry", crate)
}

func NewLaunchFailedError(url string, err error) *NavigationError {
	return NewNavigationError(ErrLaunchFailed, err, "Failed to open %s in a browser: %v", url, err)
}

// FetchError represents an error during fetching
type FetchError struct {
	URL        string
	StatusCode int
	Err        error
}

func (e *FetchError) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("fetch error for %s: status %d: %v", e.URL, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("fetch error for %s: %v", e.URL, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// NewFetchError creates a new FetchError
func NewFetchError(url string, statusCode int, err error) *FetchError {
	return &FetchError{
		URL:        url,
		StatusCode: statusCode,
		Err:        err,
	}
}

// ValidationError represents a configuration validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error for %s: %s", e.Field, e.Message)
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Field:   field,
		Message: message,
	}
}
