package manifest

import "errors"

// Sentinel errors for the manifest package
var (
	// ErrNoPackage indicates the manifest has no [package] table
	ErrNoPackage = errors.New("manifest has no [package] table")

	// ErrNoName indicates [package] is missing the required name
	ErrNoName = errors.New("package.name is missing")

	// ErrFieldType indicates a link field has an unsupported TOML type
	ErrFieldType = errors.New("expected a string or { workspace = true }")
)
