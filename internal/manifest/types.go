package manifest

import (
	"fmt"

	"github.com/quantmind-br/cargo-navigate/internal/domain"
)

// FileName is the manifest file looked up in the working directory
const FileName = "Cargo.toml"

// Manifest is the subset of Cargo.toml used for navigation
type Manifest struct {
	Package *Package `toml:"package"`
}

// Package mirrors the [package] table
type Package struct {
	Name          string `toml:"name"`
	Homepage      Field  `toml:"homepage"`
	Repository    Field  `toml:"repository"`
	Documentation Field  `toml:"documentation"`
}

// Field is a package link. It is either a plain string or inherited
// from the workspace root.
type Field struct {
	Value     string
	Set       bool
	Workspace bool
}

// UnmarshalTOML implements toml.Unmarshaler
func (f *Field) UnmarshalTOML(data any) error {
	switch v := data.(type) {
	case string:
		f.Value = v
		f.Set = true
		return nil
	case map[string]any:
		if inherit, ok := v["workspace"].(bool); ok && inherit && len(v) == 1 {
			f.Workspace = true
			return nil
		}
	}
	return fmt.Errorf("%w, found %T", ErrFieldType, data)
}

// CrateName returns package.name
func (m *Manifest) CrateName() (string, error) {
	if m.Package == nil {
		return "", domain.NewManifestInvalidError(ErrNoPackage)
	}
	if m.Package.Name == "" {
		return "", domain.NewManifestInvalidError(ErrNoName)
	}
	return m.Package.Name, nil
}

// Field returns the link stored under package.<kind.Field()>. The second
// result is false when the field is absent or inherited from the workspace.
func (m *Manifest) Field(kind domain.URLKind) (string, bool) {
	if m.Package == nil {
		return "", false
	}

	var f Field
	switch kind {
	case domain.KindHomepage:
		f = m.Package.Homepage
	case domain.KindRepository:
		f = m.Package.Repository
	case domain.KindDocumentation:
		f = m.Package.Documentation
	default:
		return "", false
	}
	return f.Value, f.Set
}
