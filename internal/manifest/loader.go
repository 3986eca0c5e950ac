package manifest

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/quantmind-br/cargo-navigate/internal/domain"
)

// Loader loads and parses Cargo.toml files
type Loader struct{}

// NewLoader creates a new manifest loader
func NewLoader() *Loader {
	return &Loader{}
}

// Path returns the manifest location for dir. Parent directories are never searched.
func Path(dir string) string {
	return filepath.Join(dir, FileName)
}

// Load reads and parses the Cargo.toml in dir
func (l *Loader) Load(dir string) (*Manifest, error) {
	path := Path(dir)

	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, domain.NewManifestMissingError()
		}
		return nil, domain.NewManifestUnreadableError(err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, domain.NewManifestUnreadableError(err)
	}

	return l.LoadFromBytes(data)
}

// LoadFromBytes parses manifest content from raw bytes
func (l *Loader) LoadFromBytes(data []byte) (*Manifest, error) {
	var m Manifest
	if _, err := toml.Decode(string(data), &m); err != nil {
		return nil, domain.NewManifestInvalidError(err)
	}
	return &m, nil
}
