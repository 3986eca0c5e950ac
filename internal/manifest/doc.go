// Package manifest loads the Cargo.toml of the crate in a directory.
//
// Only the [package] fields needed to build navigation links are decoded:
//
//	[package]
//	name          = "serde"
//	homepage      = "https://serde.rs"
//	repository    = "https://github.com/serde-rs/serde"
//	documentation = "https://docs.rs/serde"
//
// Link fields may also use workspace inheritance ({ workspace = true });
// such fields are reported as absent because the workspace root is never
// searched for.
//
// # Usage
//
//	loader := manifest.NewLoader()
//	m, err := loader.Load(cwd)
//	if err != nil {
//	    return err
//	}
//	name, err := m.CrateName()
//
// # Error Handling
//
// Load returns *domain.NavigationError values matching domain.ErrManifestMissing,
// domain.ErrManifestUnreadable or domain.ErrManifestInvalid. The package
// sentinels below are the wrapped causes:
//   - ErrNoPackage: the manifest has no [package] table (virtual workspace)
//   - ErrNoName: [package] has no name
//   - ErrFieldType: a link field is neither a string nor { workspace = true }
package manifest
