package domain

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
)

// URLKind identifies which of a crate's links to navigate to
type URLKind int

const (
	KindRepository URLKind = iota
	KindHomepage
	KindDocumentation
	KindRegistryListing
)

// kindInfo is the per-kind lookup table: manifest/registry field name,
// canonical display name and the accepted selector aliases.
var kindInfo = map[URLKind]struct {
	field   string
	name    string
	aliases []string
}{
	KindRepository:      {field: "repository", name: "repository", aliases: []string{"repo", "repository"}},
	KindHomepage:        {field: "homepage", name: "homepage", aliases: []string{"home", "homepage"}},
	KindDocumentation:   {field: "documentation", name: "documentation", aliases: []string{"docs", "documentation"}},
	KindRegistryListing: {field: "", name: "crates.io", aliases: []string{"crates", "crate", "crates.io", "cratesio", "crates-io"}},
}

// kindOrder keeps alias listings deterministic
var kindOrder = []URLKind{KindRepository, KindHomepage, KindDocumentation, KindRegistryListing}

// ParseURLKind maps a user-supplied selector to a URLKind.
// Matching ignores case and surrounding whitespace.
func ParseURLKind(s string) (URLKind, error) {
	key := cases.Fold().String(strings.TrimSpace(s))
	for _, k := range kindOrder {
		for _, alias := range kindInfo[k].aliases {
			if key == alias {
				return k, nil
			}
		}
	}
	return 0, NewUnknownURLKindError(s)
}

// Field returns the Cargo.toml / registry field holding the URL.
// RegistryListing has no field, its URL is synthesized from the crate name.
func (k URLKind) Field() string {
	return kindInfo[k].field
}

func (k URLKind) String() string {
	if info, ok := kindInfo[k]; ok {
		return info.name
	}
	return fmt.Sprintf("URLKind(%d)", int(k))
}

// KindAliases returns every accepted selector, grouped by kind
func KindAliases() []string {
	var all []string
	for _, k := range kindOrder {
		all = append(all, kindInfo[k].aliases...)
	}
	return all
}
