package registry

import (
	"strings"

	"github.com/quantmind-br/cargo-navigate/internal/domain"
)

// Record is the body of GET /api/v1/crates/{name}. Only the fields used
// for navigation are decoded; a wrongly typed field fails decoding.
type Record struct {
	Crate  *Crate     `json:"crate"`
	Errors []APIError `json:"errors,omitempty"`
}

// Crate holds the crate's registered links. A nil pointer means the
// registry has no value (absent or null).
type Crate struct {
	Name          string  `json:"name"`
	Homepage      *string `json:"homepage"`
	Repository    *string `json:"repository"`
	Documentation *string `json:"documentation"`
}

// APIError is one entry of the registry's error payload
type APIError struct {
	Detail string `json:"detail"`
}

// Field returns crate.<kind.Field()> when the registry has it
func (r *Record) Field(kind domain.URLKind) (string, bool) {
	if r == nil || r.Crate == nil {
		return "", false
	}

	var v *string
	switch kind {
	case domain.KindHomepage:
		v = r.Crate.Homepage
	case domain.KindRepository:
		v = r.Crate.Repository
	case domain.KindDocumentation:
		v = r.Crate.Documentation
	}
	if v == nil {
		return "", false
	}
	return *v, true
}

// ErrorDetail joins the details of the registry's error payload
func (r *Record) ErrorDetail() string {
	details := make([]string, 0, len(r.Errors))
	for _, e := range r.Errors {
		if e.Detail != "" {
			details = append(details, e.Detail)
		}
	}
	return strings.Join(details, "; ")
}
