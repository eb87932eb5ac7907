package domain

import (
	"golang.org/x/text/cases"
)

// caseFolder performs locale-independent Unicode case folding, so that
// names like "Blàñk.esm" and "BLÀÑK.ESM" compare and hash equal. A single
// shared folder avoids re-allocating the transformer on every name.
var caseFolder = cases.Fold()

// CaseInsensitiveName wraps a plugin filename, preserving the original
// display form for I/O while exposing a normalised form for identity,
// equality, hashing and ordering. Construct with NewCaseInsensitiveName;
// the zero value is not a valid name.
type CaseInsensitiveName struct {
	original string
	folded   string
}

// NewCaseInsensitiveName normalises name via Unicode case folding (not
// plain ASCII lowercasing, which mishandles names like "Blàñk.esm").
func NewCaseInsensitiveName(name string) CaseInsensitiveName {
	return CaseInsensitiveName{
		original: name,
		folded:   caseFolder.String(name),
	}
}

// String returns the original display form.
func (n CaseInsensitiveName) String() string { return n.original }

// Key returns the normalised form, suitable as a map key or for
// case-insensitive comparison and ordering.
func (n CaseInsensitiveName) Key() string { return n.folded }

// Equal reports whether two names are the same plugin under
// case-insensitive, Unicode-folded comparison.
func (n CaseInsensitiveName) Equal(other CaseInsensitiveName) bool {
	return n.folded == other.folded
}

// EqualString reports whether name equals s under the same comparison
// Equal uses, without requiring the caller to construct a
// CaseInsensitiveName first.
func (n CaseInsensitiveName) EqualString(s string) bool {
	return n.folded == caseFolder.String(s)
}

// IsZero reports whether n is the zero value (never produced by
// NewCaseInsensitiveName).
func (n CaseInsensitiveName) IsZero() bool {
	return n.original == "" && n.folded == ""
}
