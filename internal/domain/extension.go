package domain

import "fmt"

// ExtensionKind identifies one token extension detected on an account.
// Codes absent from the catalog keep their numeric code and an empty name,
// so new on-chain extension types are surfaced rather than dropped.
type ExtensionKind struct {
	Code uint16
	Name string
}

// Known reports whether the kind was present in the catalog.
func (k ExtensionKind) Known() bool {
	return k.Name != ""
}

// String returns the extension name, or Unrecognized(code) for codes the
// catalog does not know.
func (k ExtensionKind) String() string {
	if k.Name != "" {
		return k.Name
	}
	return fmt.Sprintf("Unrecognized(%d)", k.Code)
}
