package domain

// ScanResult is the per-account outcome of one scan pass. It is assembled
// once and never mutated afterwards; results are discarded at process exit.
type ScanResult struct {
	Address Pubkey

	// Record is nil when base record decoding failed; DecodeErr then holds
	// the reason so the account is reported as unparseable, not dropped.
	Record    *BaseRecord
	DecodeErr string

	// AccountType is the discriminator byte at offset 82. Zero when the
	// account has no extension region at all.
	AccountType uint8

	// Extensions is the de-duplicated set of detected extensions in
	// first-seen order.
	Extensions []ExtensionKind

	// Truncated marks a TLV header that claimed more payload than the
	// buffer holds. Entries decoded before that point are kept.
	Truncated bool

	// MetadataAddress is the derived metadata PDA, nil when derivation was
	// not requested or found no valid address.
	MetadataAddress *Pubkey
	MetadataBump    uint8

	// MetadataResolved reports whether the derived address holds a live
	// account. Nil when not requested or when the existence lookup failed.
	MetadataResolved *bool
}

// HasExtensions reports whether at least one extension was detected.
func (r ScanResult) HasExtensions() bool {
	return len(r.Extensions) > 0
}
