// Package domain defines the data model shared across the scanner:
// account identities, the decoded mint base record, extension kinds and
// per-account scan results.
package domain

// RawAccount is an immutable snapshot of an on-chain account at fetch time.
type RawAccount struct {
	Address  Pubkey
	Owner    Pubkey
	Lamports uint64
	Data     []byte
}

// BaseRecord is the fixed-width mint record decoded from the first 82 bytes
// of account data. Absent authorities are nil, never zero-filled keys.
type BaseRecord struct {
	MintAuthority   *Pubkey
	Supply          uint64
	Decimals        uint8
	IsInitialized   bool
	FreezeAuthority *Pubkey
}
