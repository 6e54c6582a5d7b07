package solana

import "context"

// RPCClient defines the Solana RPC HTTP interface used by the scanner.
type RPCClient interface {
	// GetProgramAccounts retrieves all accounts owned by a program.
	GetProgramAccounts(ctx context.Context, programID string, opts *ProgramAccountsOpts) ([]KeyedAccount, error)

	// GetMultipleAccounts retrieves up to MaxMultipleAccounts accounts in
	// one call. Missing accounts come back as nil entries.
	GetMultipleAccounts(ctx context.Context, pubkeys []string) ([]*AccountInfo, error)

	// GetAccountInfo retrieves a single account, nil if it does not exist.
	GetAccountInfo(ctx context.Context, pubkey string) (*AccountInfo, error)
}

// ProgramAccountsOpts narrows a getProgramAccounts query.
type ProgramAccountsOpts struct {
	// Memcmp filters match raw bytes at a fixed offset server-side,
	// trimming the response before any decoding happens here.
	Memcmp []MemcmpFilter
	// DataSize filters accounts by exact data length. Zero means no filter.
	DataSize uint64
}

// MemcmpFilter matches base58-encoded bytes at a byte offset.
type MemcmpFilter struct {
	Offset int
	Bytes  string
}

// KeyedAccount pairs an account with its address.
type KeyedAccount struct {
	Pubkey  string
	Account AccountInfo
}
