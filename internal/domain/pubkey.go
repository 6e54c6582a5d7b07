package domain

import (
	"fmt"

	"github.com/mr-tron/base58"
)

// Pubkey is a 32-byte Solana account identity.
type Pubkey [32]byte

// SystemProgram is the native system program ID. Accounts owned by it
// carry no program data.
var SystemProgram = MustPubkey("11111111111111111111111111111111")

// String returns the base58 text form of the key.
func (p Pubkey) String() string {
	return base58.Encode(p[:])
}

// Bytes returns the raw 32 bytes of the key.
func (p Pubkey) Bytes() []byte {
	return p[:]
}

// IsZero reports whether the key is all zeroes.
func (p Pubkey) IsZero() bool {
	return p == Pubkey{}
}

// PubkeyFromBase58 parses a base58 string into a Pubkey.
func PubkeyFromBase58(s string) (Pubkey, error) {
	raw, err := base58.Decode(s)
	if err != nil {
		return Pubkey{}, fmt.Errorf("decode base58 pubkey %q: %w", s, err)
	}
	if len(raw) != 32 {
		return Pubkey{}, fmt.Errorf("invalid pubkey length %d for %q", len(raw), s)
	}
	var p Pubkey
	copy(p[:], raw)
	return p, nil
}

// MustPubkey parses a base58 string and panics on failure.
// Intended for well-known program IDs declared at package level.
func MustPubkey(s string) Pubkey {
	p, err := PubkeyFromBase58(s)
	if err != nil {
		panic(err)
	}
	return p
}

// PubkeyFromBytes copies a 32-byte slice into a Pubkey.
func PubkeyFromBytes(raw []byte) (Pubkey, error) {
	if len(raw) != 32 {
		return Pubkey{}, fmt.Errorf("invalid pubkey length %d", len(raw))
	}
	var p Pubkey
	copy(p[:], raw)
	return p, nil
}
