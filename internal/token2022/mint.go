// Package token2022 decodes SPL Token-2022 mint accounts: the fixed-width
// base record and the TLV extension region appended after it.
package token2022

import (
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/Jars1987/token-2022-parser/internal/domain"
)

// MintSize is the byte length of the base mint record. Account data shorter
// than this cannot be a mint.
const MintSize = 82

// Base record field offsets. The layout is a fixed contract with the
// on-chain program:
// mint_authority COption tag(4) + key(32) | supply u64 | decimals u8 |
// is_initialized u8 | freeze_authority COption tag(4) + key(32).
const (
	mintAuthorityTagOffset   = 0
	mintAuthorityKeyOffset   = 4
	supplyOffset             = 36
	decimalsOffset           = 44
	initializedOffset        = 45
	freezeAuthorityTagOffset = 46
	freezeAuthorityKeyOffset = 50
)

// InitializedOffset is the byte offset of the is_initialized flag, exposed
// for the server-side memcmp pre-filter on getProgramAccounts.
const InitializedOffset = initializedOffset

var (
	// ErrTooShort means the account data is shorter than the base record.
	ErrTooShort = errors.New("account data shorter than mint record")
	// ErrBadOptionTag means an authority presence tag was neither 0 nor 1.
	ErrBadOptionTag = errors.New("invalid authority option tag")
	// ErrBadInitFlag means the is_initialized byte was neither 0 nor 1.
	ErrBadInitFlag = errors.New("invalid initialized flag")
)

// DecodeMint decodes the 82-byte base mint record from the start of raw
// account data. It is a pure function of its input and never reads past
// the buffer end.
func DecodeMint(data []byte) (domain.BaseRecord, error) {
	var rec domain.BaseRecord

	if len(data) < MintSize {
		return rec, fmt.Errorf("%w: %d bytes", ErrTooShort, len(data))
	}

	mintAuthority, err := decodeOptionKey(data, mintAuthorityTagOffset, mintAuthorityKeyOffset)
	if err != nil {
		return rec, fmt.Errorf("mint authority: %w", err)
	}

	freezeAuthority, err := decodeOptionKey(data, freezeAuthorityTagOffset, freezeAuthorityKeyOffset)
	if err != nil {
		return rec, fmt.Errorf("freeze authority: %w", err)
	}

	initialized, err := decodeBool(data[initializedOffset])
	if err != nil {
		return rec, err
	}

	rec.MintAuthority = mintAuthority
	rec.Supply = binary.LittleEndian.Uint64(data[supplyOffset:])
	rec.Decimals = data[decimalsOffset]
	rec.IsInitialized = initialized
	rec.FreezeAuthority = freezeAuthority
	return rec, nil
}

// decodeOptionKey reads a COption<Pubkey>: a 4-byte little-endian presence
// tag followed by 32 key bytes. Tag 0 decodes to nil so an absent authority
// is never conflated with the zero key.
func decodeOptionKey(data []byte, tagOffset, keyOffset int) (*domain.Pubkey, error) {
	switch tag := binary.LittleEndian.Uint32(data[tagOffset:]); tag {
	case 0:
		return nil, nil
	case 1:
		key, err := domain.PubkeyFromBytes(data[keyOffset : keyOffset+32])
		if err != nil {
			return nil, err
		}
		return &key, nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrBadOptionTag, tag)
	}
}

func decodeBool(b byte) (bool, error) {
	switch b {
	case 0:
		return false, nil
	case 1:
		return true, nil
	default:
		return false, fmt.Errorf("%w: %d", ErrBadInitFlag, b)
	}
}
