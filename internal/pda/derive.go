// Package pda derives program addresses: deterministic, keyless addresses
// computed from seeds and a program ID.
package pda

import (
	"crypto/sha256"
	"errors"
	"fmt"

	"filippo.io/edwards25519"

	"github.com/Jars1987/token-2022-parser/internal/domain"
)

// MetadataProgram is the Metaplex Token Metadata program ID.
var MetadataProgram = domain.MustPubkey("metaqbxxUerdq28cj1RbAWkYQm3ybzjb6a8bt518x1s")

const (
	// derivedAddressMarker is appended to the hash input so PDAs can never
	// collide with addresses derived any other way.
	derivedAddressMarker = "ProgramDerivedAddress"

	maxSeedLen = 32
	maxSeeds   = 16
)

// ErrNotFound means the bump space was exhausted without landing on an
// off-curve address. An expected outcome for some seed sets, not a bug.
var ErrNotFound = errors.New("pda: no off-curve address for seeds")

// FindProgramAddress searches bump seeds 255 down to 1 and returns the
// first derived address that falls off the ed25519 curve, together with
// the bump that produced it. Deterministic: the same seeds and program ID
// always yield the same address and bump.
func FindProgramAddress(seeds [][]byte, programID domain.Pubkey) (domain.Pubkey, uint8, error) {
	if len(seeds) > maxSeeds {
		return domain.Pubkey{}, 0, fmt.Errorf("pda: too many seeds: %d", len(seeds))
	}
	for i, seed := range seeds {
		if len(seed) > maxSeedLen {
			return domain.Pubkey{}, 0, fmt.Errorf("pda: seed %d exceeds %d bytes", i, maxSeedLen)
		}
	}

	for bump := uint8(255); bump > 0; bump-- {
		buf := make([]byte, 0, 128)
		for _, seed := range seeds {
			buf = append(buf, seed...)
		}
		buf = append(buf, bump)
		buf = append(buf, programID.Bytes()...)
		buf = append(buf, derivedAddressMarker...)

		hash := sha256.Sum256(buf)
		if !isOnCurve(hash[:]) {
			addr, err := domain.PubkeyFromBytes(hash[:])
			if err != nil {
				return domain.Pubkey{}, 0, err
			}
			return addr, bump, nil
		}
	}

	return domain.Pubkey{}, 0, ErrNotFound
}

// MetadataAddress derives the Metaplex metadata PDA for a mint. The seeds
// are the fixed "metadata" prefix, the metadata program ID and the mint.
func MetadataAddress(mint domain.Pubkey) (domain.Pubkey, uint8, error) {
	seeds := [][]byte{
		[]byte("metadata"),
		MetadataProgram.Bytes(),
		mint.Bytes(),
	}
	return FindProgramAddress(seeds, MetadataProgram)
}

// isOnCurve reports whether the bytes decode to a valid ed25519 point.
// Valid points have private keys and therefore cannot be PDAs.
func isOnCurve(point []byte) bool {
	if len(point) != 32 {
		return false
	}
	_, err := new(edwards25519.Point).SetBytes(point)
	return err == nil
}
