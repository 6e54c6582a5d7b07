package pda

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Jars1987/token-2022-parser/internal/domain"
)

func TestFindProgramAddress_Deterministic(t *testing.T) {
	seeds := [][]byte{[]byte("metadata"), bytes.Repeat([]byte{7}, 32)}

	addr1, bump1, err := FindProgramAddress(seeds, MetadataProgram)
	require.NoError(t, err)
	addr2, bump2, err := FindProgramAddress(seeds, MetadataProgram)
	require.NoError(t, err)

	assert.Equal(t, addr1, addr2)
	assert.Equal(t, bump1, bump2)
	assert.Greater(t, bump1, uint8(0))
	assert.False(t, addr1.IsZero())
}

func TestFindProgramAddress_SeedsChangeAddress(t *testing.T) {
	addrA, _, err := FindProgramAddress([][]byte{[]byte("alpha")}, MetadataProgram)
	require.NoError(t, err)
	addrB, _, err := FindProgramAddress([][]byte{[]byte("beta")}, MetadataProgram)
	require.NoError(t, err)

	assert.NotEqual(t, addrA, addrB)
}

func TestFindProgramAddress_SeedTooLong(t *testing.T) {
	seeds := [][]byte{bytes.Repeat([]byte{1}, 33)}
	_, _, err := FindProgramAddress(seeds, MetadataProgram)
	assert.Error(t, err)
}

func TestFindProgramAddress_TooManySeeds(t *testing.T) {
	seeds := make([][]byte, 17)
	for i := range seeds {
		seeds[i] = []byte{byte(i)}
	}
	_, _, err := FindProgramAddress(seeds, MetadataProgram)
	assert.Error(t, err)
}

func TestFindProgramAddress_OffCurve(t *testing.T) {
	addr, _, err := FindProgramAddress([][]byte{[]byte("offcurve")}, MetadataProgram)
	require.NoError(t, err)

	// The returned address must not decode to a curve point.
	assert.False(t, isOnCurve(addr.Bytes()))
}

func TestMetadataAddress_StablePerMint(t *testing.T) {
	var mint domain.Pubkey
	copy(mint[:], bytes.Repeat([]byte{0xAB}, 32))

	addr1, bump1, err := MetadataAddress(mint)
	require.NoError(t, err)
	addr2, bump2, err := MetadataAddress(mint)
	require.NoError(t, err)

	assert.Equal(t, addr1, addr2)
	assert.Equal(t, bump1, bump2)

	var other domain.Pubkey
	copy(other[:], bytes.Repeat([]byte{0xCD}, 32))
	addr3, _, err := MetadataAddress(other)
	require.NoError(t, err)
	assert.NotEqual(t, addr1, addr3)
}
