package token2022

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mintWithTLV builds account data: 82-byte base record, discriminator
// byte, then the given raw TLV bytes.
func mintWithTLV(tlv ...byte) []byte {
	data := make([]byte, MintSize+1, MintSize+1+len(tlv))
	data[MintSize] = AccountTypeMint
	return append(data, tlv...)
}

// tlvEntry encodes one type/length/payload entry.
func tlvEntry(typeCode uint16, payload []byte) []byte {
	entry := make([]byte, 4+len(payload))
	binary.LittleEndian.PutUint16(entry[0:], typeCode)
	binary.LittleEndian.PutUint16(entry[2:], uint16(len(payload)))
	copy(entry[4:], payload)
	return entry
}

func TestScanExtensions_NoRegion(t *testing.T) {
	entries, truncated := ScanExtensions(make([]byte, MintSize))
	assert.Empty(t, entries)
	assert.False(t, truncated)

	entries, truncated = ScanExtensions(nil)
	assert.Empty(t, entries)
	assert.False(t, truncated)
}

func TestScanExtensions_DiscriminatorOnly(t *testing.T) {
	entries, truncated := ScanExtensions(mintWithTLV())
	assert.Empty(t, entries)
	assert.False(t, truncated)
}

func TestScanExtensions_RoundTrip(t *testing.T) {
	payload := []byte{1, 2, 3, 4}
	data := mintWithTLV(append(tlvEntry(1, payload), tlvEntry(7, nil)...)...)

	entries, truncated := ScanExtensions(data)
	require.Len(t, entries, 2)
	assert.False(t, truncated)

	assert.Equal(t, uint16(1), entries[0].Type)
	assert.Equal(t, uint16(4), entries[0].Length)
	assert.Equal(t, payload, entries[0].Payload)

	assert.Equal(t, uint16(7), entries[1].Type)
	assert.Equal(t, uint16(0), entries[1].Length)
	assert.Empty(t, entries[1].Payload)
}

func TestScanExtensions_Truncated(t *testing.T) {
	// Well-formed entry followed by a header claiming 100 payload bytes
	// with only 2 remaining.
	tlv := tlvEntry(1, []byte{9, 9})
	tlv = append(tlv, tlvEntry(14, nil)[:4]...)
	binary.LittleEndian.PutUint16(tlv[len(tlv)-2:], 100)
	tlv = append(tlv, 0, 0)

	entries, truncated := ScanExtensions(mintWithTLV(tlv...))
	require.Len(t, entries, 1)
	assert.True(t, truncated)
	assert.Equal(t, uint16(1), entries[0].Type)
}

func TestScanExtensions_ZeroTypeStops(t *testing.T) {
	// A zero type code halts the walk even with a plausible entry after it.
	tlv := tlvEntry(3, nil)
	tlv = append(tlv, tlvEntry(0, []byte{0xFF, 0xFF})...)
	tlv = append(tlv, tlvEntry(14, nil)...)

	entries, truncated := ScanExtensions(mintWithTLV(tlv...))
	require.Len(t, entries, 1)
	assert.False(t, truncated)
	assert.Equal(t, uint16(3), entries[0].Type)
}

func TestScanExtensions_TrailingPaddingIgnored(t *testing.T) {
	// Fewer than 4 bytes remaining after the last entry is padding.
	tlv := append(tlvEntry(18, []byte{5}), 0, 0, 0)

	entries, truncated := ScanExtensions(mintWithTLV(tlv...))
	require.Len(t, entries, 1)
	assert.False(t, truncated)
}

func TestScanExtensions_Restartable(t *testing.T) {
	data := mintWithTLV(tlvEntry(14, []byte{1, 2})...)

	first, _ := ScanExtensions(data)
	second, _ := ScanExtensions(data)
	assert.Equal(t, first, second)
}

func TestAccountType(t *testing.T) {
	assert.Equal(t, AccountTypeUninitialized, AccountType(make([]byte, MintSize)))
	assert.Equal(t, AccountTypeMint, AccountType(mintWithTLV()))

	data := mintWithTLV()
	data[MintSize] = AccountTypeAccount
	assert.Equal(t, AccountTypeAccount, AccountType(data))
}
