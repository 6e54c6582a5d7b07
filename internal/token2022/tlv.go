package token2022

import "encoding/binary"

// Account type discriminator values at offset 82.
const (
	AccountTypeUninitialized uint8 = 0
	AccountTypeMint          uint8 = 1
	AccountTypeAccount       uint8 = 2
)

// TLV region layout after the base record: one discriminator byte at
// offset 82, then entries of u16 LE type + u16 LE length + payload.
const (
	tlvStart      = MintSize + 1
	tlvHeaderSize = 4
)

// ExtensionEntry is one decoded TLV entry. Payload always holds exactly
// Length bytes and lies entirely within the source buffer.
type ExtensionEntry struct {
	Type    uint16
	Length  uint16
	Payload []byte
}

// AccountType returns the discriminator byte at offset 82, or
// AccountTypeUninitialized when the data carries no extension region.
func AccountType(data []byte) uint8 {
	if len(data) <= MintSize {
		return AccountTypeUninitialized
	}
	return data[MintSize]
}

// ScanExtensions walks the TLV region after the base record and returns the
// decoded entries in buffer order. The second result reports truncation: a
// header declared more payload than the buffer holds. Entries decoded
// before the truncation point are still returned.
//
// Iteration stops silently on a zero type code (the uninitialized/padding
// marker) and when fewer than a full header remains; both are the normal
// padding pattern of over-allocated accounts, not errors. The scan is a
// pure function of its input and can be re-run on the same buffer with
// identical results.
func ScanExtensions(data []byte) ([]ExtensionEntry, bool) {
	if len(data) <= MintSize {
		return nil, false
	}

	var entries []ExtensionEntry
	cursor := tlvStart

	for {
		if cursor+tlvHeaderSize > len(data) {
			// Remaining bytes are padding.
			return entries, false
		}

		typeCode := binary.LittleEndian.Uint16(data[cursor:])
		if typeCode == 0 {
			return entries, false
		}

		length := binary.LittleEndian.Uint16(data[cursor+2:])
		payloadStart := cursor + tlvHeaderSize
		payloadEnd := payloadStart + int(length)
		if payloadEnd > len(data) {
			return entries, true
		}

		entries = append(entries, ExtensionEntry{
			Type:    typeCode,
			Length:  length,
			Payload: data[payloadStart:payloadEnd],
		})
		cursor = payloadEnd
	}
}
