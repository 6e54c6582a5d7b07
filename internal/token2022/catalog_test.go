package token2022

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify_KnownCodes(t *testing.T) {
	cases := map[uint16]string{
		1:  "TransferFeeConfig",
		7:  "ImmutableOwner",
		14: "TransferHook",
		18: "MetadataPointer",
		19: "TokenMetadata",
		27: "PausableAccount",
	}
	for code, name := range cases {
		kind := Classify(code)
		assert.Equal(t, code, kind.Code)
		assert.Equal(t, name, kind.Name)
		assert.True(t, kind.Known())
		assert.Equal(t, name, kind.String())
	}
}

func TestClassify_UnknownCodes(t *testing.T) {
	for _, code := range []uint16{0, 28, 999, 65535} {
		kind := Classify(code)
		assert.Equal(t, code, kind.Code)
		assert.False(t, kind.Known())
		assert.Equal(t, fmt.Sprintf("Unrecognized(%d)", code), kind.String())
	}
}

func TestClassify_Total(t *testing.T) {
	// Every possible type code classifies without panicking and carries
	// its code through.
	for code := 0; code <= 65535; code++ {
		kind := Classify(uint16(code))
		if kind.Code != uint16(code) {
			t.Fatalf("code %d mangled to %d", code, kind.Code)
		}
	}
}
