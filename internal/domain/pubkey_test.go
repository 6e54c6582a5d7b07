package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPubkey_Base58RoundTrip(t *testing.T) {
	const text = "TokenzQdBNbLqP5VEhdkAS6EPFLC1PHnBqCXEpPxuEb"

	p, err := PubkeyFromBase58(text)
	require.NoError(t, err)
	assert.Equal(t, text, p.String())
	assert.False(t, p.IsZero())

	back, err := PubkeyFromBytes(p.Bytes())
	require.NoError(t, err)
	assert.Equal(t, p, back)
}

func TestPubkeyFromBase58_Invalid(t *testing.T) {
	_, err := PubkeyFromBase58("not base58 !!!")
	assert.Error(t, err)

	// Valid base58 but wrong decoded length.
	_, err = PubkeyFromBase58("abc")
	assert.Error(t, err)
}

func TestPubkeyFromBytes_WrongLength(t *testing.T) {
	_, err := PubkeyFromBytes(make([]byte, 31))
	assert.Error(t, err)
	_, err = PubkeyFromBytes(make([]byte, 33))
	assert.Error(t, err)
}

func TestPubkey_IsZero(t *testing.T) {
	var zero Pubkey
	assert.True(t, zero.IsZero())

	// The system program ID is the base58 spelling of 32 zero bytes.
	assert.True(t, SystemProgram.IsZero())

	nonzero := MustPubkey("TokenzQdBNbLqP5VEhdkAS6EPFLC1PHnBqCXEpPxuEb")
	assert.False(t, nonzero.IsZero())
}

func TestMustPubkey_PanicsOnBadInput(t *testing.T) {
	assert.Panics(t, func() { MustPubkey("bogus") })
}
