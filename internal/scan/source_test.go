package scan

import (
	"context"
	"encoding/base64"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Jars1987/token-2022-parser/internal/solana"
	"github.com/Jars1987/token-2022-parser/internal/token2022"
)

func TestListAccounts_FiltersOnInitializedByte(t *testing.T) {
	data := mintData(18)
	rpc := &fakeRPC{program: func(programID string, opts *solana.ProgramAccountsOpts) ([]solana.KeyedAccount, error) {
		assert.Equal(t, Token2022Program, programID)
		require.NotNil(t, opts)
		require.Len(t, opts.Memcmp, 1)
		assert.Equal(t, token2022.InitializedOffset, opts.Memcmp[0].Offset)
		// base58 of the single byte 0x01
		assert.Equal(t, "2", opts.Memcmp[0].Bytes)

		return []solana.KeyedAccount{
			{
				Pubkey: testKey(7).String(),
				Account: solana.AccountInfo{
					Lamports: 2_000_000,
					Owner:    Token2022Program,
					Data:     base64.StdEncoding.EncodeToString(data),
				},
			},
		}, nil
	}}

	source := NewRPCAccountSource(rpc, "")
	accounts, err := source.ListAccounts(context.Background())
	require.NoError(t, err)
	require.Len(t, accounts, 1)

	assert.Equal(t, testKey(7), accounts[0].Address)
	assert.Equal(t, Token2022Program, accounts[0].Owner.String())
	assert.Equal(t, uint64(2_000_000), accounts[0].Lamports)
	assert.Equal(t, data, accounts[0].Data)
}

func TestListAccounts_RPCFailure(t *testing.T) {
	boom := errors.New("rpc down")
	rpc := &fakeRPC{program: func(string, *solana.ProgramAccountsOpts) ([]solana.KeyedAccount, error) {
		return nil, boom
	}}

	source := NewRPCAccountSource(rpc, "")
	_, err := source.ListAccounts(context.Background())
	assert.ErrorIs(t, err, boom)
}

func TestListAccounts_BadPubkey(t *testing.T) {
	rpc := &fakeRPC{program: func(string, *solana.ProgramAccountsOpts) ([]solana.KeyedAccount, error) {
		return []solana.KeyedAccount{{Pubkey: "!!!"}}, nil
	}}

	source := NewRPCAccountSource(rpc, "")
	_, err := source.ListAccounts(context.Background())
	assert.Error(t, err)
}
