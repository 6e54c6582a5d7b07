// Package scan composes the decode/scan/classify pipeline over a fetched
// batch of program accounts and assembles per-account results.
package scan

import (
	"context"
	"fmt"

	"github.com/mr-tron/base58"

	"github.com/Jars1987/token-2022-parser/internal/domain"
	"github.com/Jars1987/token-2022-parser/internal/solana"
	"github.com/Jars1987/token-2022-parser/internal/token2022"
)

// Token2022Program is the SPL Token-2022 program ID.
const Token2022Program = "TokenzQdBNbLqP5VEhdkAS6EPFLC1PHnBqCXEpPxuEb"

// AccountSource supplies the raw accounts owned by the target program.
type AccountSource interface {
	ListAccounts(ctx context.Context) ([]domain.RawAccount, error)
}

// RPCAccountSource lists program accounts over JSON-RPC. A server-side
// memcmp on the is_initialized byte trims obvious non-mints before any
// data crosses the wire; false positives (token accounts with a 1 at that
// offset) survive the filter and surface later as decode failures.
type RPCAccountSource struct {
	rpc     solana.RPCClient
	program string
}

// NewRPCAccountSource creates an account source for the given program.
// An empty program defaults to Token-2022.
func NewRPCAccountSource(rpc solana.RPCClient, program string) *RPCAccountSource {
	if program == "" {
		program = Token2022Program
	}
	return &RPCAccountSource{rpc: rpc, program: program}
}

// ListAccounts fetches all initialized accounts owned by the program.
func (s *RPCAccountSource) ListAccounts(ctx context.Context) ([]domain.RawAccount, error) {
	opts := &solana.ProgramAccountsOpts{
		Memcmp: []solana.MemcmpFilter{
			{
				Offset: token2022.InitializedOffset,
				Bytes:  base58.Encode([]byte{1}),
			},
		},
	}

	keyed, err := s.rpc.GetProgramAccounts(ctx, s.program, opts)
	if err != nil {
		return nil, fmt.Errorf("get program accounts for %s: %w", s.program, err)
	}

	accounts := make([]domain.RawAccount, 0, len(keyed))
	for _, ka := range keyed {
		addr, err := domain.PubkeyFromBase58(ka.Pubkey)
		if err != nil {
			return nil, fmt.Errorf("account %s: %w", ka.Pubkey, err)
		}
		owner, err := domain.PubkeyFromBase58(ka.Account.Owner)
		if err != nil {
			return nil, fmt.Errorf("account %s owner: %w", ka.Pubkey, err)
		}
		data, err := ka.Account.DecodeData()
		if err != nil {
			return nil, fmt.Errorf("account %s: %w", ka.Pubkey, err)
		}
		accounts = append(accounts, domain.RawAccount{
			Address:  addr,
			Owner:    owner,
			Lamports: ka.Account.Lamports,
			Data:     data,
		})
	}

	return accounts, nil
}
