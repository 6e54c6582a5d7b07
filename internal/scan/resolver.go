package scan

import (
	"context"
	"log"
	"sync"

	"github.com/Jars1987/token-2022-parser/internal/domain"
	"github.com/Jars1987/token-2022-parser/internal/solana"
)

// MetadataResolver reports whether derived metadata addresses hold live
// on-chain accounts. The result slice is aligned with the input; a nil
// entry means the lookup for that address failed and nothing is known.
type MetadataResolver interface {
	Exists(ctx context.Context, addrs []domain.Pubkey) []*bool
}

// RPCMetadataResolver resolves existence through chunked
// getMultipleAccounts calls, fanned out over a bounded pool. A chunk that
// fails leaves its addresses unresolved without affecting other chunks.
type RPCMetadataResolver struct {
	rpc     solana.RPCClient
	workers int
	logger  *log.Logger
}

// NewRPCMetadataResolver creates a resolver. Workers bounds concurrent
// chunk fetches; zero means 4.
func NewRPCMetadataResolver(rpc solana.RPCClient, workers int, logger *log.Logger) *RPCMetadataResolver {
	if workers <= 0 {
		workers = 4
	}
	if logger == nil {
		logger = log.Default()
	}
	return &RPCMetadataResolver{rpc: rpc, workers: workers, logger: logger}
}

// Exists checks each address for a live account. Accounts that exist but
// are dead husks (zero lamports, empty data, or owned by the system
// program after a close) count as not resolved.
func (r *RPCMetadataResolver) Exists(ctx context.Context, addrs []domain.Pubkey) []*bool {
	results := make([]*bool, len(addrs))

	type chunk struct {
		start int
		keys  []string
	}

	var chunks []chunk
	for start := 0; start < len(addrs); start += solana.MaxMultipleAccounts {
		end := start + solana.MaxMultipleAccounts
		if end > len(addrs) {
			end = len(addrs)
		}
		keys := make([]string, 0, end-start)
		for _, a := range addrs[start:end] {
			keys = append(keys, a.String())
		}
		chunks = append(chunks, chunk{start: start, keys: keys})
	}

	jobs := make(chan chunk)
	var wg sync.WaitGroup
	for w := 0; w < r.workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for c := range jobs {
				infos, err := r.rpc.GetMultipleAccounts(ctx, c.keys)
				if err != nil {
					// Leave this chunk unresolved; the batch goes on.
					r.logger.Printf("[resolver] getMultipleAccounts failed for %d keys: %v", len(c.keys), err)
					continue
				}
				for i, info := range infos {
					alive := isLiveAccount(info)
					results[c.start+i] = &alive
				}
			}
		}()
	}

	for _, c := range chunks {
		jobs <- c
	}
	close(jobs)
	wg.Wait()

	return results
}

// isLiveAccount filters out missing accounts and closed-but-cached husks.
func isLiveAccount(info *solana.AccountInfo) bool {
	if info == nil {
		return false
	}
	if info.Lamports == 0 || info.Data == "" {
		return false
	}
	return info.Owner != domain.SystemProgram.String()
}
