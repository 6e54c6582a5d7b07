package scan

import (
	"context"
	"fmt"
	"log"
	"runtime"
	"sync"

	"github.com/Jars1987/token-2022-parser/internal/domain"
	"github.com/Jars1987/token-2022-parser/internal/pda"
	"github.com/Jars1987/token-2022-parser/internal/token2022"
)

// Orchestrator runs the per-account pipeline: decode base record, scan the
// TLV region, classify extensions, and optionally derive and resolve the
// metadata address. Accounts are independent, so the pipeline fans out over
// a bounded worker pool and results are written back by input index,
// preserving input order.
type Orchestrator struct {
	source       AccountSource
	resolver     MetadataResolver
	workers      int
	wantMetadata bool
	logger       *log.Logger
}

// Options for creating Orchestrator.
type Options struct {
	// Source supplies the raw account batch. Required.
	Source AccountSource

	// Resolver checks derived metadata addresses for existence. Required
	// when WantMetadata is set.
	Resolver MetadataResolver

	// WantMetadata enables metadata PDA derivation and resolution.
	WantMetadata bool

	// Workers bounds the scan pool. Zero means available parallelism.
	Workers int

	Logger *log.Logger
}

// New creates a new Orchestrator.
func New(opts Options) *Orchestrator {
	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}

	return &Orchestrator{
		source:       opts.Source,
		resolver:     opts.Resolver,
		workers:      workers,
		wantMetadata: opts.WantMetadata,
		logger:       logger,
	}
}

// Run fetches the account batch and scans it. Per-account anomalies are
// absorbed into that account's result; only a failed batch fetch aborts
// the run. The result order matches the fetched account order.
func (o *Orchestrator) Run(ctx context.Context) ([]domain.ScanResult, error) {
	accounts, err := o.source.ListAccounts(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch account list: %w", err)
	}
	o.logger.Printf("Fetched %d accounts", len(accounts))

	results := o.ScanBatch(accounts)

	if o.wantMetadata {
		o.resolveMetadata(ctx, results)
	}

	return results, nil
}

// ScanBatch scans already-fetched accounts across the worker pool. Results
// are indexed by input position, so order is stable regardless of which
// worker finishes first.
func (o *Orchestrator) ScanBatch(accounts []domain.RawAccount) []domain.ScanResult {
	results := make([]domain.ScanResult, len(accounts))

	jobs := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < o.workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				results[i] = ScanAccount(accounts[i])
			}
		}()
	}

	for i := range accounts {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	return results
}

// ScanAccount runs the pure pipeline for a single account: base record
// decode, TLV scan, extension classification. Never fails; anomalies are
// recorded in the result.
func ScanAccount(account domain.RawAccount) domain.ScanResult {
	result := domain.ScanResult{Address: account.Address}

	record, err := token2022.DecodeMint(account.Data)
	if err != nil {
		result.DecodeErr = err.Error()
	} else {
		result.Record = &record
	}

	result.AccountType = token2022.AccountType(account.Data)
	if result.AccountType != token2022.AccountTypeMint &&
		result.AccountType != token2022.AccountTypeUninitialized {
		// Unknown or non-mint discriminator: the TLV region is not ours to
		// interpret. Note the value and report no extensions.
		return result
	}

	entries, truncated := token2022.ScanExtensions(account.Data)
	result.Truncated = truncated

	seen := make(map[uint16]struct{}, len(entries))
	for _, entry := range entries {
		if _, dup := seen[entry.Type]; dup {
			continue
		}
		seen[entry.Type] = struct{}{}
		result.Extensions = append(result.Extensions, token2022.Classify(entry.Type))
	}

	return result
}

// resolveMetadata derives the metadata PDA for every result and asks the
// resolver which derived addresses hold live accounts. Derivation misses
// and lookup failures leave the optional fields unset.
func (o *Orchestrator) resolveMetadata(ctx context.Context, results []domain.ScanResult) {
	addrs := make([]domain.Pubkey, 0, len(results))
	indexes := make([]int, 0, len(results))

	for i := range results {
		derived, bump, err := pda.MetadataAddress(results[i].Address)
		if err != nil {
			// Bump space exhausted: expected for some keys, not an error.
			continue
		}
		results[i].MetadataAddress = &derived
		results[i].MetadataBump = bump
		addrs = append(addrs, derived)
		indexes = append(indexes, i)
	}

	if len(addrs) == 0 {
		return
	}

	resolved := o.resolver.Exists(ctx, addrs)
	for j, idx := range indexes {
		results[idx].MetadataResolved = resolved[j]
	}
}
