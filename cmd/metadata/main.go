// Command metadata lists SPL Token-2022 mints whose derived Metaplex
// metadata address resolves to a live on-chain account.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/Jars1987/token-2022-parser/internal/reporting"
	"github.com/Jars1987/token-2022-parser/internal/scan"
	"github.com/Jars1987/token-2022-parser/internal/solana"
)

// DefaultRPCEndpoint is the Solana Devnet RPC URL.
const DefaultRPCEndpoint = "https://api.devnet.solana.com"

func main() {
	rpcEndpoint := flag.String("rpc-endpoint", DefaultRPCEndpoint, "Solana RPC HTTP endpoint")
	format := flag.String("format", "text", "Output format: text, json or csv")
	workers := flag.Int("workers", 0, "Scan worker count (0 = available parallelism)")
	lookupWorkers := flag.Int("lookup-workers", 4, "Concurrent metadata existence lookups")
	timeout := flag.Duration("timeout", 10*time.Minute, "RPC client timeout")
	flag.Parse()

	logger := log.New(os.Stderr, "[metadata] ", log.LstdFlags)

	outFormat, err := reporting.ParseFormat(*format)
	if err != nil {
		logger.Fatal(err)
	}

	rpc := solana.NewHTTPClient(*rpcEndpoint, solana.WithTimeout(*timeout))

	orchestrator := scan.New(scan.Options{
		Source:       scan.NewRPCAccountSource(rpc, ""),
		Resolver:     scan.NewRPCMetadataResolver(rpc, *lookupWorkers, logger),
		WantMetadata: true,
		Workers:      *workers,
		Logger:       logger,
	})

	results, err := orchestrator.Run(context.Background())
	if err != nil {
		logger.Printf("Scan failed: %v", err)
		os.Exit(1)
	}

	resolved := reporting.WithResolvedMetadata(results)
	logger.Printf("%d of %d mints have a live metadata account", len(resolved), len(results))

	if len(resolved) == 0 {
		fmt.Println("No mint accounts with a resolvable metadata address found.")
		return
	}

	var out string
	if outFormat == reporting.FormatText {
		out = reporting.RenderMetadataText(resolved)
	} else {
		out, err = reporting.Render(resolved, outFormat)
		if err != nil {
			logger.Printf("Render failed: %v", err)
			os.Exit(1)
		}
	}
	fmt.Print(out)
}
