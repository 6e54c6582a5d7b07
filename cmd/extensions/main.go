// Command extensions lists SPL Token-2022 mints that use token extensions.
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
	all := flag.Bool("all", false, "Include mints without extensions in the output")
	timeout := flag.Duration("timeout", 10*time.Minute, "RPC client timeout")
	flag.Parse()

	logger := log.New(os.Stderr, "[extensions] ", log.LstdFlags)

	outFormat, err := reporting.ParseFormat(*format)
	if err != nil {
		logger.Fatal(err)
	}

	rpc := solana.NewHTTPClient(*rpcEndpoint, solana.WithTimeout(*timeout))

	orchestrator := scan.New(scan.Options{
		Source:  scan.NewRPCAccountSource(rpc, ""),
		Workers: *workers,
		Logger:  logger,
	})

	results, err := orchestrator.Run(context.Background())
	if err != nil {
		logger.Printf("Scan failed: %v", err)
		os.Exit(1)
	}

	if !*all {
		results = reporting.WithExtensions(results)
	}

	if len(results) == 0 {
		fmt.Println("No mint accounts with token extensions found.")
		return
	}

	out, err := reporting.Render(results, outFormat)
	if err != nil {
		logger.Printf("Render failed: %v", err)
		os.Exit(1)
	}
	fmt.Print(out)
}
