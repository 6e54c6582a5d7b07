// Command watch subscribes to Token-2022 account updates and scans each
// changed account as it arrives, exporting Prometheus metrics.
package main

import (
	"context"
	"encoding/base64"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Jars1987/token-2022-parser/internal/domain"
	"github.com/Jars1987/token-2022-parser/internal/observability"
	"github.com/Jars1987/token-2022-parser/internal/scan"
	"github.com/Jars1987/token-2022-parser/internal/solana"
)

func main() {
	wsEndpoint := flag.String("ws-endpoint", "wss://api.devnet.solana.com", "Solana WebSocket endpoint")
	rpcEndpoint := flag.String("rpc-endpoint", "https://api.devnet.solana.com", "Solana RPC HTTP endpoint (startup liveness check)")
	program := flag.String("program", scan.Token2022Program, "Program ID to watch")
	metricsAddr := flag.String("metrics-addr", ":9090", "Prometheus metrics HTTP address (empty to disable)")
	flag.Parse()

	logger := log.New(os.Stdout, "[watch] ", log.LstdFlags)

	// Start metrics server if enabled
	metrics := observability.NewMetrics("")
	if *metricsAddr != "" {
		go func() {
			mux := http.NewServeMux()
			mux.Handle("/metrics", observability.Handler())
			mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusOK)
				w.Write([]byte("ok"))
			})
			logger.Printf("Starting metrics server on %s", *metricsAddr)
			if err := http.ListenAndServe(*metricsAddr, mux); err != nil && err != http.ErrServerClosed {
				logger.Printf("Metrics server error: %v", err)
			}
		}()
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle shutdown signals
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		logger.Printf("Received signal %v, shutting down...", sig)
		cancel()
	}()

	// Liveness check before subscribing
	rpc := solana.NewHTTPClient(*rpcEndpoint, solana.WithTimeout(30*time.Second))
	slot, err := rpc.GetSlot(ctx)
	if err != nil {
		logger.Fatalf("RPC endpoint unreachable: %v", err)
	}
	logger.Printf("Connected, current slot %d", slot)

	ws, err := solana.NewWSClient(ctx, *wsEndpoint, nil)
	if err != nil {
		logger.Fatalf("WebSocket connect failed: %v", err)
	}
	defer ws.Close()

	updates, err := ws.SubscribeProgram(ctx, *program)
	if err != nil {
		logger.Fatalf("Subscribe failed: %v", err)
	}
	logger.Printf("Subscribed to program %s", *program)

	for {
		select {
		case <-ctx.Done():
			return
		case notif, ok := <-updates:
			if !ok {
				return
			}
			metrics.NotificationsReceived.Inc()
			metrics.HighestSlotSeen.Set(float64(notif.Slot))
			handleUpdate(logger, metrics, notif)
		}
	}
}

// handleUpdate decodes and scans one changed account, logging what it found.
func handleUpdate(logger *log.Logger, metrics *observability.Metrics, notif solana.AccountNotification) {
	addr, err := domain.PubkeyFromBase58(notif.Pubkey)
	if err != nil {
		logger.Printf("Bad pubkey in notification: %v", err)
		return
	}
	owner, err := domain.PubkeyFromBase58(notif.Owner)
	if err != nil {
		logger.Printf("Bad owner in notification for %s: %v", notif.Pubkey, err)
		return
	}
	data, err := base64.StdEncoding.DecodeString(notif.Data)
	if err != nil {
		logger.Printf("Bad account data for %s: %v", notif.Pubkey, err)
		return
	}

	start := time.Now()
	result := scan.ScanAccount(domain.RawAccount{
		Address:  addr,
		Owner:    owner,
		Lamports: notif.Lamports,
		Data:     data,
	})
	metrics.ScanLatency.Observe(time.Since(start).Seconds())
	metrics.ObserveResult(result)

	switch {
	case result.DecodeErr != "":
		logger.Printf("slot=%d mint=%s unparseable: %s", notif.Slot, result.Address, result.DecodeErr)
	case result.HasExtensions():
		names := make([]string, 0, len(result.Extensions))
		for _, ext := range result.Extensions {
			names = append(names, ext.String())
		}
		logger.Printf("slot=%d mint=%s extensions=%v truncated=%t", notif.Slot, result.Address, names, result.Truncated)
	default:
		logger.Printf("slot=%d mint=%s no extensions", notif.Slot, result.Address)
	}
}
