//go:build ignore
// +build ignore

// Reconcile Script
//
// Rewrites the cached listing state of every NFT from the marketplace contract.
//
// Usage:
//   go run scripts/utils/reconcile.go -config config.yaml

package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/chainsafe/music-marketplace/pkg/config"
	"github.com/chainsafe/music-marketplace/pkg/ethereum"
	"github.com/chainsafe/music-marketplace/pkg/nftstore"
	"github.com/chainsafe/music-marketplace/pkg/pgutil"
	"github.com/chainsafe/music-marketplace/pkg/reconciler"
)

var (
	configPath = flag.String("config", "config.yaml", "Path to config file")
	timeout    = flag.Duration("timeout", 5*time.Minute, "Run timeout")
	verbose    = flag.Bool("verbose", false, "Show detailed output")
)

func main() {
	flag.Parse()

	cfg, err := config.LoadAPIServer(*configPath)
	if err != nil {
		fmt.Printf("ERROR: Failed to load config: %v\n", err)
		os.Exit(1)
	}
	if !cfg.Ethereum.Enabled() {
		fmt.Println("ERROR: ethereum.rpc_url is not configured")
		os.Exit(1)
	}

	fmt.Println("══════════════════════════════════════════════════════════════════════")
	fmt.Printf("  Listing Reconciliation - %s\n", detectNetwork(cfg.Ethereum.ChainID))
	fmt.Println("══════════════════════════════════════════════════════════════════════")
	fmt.Println()
	fmt.Printf("  Config:      %s\n", *configPath)
	fmt.Printf("  Marketplace: %s\n", cfg.Ethereum.MarketplaceAddress)
	fmt.Printf("  Database:    %s\n", cfg.Database.Database)
	fmt.Println()

	var logger *zap.Logger
	if *verbose {
		logger, _ = zap.NewDevelopment()
	} else {
		logConfig := zap.NewProductionConfig()
		logConfig.Level = zap.NewAtomicLevelAt(zap.ErrorLevel)
		logger, _ = logConfig.Build()
	}

	fmt.Println(">>> Connecting to Ethereum RPC...")
	chain, err := ethereum.NewClient(&cfg.Ethereum, logger)
	if err != nil {
		fmt.Printf("ERROR: Failed to connect to RPC: %v\n", err)
		os.Exit(1)
	}
	defer chain.Close()
	fmt.Println("    ✓ Connected")

	fmt.Println(">>> Connecting to database...")
	db, err := pgutil.ConnectDB(&cfg.Database)
	if err != nil {
		fmt.Printf("ERROR: Failed to connect to database: %v\n", err)
		os.Exit(1)
	}
	defer db.Close()
	fmt.Println("    ✓ Connected")
	fmt.Println()

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	rec := reconciler.New(nftstore.NewStore(db), chain, cfg.Reconciliation.BatchSize, logger)
	res, err := rec.ReconcileAll(ctx)
	if err != nil {
		fmt.Printf("ERROR: Reconciliation failed: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("══════════════════════════════════════════════════════════════════════")
	fmt.Printf("  Checked:   %d\n", res.Checked)
	fmt.Printf("  Corrected: %d\n", res.Corrected)
	fmt.Printf("  Failed:    %d\n", res.Failed)
	fmt.Println("══════════════════════════════════════════════════════════════════════")
	if res.Failed > 0 {
		fmt.Println("  Some records could not be read; they will be retried on the next run.")
		os.Exit(1)
	}
}

func detectNetwork(chainID int64) string {
	switch chainID {
	case 1:
		return "MAINNET"
	case 11155111:
		return "SEPOLIA"
	case 31337, 1337:
		return "LOCAL"
	default:
		return strings.ToUpper(fmt.Sprintf("chain %d", chainID))
	}
}
