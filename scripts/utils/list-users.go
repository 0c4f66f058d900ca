//go:build ignore
// +build ignore

// List Registered Users Script
//
// Lists every account with its role and bound wallet. With -promote the given
// email is granted the ADMIN role first.
//
// Usage:
//   go run scripts/utils/list-users.go -config config.yaml
//   go run scripts/utils/list-users.go -config config.yaml -promote admin@example.com

package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/chainsafe/music-marketplace/pkg/config"
	"github.com/chainsafe/music-marketplace/pkg/pgutil"
	"github.com/chainsafe/music-marketplace/pkg/user"
	"github.com/chainsafe/music-marketplace/pkg/userstore"
)

var (
	configPath = flag.String("config", "config.yaml", "Path to config file")
	promote    = flag.String("promote", "", "Email to grant the ADMIN role")
)

func main() {
	flag.Parse()

	cfg, err := config.LoadAPIServer(*configPath)
	if err != nil {
		fmt.Printf("ERROR: Failed to load config: %v\n", err)
		os.Exit(1)
	}

	db, err := pgutil.ConnectDB(&cfg.Database)
	if err != nil {
		fmt.Printf("ERROR: Failed to connect to database: %v\n", err)
		os.Exit(1)
	}
	defer db.Close()

	ctx := context.Background()

	if email := strings.ToLower(strings.TrimSpace(*promote)); email != "" {
		res, err := db.NewUpdate().
			Model((*userstore.UserDao)(nil)).
			Set("role = ?", string(user.RoleAdmin)).
			Set("updated_at = NOW()").
			Where("email = ?", email).
			Exec(ctx)
		if err != nil {
			fmt.Printf("ERROR: Failed to promote %s: %v\n", email, err)
			os.Exit(1)
		}
		if n, _ := res.RowsAffected(); n == 0 {
			fmt.Printf("ERROR: No user with email %s\n", email)
			os.Exit(1)
		}
		fmt.Printf("✓ %s is now ADMIN (sign in again to refresh the token)\n\n", email)
	}

	var users []userstore.UserDao
	if err := db.NewSelect().Model(&users).Order("id ASC").Scan(ctx); err != nil {
		fmt.Printf("ERROR: Failed to get users: %v\n", err)
		os.Exit(1)
	}

	if len(users) == 0 {
		fmt.Println("No registered users found.")
		return
	}

	fmt.Println("══════════════════════════════════════════════════════════════════════")
	fmt.Printf("  Registered Users (%d total)\n", len(users))
	fmt.Println("══════════════════════════════════════════════════════════════════════")
	fmt.Println()

	for i, u := range users {
		fmt.Printf("[%d] %s (%s)\n", i+1, u.Email, u.Role)
		wallet := "(none)"
		if u.WalletAddress != nil {
			wallet = *u.WalletAddress
		}
		fmt.Printf("    Wallet:  %s\n", wallet)
		fmt.Printf("    Created: %s\n", u.CreatedAt.Format("2006-01-02 15:04"))
		fmt.Println()
	}
}
