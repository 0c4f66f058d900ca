//go:build ignore
// +build ignore

// This script issues a marketplace session token for local testing.
// Run with: JWT_SECRET=... go run scripts/generate-jwt.go -user 1 -email admin@example.com -role ADMIN

package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/chainsafe/music-marketplace/pkg/auth"
	"github.com/chainsafe/music-marketplace/pkg/user"
)

func main() {
	userID := flag.Int64("user", 1, "User id (sub claim)")
	email := flag.String("email", "admin@example.com", "Account email")
	role := flag.String("role", string(user.RoleAdmin), "Role claim (USER or ADMIN)")
	issuer := flag.String("issuer", "music-marketplace", "Token issuer")
	ttl := flag.Duration("ttl", time.Hour, "Token lifetime")
	flag.Parse()

	secret := os.Getenv("JWT_SECRET")
	if len(secret) < 16 {
		fmt.Fprintln(os.Stderr, "JWT_SECRET must be set to at least 16 characters")
		os.Exit(1)
	}

	token, exp, err := auth.NewTokenManager(secret, *issuer, *ttl).Issue(*userID, *email, *role)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error issuing token: %v\n", err)
		os.Exit(1)
	}

	fmt.Println(token)
	fmt.Fprintf(os.Stderr, "\nExpires: %s\n", exp.Format(time.RFC3339))
	fmt.Fprintf(os.Stderr, "Use with: curl -H \"Authorization: Bearer %s\" ...\n", token)
}
