//go:build ignore

// This script mints the service token the gateway sends to the backend API
// on behalf of a Telegram user.
// Run with: go run scripts/generate-jwt.go -config config.yaml -user 42

package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/fineai/miniapp-gateway/pkg/backend"
	"github.com/fineai/miniapp-gateway/pkg/config"
)

func main() {
	cfgPath := flag.String("config", "config.yaml", "Path to configuration file")
	userID := flag.Int64("user", 0, "Telegram user id (token subject)")
	flag.Parse()

	if *userID <= 0 {
		fmt.Fprintln(os.Stderr, "-user is required")
		os.Exit(2)
	}

	cfg, err := config.LoadGateway(*cfgPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	tokens := backend.NewServiceTokenSource(cfg.Backend.JWTSecret, cfg.Backend.JWTIssuer, cfg.Backend.TokenTTL)
	token, err := tokens.Token(*userID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to sign token: %v\n", err)
		os.Exit(1)
	}

	fmt.Println(token)
}
