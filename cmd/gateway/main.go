package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/fineai/miniapp-gateway/pkg/app"
	"github.com/fineai/miniapp-gateway/pkg/app/gateway"
	"github.com/fineai/miniapp-gateway/pkg/config"
)

func main() {
	configPath := flag.String("config", "config.yaml", "Path to configuration file")
	flag.Parse()

	cfg, err := config.LoadGateway(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	var runner app.Runner = gateway.NewServer(cfg)
	if err := runner.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Gateway stopped with error: %v\n", err)
		os.Exit(1)
	}
}
