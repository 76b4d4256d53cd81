package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/registry-ops/endpointctl/pkg/cli"
)

func main() {
	if err := cli.New().Run(context.Background(), os.Args); err != nil {
		slog.Error("endpointctl failed", "error", err)
		os.Exit(1)
	}
}
