package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/peter88213/aeon3md/cmd"
	"github.com/peter88213/aeon3md/internal/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var settings cli.Settings
	if err := cmd.RootCommand(&settings).ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}
