package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	// Extraction is quick, but honor interrupts cleanly anyway.
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}
