// SPDX-License-Identifier: MIT

// Command lvlump computes exact constrained lumpings of polynomial ODE models.
//
//	lvlump reduce model.yaml
//	lvlump reduce --constraint "{S0}" --format yaml network.yaml
//	lvlump inspect model.yaml
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}
