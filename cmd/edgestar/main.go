// Command edgestar searches least-cost paths in graphs stored as YAML files
// or in SQLite databases, with edge costs that may depend on the previous
// edge of the path.
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
		fmt.Fprintln(os.Stderr, "edgestar:", err)
		stop()
		os.Exit(1)
	}
}
