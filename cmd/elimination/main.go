// elimination reports which teams of a division can no longer finish first.
//
// Usage:
//
//	elimination run [file...]          analyze divisions from files or stdin
//	elimination batch <dir>            analyze every *.txt file in dir, timing each
//
// Common flags:
//
//	--config <file.yaml>  --algorithm edmonds-karp|ford-fulkerson|dinic
//	--parallel N  --certificates  --strict  --format ascii|markdown|plain
//	--log-level debug|info|warn|error  --log-format text|json  --verbose-flow
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
)

func main() {
	os.Exit(run())
}

func run() int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "elimination:", err)
		return 1
	}
	return 0
}
