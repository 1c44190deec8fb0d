// Command bisko computes BISKO greenhouse gas balances.
package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/rshade/bisko/internal/cli"
	"github.com/rshade/bisko/pkg/version"
)

func main() {
	os.Exit(run())
}

func run() int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	root := cli.NewRootCmd(version.GetVersion())
	return extractExitCode(root.ExecuteContext(ctx))
}

// extractExitCode maps a command error to the process exit code: 0 for
// success, the code carried by a DiffExitError, 1 otherwise.
func extractExitCode(err error) int {
	if err == nil {
		return 0
	}
	var diffErr *cli.DiffExitError
	if errors.As(err, &diffErr) {
		return diffErr.ExitCode
	}
	return 1
}
