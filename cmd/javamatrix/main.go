// Package main is the entry point for the javamatrix CLI.
package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/donaldgifford/javamatrix/cmd"
)

// Build-time variables set via ldflags.
var (
	version = "dev"
	commit  = "none"
)

func main() {
	cmd.SetVersionInfo(version, commit)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)

	err := cmd.Execute(ctx)
	stop()

	if err != nil {
		os.Exit(1)
	}
}
