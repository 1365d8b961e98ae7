package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/taibogaston/frontendchat/internal/client/cli"
	"github.com/taibogaston/frontendchat/internal/client/config"
	"github.com/taibogaston/frontendchat/internal/client/iocli"
)

var (
	// Version information set via ldflags during build
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load("")
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	version := cli.VersionInfo{Version: Version, BuildDate: BuildDate, GitCommit: GitCommit}
	return cli.Execute(ctx, cfg, iocli.NewStdio(), os.Stderr, version, os.Args[1:])
}
