// SPDX-FileCopyrightText: 2025 The Algolab Authors
// SPDX-License-Identifier: EUPL-1.2

// Package main provides the CLI entry point for algolab.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/algolab/algolab/internal/cli"
	"github.com/algolab/algolab/internal/domain"
)

func main() {
	os.Exit(run())
}

func run() int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app := cli.NewCLI()

	if err := app.Run(ctx, os.Args); err != nil {
		exitErr := &domain.ExitError{}
		if errors.As(err, &exitErr) {
			// Error message to stderr only
			fmt.Fprintf(os.Stderr, "%s\n", exitErr.Message)

			return exitErr.Code
		}

		fmt.Fprintf(os.Stderr, "%s\n", domain.FormatErrorMessage(err, app.Verbose()))

		return cli.ExitCode(err)
	}

	return domain.ExitSuccess
}
