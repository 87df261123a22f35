// Package main is the entry point for bottled.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/grindlemire/graft"
	"go.trai.ch/bottled/cmd/bottled/commands"
	"go.trai.ch/bottled/internal/app"
	"go.trai.ch/bottled/internal/core/domain"
	"go.trai.ch/bottled/internal/core/ports"
	_ "go.trai.ch/bottled/internal/wiring"
)

// ComponentProvider is a function that returns the application components.
type ComponentProvider func(context.Context) (*app.Components, func(), error)

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stderr, func(ctx context.Context) (*app.Components, func(), error) {
		c, _, err := graft.ExecuteFor[*app.Components](ctx)
		return c, func() {}, err
	}))
}

func run(
	ctx context.Context,
	args []string,
	stderr io.Writer,
	provider ComponentProvider,
) int {
	// 0. Context with signal handling
	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// 1. Initialize application components
	components, cleanup, err := provider(ctx)
	if err != nil {
		// Logger is not available yet if initialization failed
		_, _ = fmt.Fprintln(stderr, "Error: "+err.Error())
		return 1
	}
	defer cleanup()

	// 2. Interface - CLI
	cli := commands.New(components.App)
	cli.SetArgs(args)
	cli.SetOutput(os.Stdout, stderr)

	// 3. Execution
	if err := cli.Execute(ctx); err != nil {
		return exitCode(err, components.Logger)
	}
	return 0
}

// exitCode mirrors the delegated command's exit code. Every other failure is
// reported through the logger.
func exitCode(err error, logger ports.Logger) int {
	code, ok := domain.ExitCode(err)
	if errors.Is(err, domain.ErrDelegatedCommandFailed) {
		if ok && code > 0 {
			return code
		}
		return 1
	}

	logger.Error(err)
	if ok && code > 0 {
		return code
	}
	return 1
}
