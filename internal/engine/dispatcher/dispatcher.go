// Package dispatcher runs the delegated framework command inside a bottled app.
package dispatcher

import (
	"context"
	"errors"
	"io"
	"strconv"

	"go.trai.ch/bottled/internal/core/domain"
	"go.trai.ch/bottled/internal/core/ports"
	"go.trai.ch/zerr"
)

// Dispatcher runs `npx ember <subcommand>` in the foreground.
type Dispatcher struct {
	executor ports.Executor
	stdout   io.Writer
	stderr   io.Writer
}

// NewDispatcher creates a new Dispatcher writing to stdout and stderr.
func NewDispatcher(executor ports.Executor, stdout, stderr io.Writer) *Dispatcher {
	return &Dispatcher{
		executor: executor,
		stdout:   stdout,
		stderr:   stderr,
	}
}

// Command returns the delegated invocation for opts.
func Command(opts *domain.Options) *domain.Command {
	return &domain.Command{
		Name:        domain.Runner,
		Args:        BuildArgs(opts),
		Dir:         opts.CacheDir(),
		Interactive: true,
	}
}

// BuildArgs returns the argument vector passed to the runner.
func BuildArgs(opts *domain.Options) []string {
	args := []string{
		domain.FrameworkBinary,
		opts.Subcommand(),
		"--output-path", opts.ResolvedOutputPath(),
	}
	if opts.Port != nil {
		args = append(args, "--port="+strconv.Itoa(*opts.Port))
	}
	if opts.Environment != "" {
		args = append(args, "--environment", opts.Environment)
	}
	return args
}

// Dispatch runs the delegated command and waits for it to exit.
// A failing command is reported as domain.ErrDelegatedCommandFailed.
func (d *Dispatcher) Dispatch(ctx context.Context, opts *domain.Options) error {
	cmd := Command(opts)
	if err := d.executor.Execute(ctx, cmd, d.stdout, d.stderr); err != nil {
		return zerr.With(errors.Join(domain.ErrDelegatedCommandFailed, err), "command", cmd.String())
	}
	return nil
}
