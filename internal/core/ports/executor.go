// Package ports defines the core interfaces for the application.
package ports

import (
	"context"
	"io"

	"go.trai.ch/bottled/internal/core/domain"
)

// Executor defines the interface for running subprocesses.
//
//go:generate mockgen -source=executor.go -destination=mocks/mock_executor.go -package=mocks
type Executor interface {
	// Execute runs the command and waits for it to exit.
	//
	// Non-interactive commands have their output streamed into the logger in
	// addition to stdout and stderr, which may be nil. Interactive commands
	// inherit stdin and write to stdout and stderr untouched.
	//
	// A non-zero exit is reported as an error wrapping *domain.ExitError.
	Execute(ctx context.Context, cmd *domain.Command, stdout, stderr io.Writer) error
}
