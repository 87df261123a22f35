package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Command is a subprocess invocation.
type Command struct {
	Name string
	Args []string
	// Dir is the working directory of the subprocess.
	Dir string
	// Env overrides variables of the inherited environment.
	Env map[string]string
	// Interactive commands inherit stdin and write straight to the terminal.
	Interactive bool
}

// String returns the command line.
func (c *Command) String() string {
	return strings.Join(append([]string{c.Name}, c.Args...), " ")
}

// ExitError reports a subprocess that exited with a non-zero status.
type ExitError struct {
	Command string
	Code    int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("%s exited with code %d", e.Command, e.Code)
}

// ExitCode extracts the exit code of the first ExitError in err's chain.
func ExitCode(err error) (int, bool) {
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code, true
	}
	return 0, false
}
