// Package shell provides an os/exec based executor for subprocesses.
package shell

import (
	"bytes"
	"context"
	"errors"
	"io"
	"maps"
	"os"
	"os/exec"
	"path/filepath"
	"slices"
	"strings"

	"go.trai.ch/bottled/internal/core/domain"
	"go.trai.ch/bottled/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Executor = (*Executor)(nil)

// Executor implements ports.Executor using os/exec.
type Executor struct {
	logger ports.Logger
}

// NewExecutor creates a new Executor.
func NewExecutor(logger ports.Logger) *Executor {
	return &Executor{
		logger: logger,
	}
}

// Execute runs the command and waits for it to complete.
// Cancelling ctx interrupts the process and kills it after domain.InterruptGracePeriod.
func (e *Executor) Execute(ctx context.Context, cmd *domain.Command, stdout, stderr io.Writer) error {
	if cmd == nil || cmd.Name == "" {
		return nil
	}

	env := resolveEnvironment(os.Environ(), cmd.Env)

	executable := cmd.Name
	if !filepath.IsAbs(executable) {
		if lp, err := lookPath(executable, env); err == nil {
			executable = lp
		}
	}

	c := exec.CommandContext(ctx, executable, cmd.Args...) //nolint:gosec // commands are built by the engine
	c.Args[0] = cmd.Name
	c.Dir = cmd.Dir
	c.Env = env
	c.Cancel = func() error {
		return c.Process.Signal(os.Interrupt)
	}
	c.WaitDelay = domain.InterruptGracePeriod

	if cmd.Interactive {
		c.Stdin = os.Stdin
		c.Stdout = writerOr(stdout, os.Stdout)
		c.Stderr = writerOr(stderr, os.Stderr)
	} else {
		stdoutLog := &logWriter{logger: e.logger, level: levelInfo}
		stderrLog := &logWriter{logger: e.logger, level: levelWarn}
		defer func() {
			_ = stdoutLog.Close()
			_ = stderrLog.Close()
		}()
		c.Stdout = teeWriter(stdoutLog, stdout)
		c.Stderr = teeWriter(stderrLog, stderr)
	}

	if err := c.Run(); err != nil {
		return wrapRunError(cmd, err)
	}
	return nil
}

func wrapRunError(cmd *domain.Command, err error) error {
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		code := exitErr.ExitCode()
		wrapped := zerr.Wrap(&domain.ExitError{Command: cmd.Name, Code: code}, "command failed")
		wrapped = zerr.With(wrapped, "command", cmd.String())
		return zerr.With(wrapped, "exit_code", code)
	}
	return zerr.With(zerr.Wrap(err, domain.ErrCommandStartFailed.Error()), "command", cmd.String())
}

func writerOr(w, fallback io.Writer) io.Writer {
	if w == nil {
		return fallback
	}
	return w
}

func teeWriter(log *logWriter, w io.Writer) io.Writer {
	if w == nil {
		return log
	}
	return io.MultiWriter(log, w)
}

type logLevel int

const (
	levelInfo logLevel = iota
	levelWarn
)

// logWriter forwards complete lines to the logger.
type logWriter struct {
	logger ports.Logger
	level  logLevel
	buf    []byte
}

func (w *logWriter) Write(p []byte) (n int, err error) {
	w.buf = append(w.buf, p...)

	for {
		i := bytes.IndexByte(w.buf, '\n')
		if i < 0 {
			break
		}

		w.logLine(w.buf[:i])
		w.buf = w.buf[i+1:]
	}

	return len(p), nil
}

// Close flushes a trailing line without newline.
func (w *logWriter) Close() error {
	if len(w.buf) > 0 {
		w.logLine(w.buf)
		w.buf = nil
	}
	return nil
}

func (w *logWriter) logLine(line []byte) {
	msg := strings.TrimSuffix(string(line), "\r")
	if strings.TrimSpace(msg) == "" {
		return
	}

	if w.level == levelInfo {
		w.logger.Info(msg)
	} else {
		w.logger.Warn(msg)
	}
}

// resolveEnvironment applies the command's overrides on top of the full inherited environment.
func resolveEnvironment(sysEnv []string, overrides map[string]string) []string {
	envMap := make(map[string]string, len(sysEnv)+len(overrides))
	for _, entry := range sysEnv {
		if k, v, ok := strings.Cut(entry, "="); ok {
			envMap[k] = v
		}
	}
	maps.Copy(envMap, overrides)

	result := make([]string, 0, len(envMap))
	for k, v := range envMap {
		result = append(result, k+"="+v)
	}
	slices.Sort(result)
	return result
}

// lookPath searches for an executable in the PATH of the given environment.
func lookPath(file string, env []string) (string, error) {
	var path string
	for _, e := range env {
		if v, ok := strings.CutPrefix(e, "PATH="); ok {
			path = v
			break
		}
	}

	if path == "" {
		return "", exec.ErrNotFound
	}

	for _, dir := range filepath.SplitList(path) {
		if dir == "" {
			// Unix shell semantics: path element "" means "."
			dir = "."
		}
		candidate := filepath.Join(dir, file)
		if err := findExecutable(candidate); err == nil {
			return candidate, nil
		}
	}
	return "", exec.ErrNotFound
}

func findExecutable(file string) error {
	d, err := os.Stat(file)
	if err != nil {
		return err
	}
	if m := d.Mode(); !m.IsDir() && m&0o111 != 0 {
		return nil
	}
	return os.ErrPermission
}
