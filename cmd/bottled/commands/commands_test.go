package commands_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/bottled/cmd/bottled/commands"
	"go.trai.ch/bottled/internal/build"
	"go.trai.ch/bottled/internal/core/domain"
)

type mockApp struct {
	runFunc    func(ctx context.Context, cwd string, overrides domain.Overrides) error
	cleanFunc  func(ctx context.Context, cwd string, overrides domain.Overrides, all bool) error
	configFunc func(cwd string, overrides domain.Overrides, w io.Writer) error
}

func (m *mockApp) Run(ctx context.Context, cwd string, overrides domain.Overrides) error {
	if m.runFunc != nil {
		return m.runFunc(ctx, cwd, overrides)
	}
	return nil
}

func (m *mockApp) Clean(ctx context.Context, cwd string, overrides domain.Overrides, all bool) error {
	if m.cleanFunc != nil {
		return m.cleanFunc(ctx, cwd, overrides, all)
	}
	return nil
}

func (m *mockApp) Config(cwd string, overrides domain.Overrides, w io.Writer) error {
	if m.configFunc != nil {
		return m.configFunc(cwd, overrides, w)
	}
	return nil
}

func newCLI(a commands.Application, args ...string) *commands.CLI {
	cli := commands.New(a)
	cli.SetWorkingDir("/work/addon")
	cli.SetArgs(args)
	cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))
	return cli
}

func TestCommands_Run(t *testing.T) {
	t.Run("defaults to no overrides", func(t *testing.T) {
		var captured domain.Overrides
		var capturedCwd string
		mock := &mockApp{
			runFunc: func(_ context.Context, cwd string, overrides domain.Overrides) error {
				capturedCwd = cwd
				captured = overrides
				return nil
			},
		}

		require.NoError(t, newCLI(mock).Execute(context.Background()))
		assert.Equal(t, "/work/addon", capturedCwd)
		assert.Equal(t, domain.Overrides{}, captured)
	})

	t.Run("wires flags correctly", func(t *testing.T) {
		var captured domain.Overrides
		mock := &mockApp{
			runFunc: func(_ context.Context, _ string, overrides domain.Overrides) error {
				captured = overrides
				return nil
			},
		}

		cli := newCLI(mock,
			"build",
			"--ember-version", "5.4",
			"--cache-name", "docs",
			"--dep", "lodash,moment",
			"--dep", "dayjs",
			"--link", "app/styles",
			"--link", "docs:app/templates/docs",
			"--port", "0",
			"-e", "production",
			"--fingerprint",
			"-c", "ci.yaml",
		)
		require.NoError(t, cli.Execute(context.Background()))

		assert.Equal(t, "build", captured.Command)
		assert.Equal(t, "ci.yaml", captured.ConfigPath)
		require.NotNil(t, captured.EmberVersion)
		assert.Equal(t, "5.4", *captured.EmberVersion)
		require.NotNil(t, captured.CacheName)
		assert.Equal(t, "docs", *captured.CacheName)
		assert.Equal(t, []string{"lodash", "moment", "dayjs"}, captured.Deps)
		assert.Equal(t, []string{"app/styles", "docs:app/templates/docs"}, captured.Links)
		require.NotNil(t, captured.Port)
		assert.Equal(t, 0, *captured.Port)
		require.NotNil(t, captured.Environment)
		assert.Equal(t, "production", *captured.Environment)
		require.NotNil(t, captured.Fingerprint)
		assert.True(t, *captured.Fingerprint)
		assert.Nil(t, captured.Lock)
		assert.Nil(t, captured.OutputPath)
	})

	t.Run("rejects extra positional arguments", func(t *testing.T) {
		mock := &mockApp{
			runFunc: func(context.Context, string, domain.Overrides) error {
				panic("should not be called")
			},
		}

		err := newCLI(mock, "serve", "extra").Execute(context.Background())
		require.Error(t, err)
	})

	t.Run("returns error on run failure", func(t *testing.T) {
		mock := &mockApp{
			runFunc: func(context.Context, string, domain.Overrides) error {
				return errors.New("simulated error")
			},
		}

		err := newCLI(mock, "serve").Execute(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "simulated error")
	})
}

func TestCommands_Clean(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantAll bool
	}{
		{name: "current cache", args: []string{"clean"}},
		{name: "all caches", args: []string{"clean", "--all"}, wantAll: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			called := false
			mock := &mockApp{
				cleanFunc: func(_ context.Context, cwd string, overrides domain.Overrides, all bool) error {
					called = true
					assert.Equal(t, "/work/addon", cwd)
					assert.Equal(t, tt.wantAll, all)
					require.NotNil(t, overrides.CacheName)
					assert.Equal(t, "docs", *overrides.CacheName)
					return nil
				},
			}

			args := append(tt.args, "--cache-name", "docs")
			require.NoError(t, newCLI(mock, args...).Execute(context.Background()))
			assert.True(t, called)
		})
	}
}

func TestCommands_Config(t *testing.T) {
	mock := &mockApp{
		configFunc: func(_ string, _ domain.Overrides, w io.Writer) error {
			_, err := io.WriteString(w, "ember_version: latest\n")
			return err
		},
	}

	cli := commands.New(mock)
	cli.SetWorkingDir("/work/addon")
	buf := new(bytes.Buffer)
	cli.SetOutput(buf, buf)
	cli.SetArgs([]string{"config"})

	require.NoError(t, cli.Execute(context.Background()))
	assert.Equal(t, "ember_version: latest\n", buf.String())
}

func TestCommands_Version(t *testing.T) {
	cli := commands.New(&mockApp{})

	buf := new(bytes.Buffer)
	cli.SetOutput(buf, buf)
	cli.SetArgs([]string{"--version"})

	require.NoError(t, cli.Execute(context.Background()))
	assert.Contains(t, buf.String(), build.Version)
	assert.Contains(t, buf.String(), build.Commit)
}
