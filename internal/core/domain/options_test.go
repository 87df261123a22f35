package domain_test

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/bottled/internal/core/domain"
)

func newOptions(t *testing.T) *domain.Options {
	t.Helper()
	return &domain.Options{
		InvokerDir:   "/work/addon",
		EmberVersion: "5.4",
		CacheName:    "default",
		CacheRoot:    "/cache/bottled",
	}
}

func TestOptions_CacheKey_Deterministic(t *testing.T) {
	a := newOptions(t)
	b := newOptions(t)

	assert.Equal(t, a.CacheKey(), b.CacheKey())
	assert.Equal(t, "5.4-default", a.CacheKey())
	assert.Equal(t, filepath.Join("/cache/bottled", "5.4-default"), a.CacheDir())
}

func TestOptions_CacheKey_Sanitized(t *testing.T) {
	opts := newOptions(t)
	opts.EmberVersion = "~5.4.0"
	opts.CacheName = "my/cache name"

	assert.Equal(t, "-5.4.0-my-cache-name", opts.CacheKey())
	assert.Equal(t, "/cache/bottled", filepath.Dir(opts.CacheDir()))
}

func TestOptions_CacheKey_DiffersByInput(t *testing.T) {
	a := newOptions(t)
	b := newOptions(t)
	b.CacheName = "docs"

	assert.NotEqual(t, a.CacheKey(), b.CacheKey())
}

func TestOptions_SiblingPaths(t *testing.T) {
	opts := newOptions(t)

	assert.Equal(t, "/cache/bottled/5.4-default.lock", opts.LockPath())
	assert.Equal(t, "/cache/bottled/.5.4-default.staging-abc", opts.StagingDir("abc"))
}

func TestOptions_ResolvedOutputPath(t *testing.T) {
	tests := []struct {
		name       string
		outputPath string
		want       string
	}{
		{name: "default", outputPath: "", want: "/work/addon/dist"},
		{name: "relative", outputPath: "build/out", want: "/work/addon/build/out"},
		{name: "absolute", outputPath: "/tmp/out/", want: "/tmp/out"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := newOptions(t)
			opts.OutputPath = tt.outputPath
			assert.Equal(t, tt.want, opts.ResolvedOutputPath())
		})
	}
}

func TestOptions_Subcommand(t *testing.T) {
	opts := newOptions(t)
	assert.Equal(t, "serve", opts.Subcommand())

	opts.Command = "try:each"
	assert.Equal(t, "try:each", opts.Subcommand())
}

func TestOptions_Validate(t *testing.T) {
	port := func(p int) *int { return &p }

	tests := []struct {
		name    string
		mutate  func(o *domain.Options)
		wantErr error
	}{
		{name: "valid", mutate: func(*domain.Options) {}},
		{name: "port zero", mutate: func(o *domain.Options) { o.Port = port(0) }},
		{name: "relative invoker", mutate: func(o *domain.Options) { o.InvokerDir = "addon" }, wantErr: domain.ErrMissingInvokerDir},
		{name: "empty cache name", mutate: func(o *domain.Options) { o.CacheName = " " }, wantErr: domain.ErrInvalidCacheName},
		{name: "negative port", mutate: func(o *domain.Options) { o.Port = port(-1) }, wantErr: domain.ErrInvalidPort},
		{name: "port too large", mutate: func(o *domain.Options) { o.Port = port(70000) }, wantErr: domain.ErrInvalidPort},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := newOptions(t)
			tt.mutate(opts)

			err := opts.Validate()
			if tt.wantErr == nil {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.wantErr), "expected %v, got %v", tt.wantErr, err)
		})
	}
}
