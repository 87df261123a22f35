package domain_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/bottled/internal/core/domain"
	"go.trai.ch/zerr"
)

func TestParseLink(t *testing.T) {
	tests := []struct {
		in   string
		want domain.Link
	}{
		{in: "app/styles", want: domain.Link{Source: "app/styles", Destination: "app/styles"}},
		{in: "docs:app/templates", want: domain.Link{Source: "docs", Destination: "app/templates"}},
		{in: " public : public/assets ", want: domain.Link{Source: "public", Destination: "public/assets"}},
		{in: "styles:app/./styles/", want: domain.Link{Source: "styles", Destination: "app/styles"}},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := domain.ParseLink(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseLink_Invalid(t *testing.T) {
	for _, in := range []string{"", ":", "src:", ":dest", "src:.", "src:..", "..", "src:../other-cache", "src:app/../..", "src:/etc"} {
		t.Run(in, func(t *testing.T) {
			_, err := domain.ParseLink(in)
			require.Error(t, err)
			assert.True(t, errors.Is(err, domain.ErrInvalidLink))

			var zErr *zerr.Error
			require.ErrorAs(t, err, &zErr)
			assert.Equal(t, in, zErr.Metadata()["link"])
		})
	}
}

func TestIsLocalDestination(t *testing.T) {
	assert.True(t, domain.IsLocalDestination("app/styles"))
	assert.True(t, domain.IsLocalDestination("app/../public"))
	assert.False(t, domain.IsLocalDestination("."))
	assert.False(t, domain.IsLocalDestination("app/.."))
	assert.False(t, domain.IsLocalDestination("../x"))
	assert.False(t, domain.IsLocalDestination("/abs"))
}

func TestParseLinks_KeepsOrder(t *testing.T) {
	links, err := domain.ParseLinks([]string{"b", "a:c"})
	require.NoError(t, err)
	require.Len(t, links, 2)
	assert.Equal(t, "b", links[0].String())
	assert.Equal(t, "a:c", links[1].String())
}

func TestManifest_Missing(t *testing.T) {
	m := &domain.Manifest{Dependencies: map[string]string{"lodash": "^4.0.0", "ember-source": "~5.4.0"}}

	assert.Empty(t, m.Missing([]string{"lodash"}))
	assert.True(t, m.Satisfies([]string{"lodash", "ember-source"}))
	assert.Equal(t, []string{"moment"}, m.Missing([]string{"lodash", "moment"}))

	var empty *domain.Manifest
	assert.Equal(t, []string{"lodash"}, empty.Missing([]string{"lodash"}))
	assert.True(t, empty.Satisfies(nil))
}

func TestExitCode(t *testing.T) {
	err := zerr.Wrap(&domain.ExitError{Command: "npx", Code: 3}, "command failed")

	code, ok := domain.ExitCode(err)
	require.True(t, ok)
	assert.Equal(t, 3, code)

	_, ok = domain.ExitCode(errors.New("plain"))
	assert.False(t, ok)
}
