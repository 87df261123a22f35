package reconciler_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/bottled/internal/core/domain"
	"go.trai.ch/bottled/internal/core/ports/mocks"
	"go.trai.ch/bottled/internal/engine/reconciler"
	"go.uber.org/mock/gomock"
)

type depsMocks struct {
	manifests *mocks.MockManifestReader
	packages  *mocks.MockPackageManager
	logger    *mocks.MockLogger
}

func newDependencyReconciler(t *testing.T) (*reconciler.DependencyReconciler, depsMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)
	m := depsMocks{
		manifests: mocks.NewMockManifestReader(ctrl),
		packages:  mocks.NewMockPackageManager(ctrl),
		logger:    mocks.NewMockLogger(ctrl),
	}
	return reconciler.NewDependencyReconciler(m.manifests, m.packages, m.logger), m
}

func depsOptions(deps ...string) *domain.Options {
	return &domain.Options{
		InvokerDir:   "/work/addon",
		EmberVersion: "latest",
		CacheName:    "default",
		CacheRoot:    "/cache",
		Deps:         deps,
	}
}

func TestDependencyReconciler_NoDeps(t *testing.T) {
	r, _ := newDependencyReconciler(t)
	require.NoError(t, r.Reconcile(context.Background(), depsOptions()))
}

func TestDependencyReconciler_AllSatisfied(t *testing.T) {
	r, m := newDependencyReconciler(t)
	opts := depsOptions("lodash", "moment")

	m.manifests.EXPECT().Read("/cache/latest-default").Return(&domain.Manifest{
		Dependencies: map[string]string{"lodash": "^1.0.0", "moment": "2.0.0"},
	}, nil)
	m.logger.EXPECT().Info("keeping existing deps")

	require.NoError(t, r.Reconcile(context.Background(), opts))
}

func TestDependencyReconciler_InstallsFullSet(t *testing.T) {
	r, m := newDependencyReconciler(t)
	opts := depsOptions("lodash", "moment")

	m.manifests.EXPECT().Read("/cache/latest-default").Return(&domain.Manifest{
		Dependencies: map[string]string{"lodash": "^4.17.21"},
	}, nil)
	gomock.InOrder(
		m.logger.EXPECT().Info("installing your personal dependencies"),
		m.packages.EXPECT().Add(gomock.Any(), "/cache/latest-default", []string{"lodash", "moment"}).Return(nil),
		m.logger.EXPECT().Info("finished installing your personal dependencies"),
	)

	require.NoError(t, r.Reconcile(context.Background(), opts))
}

func TestDependencyReconciler_DevDependencyIsMissing(t *testing.T) {
	r, m := newDependencyReconciler(t)
	opts := depsOptions("ember-cli")

	m.manifests.EXPECT().Read(gomock.Any()).Return(&domain.Manifest{
		DevDependencies: map[string]string{"ember-cli": "~5.4.0"},
	}, nil)
	m.logger.EXPECT().Info(gomock.Any()).Times(2)
	m.packages.EXPECT().Add(gomock.Any(), gomock.Any(), []string{"ember-cli"}).Return(nil)

	require.NoError(t, r.Reconcile(context.Background(), opts))
}

func TestDependencyReconciler_InstallFailure(t *testing.T) {
	r, m := newDependencyReconciler(t)
	opts := depsOptions("lodash")
	exitErr := &domain.ExitError{Command: "npx --yes pnpm install lodash", Code: 1}

	m.manifests.EXPECT().Read(gomock.Any()).Return(&domain.Manifest{}, nil)
	m.logger.EXPECT().Info("installing your personal dependencies")
	m.packages.EXPECT().Add(gomock.Any(), gomock.Any(), []string{"lodash"}).Return(exitErr)

	err := r.Reconcile(context.Background(), opts)
	require.Error(t, err)
	assert.Contains(t, err.Error(), domain.ErrDependencyInstallFailed.Error())
	assert.ErrorIs(t, err, exitErr)
}

func TestDependencyReconciler_ManifestFailure(t *testing.T) {
	r, m := newDependencyReconciler(t)
	readErr := domain.ErrManifestParseFailed

	m.manifests.EXPECT().Read(gomock.Any()).Return(nil, readErr)

	err := r.Reconcile(context.Background(), depsOptions("lodash"))
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrManifestParseFailed)
}
