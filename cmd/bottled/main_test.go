package main

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/bottled/internal/app"
	"go.trai.ch/bottled/internal/core/domain"
	"go.trai.ch/bottled/internal/core/ports/mocks"
	"go.trai.ch/bottled/internal/engine/dispatcher"
	"go.trai.ch/bottled/internal/engine/reconciler"
	"go.trai.ch/bottled/internal/engine/scaffold"
	"go.uber.org/mock/gomock"
)

type testMocks struct {
	loader   *mocks.MockConfigLoader
	executor *mocks.MockExecutor
	logger   *mocks.MockLogger
}

func newTestApp(t *testing.T) (*app.App, testMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)
	m := testMocks{
		loader:   mocks.NewMockConfigLoader(ctrl),
		executor: mocks.NewMockExecutor(ctrl),
		logger:   mocks.NewMockLogger(ctrl),
	}
	store := mocks.NewMockCacheInfoStore(ctrl)
	hasher := mocks.NewMockHasher(ctrl)
	packages := mocks.NewMockPackageManager(ctrl)

	application := app.New(
		m.loader,
		mocks.NewMockLocker(ctrl),
		store,
		hasher,
		scaffold.NewBuilder(mocks.NewMockGenerator(ctrl), packages, mocks.NewMockCustomizer(ctrl), hasher, store, m.logger),
		reconciler.NewDependencyReconciler(mocks.NewMockManifestReader(ctrl), packages, m.logger),
		reconciler.NewLinkReconciler(m.logger),
		dispatcher.NewDispatcher(m.executor, nil, nil),
		m.logger,
	)
	return application, m
}

func providerFor(a *app.App, logger *mocks.MockLogger) ComponentProvider {
	return func(context.Context) (*app.Components, func(), error) {
		return &app.Components{App: a, Logger: logger}, func() {}, nil
	}
}

// existingCache returns options whose cache directory already exists.
func existingCache(t *testing.T) *domain.Options {
	t.Helper()
	opts := &domain.Options{
		InvokerDir:   t.TempDir(),
		EmberVersion: "latest",
		CacheName:    "default",
		CacheRoot:    t.TempDir(),
	}
	if err := os.MkdirAll(opts.CacheDir(), 0o750); err != nil {
		t.Fatalf("failed to create cache: %v", err)
	}
	return opts
}

// TestRun_Success verifies that the run function returns 0 when the command succeeds.
func TestRun_Success(t *testing.T) {
	application, m := newTestApp(t)

	stderr := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"--version"}, stderr, providerFor(application, m.logger))
	assert.Equal(t, 0, exitCode)
}

// TestRun_InitializationError verifies that run returns 1 when component initialization fails.
func TestRun_InitializationError(t *testing.T) {
	provider := func(_ context.Context) (*app.Components, func(), error) {
		return nil, nil, errors.New("init failed")
	}

	stderr := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"--version"}, stderr, provider)

	assert.Equal(t, 1, exitCode)
	assert.Contains(t, stderr.String(), "Error: init failed")
}

// TestRun_ExecutionError verifies that setup failures are logged and exit with 1.
func TestRun_ExecutionError(t *testing.T) {
	application, m := newTestApp(t)

	m.loader.EXPECT().Load(gomock.Any(), gomock.Any()).Return(nil, domain.ErrInvalidPort)
	m.logger.EXPECT().Error(gomock.Any()).Times(1)

	exitCode := run(context.Background(), []string{"serve"}, io.Discard, providerFor(application, m.logger))
	assert.Equal(t, 1, exitCode)
}

// TestRun_DelegatedExitCode verifies that the delegated command's exit code is mirrored silently.
func TestRun_DelegatedExitCode(t *testing.T) {
	application, m := newTestApp(t)
	opts := existingCache(t)

	m.loader.EXPECT().Load(gomock.Any(), gomock.Any()).Return(opts, nil)
	m.logger.EXPECT().Info("re-using existing bottled app")
	m.logger.EXPECT().Error(gomock.Any()).Times(0)
	m.executor.EXPECT().Execute(gomock.Any(), gomock.Any(), nil, nil).
		Return(&domain.ExitError{Command: "npx ember test", Code: 3})

	exitCode := run(context.Background(), []string{"test"}, io.Discard, providerFor(application, m.logger))
	assert.Equal(t, 3, exitCode)
}

// TestRun_Signal verifies that the context is canceled on signal.
func TestRun_Signal(t *testing.T) {
	application, m := newTestApp(t)
	opts := existingCache(t)

	m.loader.EXPECT().Load(gomock.Any(), gomock.Any()).Return(opts, nil)
	m.logger.EXPECT().Info(gomock.Any()).AnyTimes()
	m.logger.EXPECT().Error(gomock.Any()).AnyTimes()
	m.executor.EXPECT().Execute(gomock.Any(), gomock.Any(), nil, nil).DoAndReturn(
		func(ctx context.Context, _ *domain.Command, _, _ io.Writer) error {
			select {
			case <-ctx.Done():
				return &domain.ExitError{Command: "npx ember serve", Code: 130}
			case <-time.After(5 * time.Second):
				return errors.New("timeout in mock")
			}
		})

	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan int)

	go func() {
		errCh <- run(ctx, []string{"serve"}, io.Discard, providerFor(application, m.logger))
	}()

	// Wait a bit to ensure run() reaches Execute()
	time.Sleep(100 * time.Millisecond)
	cancel()

	select {
	case ret := <-errCh:
		assert.Equal(t, 130, ret)
	case <-time.After(2 * time.Second):
		t.Fatal("TestRun_Signal timed out waiting for run() to return")
	}
}
