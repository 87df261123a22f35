package lock_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/bottled/internal/adapters/lock"
	"go.trai.ch/bottled/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func TestLocker_LockUnlock(t *testing.T) {
	ctrl := gomock.NewController(t)
	logger := mocks.NewMockLogger(ctrl)

	path := filepath.Join(t.TempDir(), "nested", "latest-default.lock")
	locker := lock.NewLocker(logger)

	unlock, err := locker.Lock(context.Background(), path)
	require.NoError(t, err)
	assert.FileExists(t, path)
	require.NoError(t, unlock())

	unlock, err = locker.Lock(context.Background(), path)
	require.NoError(t, err)
	require.NoError(t, unlock())
}

func TestLocker_WaitsForHolder(t *testing.T) {
	ctrl := gomock.NewController(t)
	logger := mocks.NewMockLogger(ctrl)
	logger.EXPECT().Info("waiting for another bottled process to finish setup")

	path := filepath.Join(t.TempDir(), "latest-default.lock")
	locker := lock.NewLocker(logger)

	unlock, err := locker.Lock(context.Background(), path)
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err = locker.Lock(ctx, path)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.DeadlineExceeded)

	require.NoError(t, unlock())
}

func TestLocker_AcquiresAfterRelease(t *testing.T) {
	ctrl := gomock.NewController(t)
	logger := mocks.NewMockLogger(ctrl)
	logger.EXPECT().Info(gomock.Any()).AnyTimes()

	path := filepath.Join(t.TempDir(), "latest-default.lock")
	locker := lock.NewLocker(logger)

	unlock, err := locker.Lock(context.Background(), path)
	require.NoError(t, err)

	go func() {
		time.Sleep(50 * time.Millisecond)
		_ = unlock()
	}()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	second, err := locker.Lock(ctx, path)
	require.NoError(t, err)
	require.NoError(t, second())
}
