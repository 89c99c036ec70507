package state

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAcquireAndReleaseDaemonLock(t *testing.T) {
	path := filepath.Join(t.TempDir(), "daemon.lock")

	lock, err := AcquireDaemonLock(path)
	require.NoError(t, err)
	require.NotNil(t, lock)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	pid, err := strconv.Atoi(strings.TrimSpace(string(data)))
	require.NoError(t, err)
	assert.Equal(t, os.Getpid(), pid, "lock file records the owner pid")

	require.NoError(t, lock.Release())
	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err), "lock file removed on release")
}

func TestSecondAcquireFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "daemon.lock")

	lock, err := AcquireDaemonLock(path)
	require.NoError(t, err)
	defer lock.Release()

	_, err = AcquireDaemonLock(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already running")
}

func TestAcquireAfterRelease(t *testing.T) {
	path := filepath.Join(t.TempDir(), "daemon.lock")

	lock, err := AcquireDaemonLock(path)
	require.NoError(t, err)
	require.NoError(t, lock.Release())

	again, err := AcquireDaemonLock(path)
	require.NoError(t, err)
	require.NoError(t, again.Release())
}

func TestReleaseNil(t *testing.T) {
	var lock *DaemonLock
	assert.NoError(t, lock.Release())
}

func TestAcquireCreatesDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "daemon.lock")

	lock, err := AcquireDaemonLock(path)
	require.NoError(t, err)
	require.NoError(t, lock.Release())
}
