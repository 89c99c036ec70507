package state

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
)

// DaemonLock is an exclusive file lock ensuring a single tecla daemon per
// lock path. The OS hotkey channel is a per-process resource, so two
// daemons sharing a database would race each other's registrations.
type DaemonLock struct {
	file *os.File
	path string
}

// AcquireDaemonLock takes the lock at path without blocking. It fails when
// another daemon already holds it.
func AcquireDaemonLock(path string) (*DaemonLock, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create lock directory: %w", err)
	}

	file, err := os.OpenFile(path, os.O_CREATE|os.O_RDWR, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open lock file: %w", err)
	}

	if err := tryLockFile(file); err != nil {
		file.Close()
		return nil, fmt.Errorf("another tecla daemon is already running (lock: %s)", path)
	}

	// Record the owner for debugging; the flock is the actual guard
	file.Truncate(0)
	file.Seek(0, 0)
	file.WriteString(strconv.Itoa(os.Getpid()) + "\n")
	file.Sync()

	return &DaemonLock{file: file, path: path}, nil
}

// Release drops the lock and removes the lock file
func (l *DaemonLock) Release() error {
	if l == nil || l.file == nil {
		return nil
	}
	if err := unlockFile(l.file); err != nil {
		l.file.Close()
		return fmt.Errorf("failed to unlock: %w", err)
	}
	if err := l.file.Close(); err != nil {
		return err
	}
	os.Remove(l.path)
	l.file = nil
	return nil
}
