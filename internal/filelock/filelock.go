// Package filelock guards the load-mutate-save sequence on a state file with
// an advisory lock held on a sibling ".lock" file.
package filelock

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

const lockFileMode = 0o600

// Suffix is appended to a guarded path to name its lock file.
const Suffix = ".lock"

// RetryInterval is how often Acquire retries a lock held by someone else.
var RetryInterval = 10 * time.Millisecond

// PathFor returns the lock file used to guard path.
func PathFor(path string) string {
	return path + Suffix
}

// Acquire takes an exclusive advisory lock guarding path, creating the lock
// file (and its directory) if needed. While another holder has the lock it
// retries until ctx is done, then returns ctx's error.
func Acquire(ctx context.Context, path string, dirPerm os.FileMode) (release func() error, err error) {
	lockPath := PathFor(path)
	if err := os.MkdirAll(filepath.Dir(lockPath), dirPerm); err != nil {
		return nil, fmt.Errorf("creating lock directory: %w", err)
	}

	f, err := os.OpenFile(lockPath, os.O_CREATE|os.O_RDWR, lockFileMode) //nolint:gosec // path comes from configuration
	if err != nil {
		return nil, fmt.Errorf("opening lock file: %w", err)
	}

	if err := waitLock(ctx, f); err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("locking %s: %w", lockPath, err)
	}

	return func() error {
		unlockErr := unlockFile(f)
		closeErr := f.Close()
		if unlockErr != nil {
			return unlockErr
		}
		return closeErr
	}, nil
}

func waitLock(ctx context.Context, f *os.File) error {
	ticker := time.NewTicker(RetryInterval)
	defer ticker.Stop()

	for {
		ok, err := tryLock(f)
		if err != nil || ok {
			return err
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
}
