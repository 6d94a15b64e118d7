package utils

import (
	"fmt"
	"io"
	"os"
)

// SpoolToTempFile writes r to a fresh temp file matching pattern and returns
// its path together with a cleanup func that removes the file. cleanup is
// safe to call exactly once and must be called on every exit path.
func SpoolToTempFile(r io.Reader, pattern string) (string, func(), error) {
	f, err := os.CreateTemp("", pattern)
	if err != nil {
		return "", nil, fmt.Errorf("failed to create temp file: %v", err)
	}

	path := f.Name()
	cleanup := func() { os.Remove(path) }

	if _, err := io.Copy(f, r); err != nil {
		f.Close()
		cleanup()
		return "", nil, fmt.Errorf("failed to write temp file: %v", err)
	}
	if err := f.Close(); err != nil {
		cleanup()
		return "", nil, fmt.Errorf("failed to close temp file: %v", err)
	}

	return path, cleanup, nil
}
