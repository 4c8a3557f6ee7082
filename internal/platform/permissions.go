package platform

import (
	"fmt"
	"os"
	"runtime"
)

// MakeExecutable adds execute permission to path for every class (user,
// group, other) that can read it. os.WriteFile leaves the mode of an existing
// file untouched, so a regenerated script needs this explicitly. On Windows
// this is a no-op.
func MakeExecutable(path string) error {
	if runtime.GOOS == "windows" {
		return nil
	}

	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("stat %s: %w", path, err)
	}

	perm := info.Mode().Perm()
	perm |= (perm & 0444) >> 2
	if err := os.Chmod(path, perm); err != nil {
		return fmt.Errorf("chmod %s: %w", path, err)
	}
	return nil
}
