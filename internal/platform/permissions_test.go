package platform

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

func TestMakeExecutable(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("permission bits are not supported on Windows")
	}

	tests := []struct {
		name string
		mode os.FileMode
		want os.FileMode
	}{
		{"world readable", 0644, 0755},
		{"owner only", 0600, 0700},
		{"group readable", 0640, 0750},
		{"already executable", 0755, 0755},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "deploy.sh")
			if err := os.WriteFile(path, []byte("#!/bin/bash\n"), 0600); err != nil {
				t.Fatal(err)
			}
			// Set the mode explicitly so the umask does not interfere.
			if err := os.Chmod(path, tt.mode); err != nil {
				t.Fatal(err)
			}

			if err := MakeExecutable(path); err != nil {
				t.Fatalf("MakeExecutable failed: %v", err)
			}

			info, err := os.Stat(path)
			if err != nil {
				t.Fatal(err)
			}
			if perm := info.Mode().Perm(); perm != tt.want {
				t.Errorf("permissions = %o, want %o", perm, tt.want)
			}
		})
	}
}

func TestMakeExecutableMissingFile(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("no-op on Windows")
	}
	if err := MakeExecutable(filepath.Join(t.TempDir(), "missing.sh")); err == nil {
		t.Fatal("expected error for missing file")
	}
}
