package adapters

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"mytargets/helpers"
	"mytargets/interfaces"
	"mytargets/service"
)

const (
	manifestDirPerm  os.FileMode = 0o755
	manifestFilePerm os.FileMode = 0o644
)

// ManifestFile creates an interfaces.ManifestStore backed by the file at path.
// Writes go to a temporary file in the same directory which is then renamed over path,
// so a reader (Prometheus file_sd) sees either the old or the new content, never a partial one.
// Panics on empty path.
func ManifestFile(path string) interfaces.ManifestStore {
	return &manifestFile{path: helpers.StrPanic(path, "adapters.manifest_file.go: path is required")}
}

type manifestFile struct {
	path string
}

// Location returns the target file path.
func (m *manifestFile) Location() string {
	return m.path
}

// Write replaces the file content with data, creating the parent directory when missing.
// Every failure is reported as filesystem_error.
func (m *manifestFile) Write(ctx context.Context, data []byte) error {
	if err := ctx.Err(); err != nil {
		return service.NewFilesystemError("write targets file", err)
	}

	dir := filepath.Dir(m.path)
	if err := os.MkdirAll(dir, manifestDirPerm); err != nil {
		return service.NewFilesystemError("create targets directory", fmt.Errorf("can't create %s, err: %w", dir, err))
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(m.path)+".*.tmp")
	if err != nil {
		return service.NewFilesystemError("create temporary file", fmt.Errorf("can't create temp file in %s, err: %w", dir, err))
	}
	tmpName := tmp.Name()
	committed := false
	defer func() {
		if !committed {
			_ = os.Remove(tmpName)
		}
	}()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return service.NewFilesystemError("write temporary file", fmt.Errorf("can't write %s, err: %w", tmpName, err))
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		return service.NewFilesystemError("sync temporary file", fmt.Errorf("can't sync %s, err: %w", tmpName, err))
	}
	if err := tmp.Close(); err != nil {
		return service.NewFilesystemError("close temporary file", fmt.Errorf("can't close %s, err: %w", tmpName, err))
	}
	if err := os.Chmod(tmpName, manifestFilePerm); err != nil {
		return service.NewFilesystemError("chmod temporary file", fmt.Errorf("can't chmod %s, err: %w", tmpName, err))
	}
	if err := os.Rename(tmpName, m.path); err != nil {
		return service.NewFilesystemError("replace targets file", fmt.Errorf("can't rename %s to %s, err: %w", tmpName, m.path, err))
	}
	committed = true
	return nil
}
