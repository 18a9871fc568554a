// Package filesystem provides a virtualized abstraction layer for all filesystem operations.
//
// Exports, imports, logs and the file store backend all go through API so tests can swap in an in-memory tree.
package filesystem

import (
	"path/filepath"

	"github.com/spf13/afero"
)

var backend = afero.Afero{Fs: afero.NewOsFs()}

// API returns the active afero.Afero instance for filesystem interaction.
func API() afero.Afero {
	return backend
}

// SetOsFs restores the filesystem backend to the native operating system implementation.
func SetOsFs() {
	backend = afero.Afero{Fs: afero.NewOsFs()}
}

// SetMemMapFs switches to a volatile in-memory filesystem.
func SetMemMapFs() {
	backend = afero.Afero{Fs: afero.NewMemMapFs()}
}

// WriteFile writes data to path, creating parent directories first.
func WriteFile(path string, data []byte) error {
	if err := backend.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return backend.WriteFile(path, data, 0o644)
}
