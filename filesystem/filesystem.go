// Package filesystem routes every disk access of the addon (config file, log files) through afero.
//
// Tests swap the backend for an in-memory filesystem so no real directories are touched.
package filesystem

import (
	"os"
	"path/filepath"

	"github.com/spf13/afero"
)

var backend = afero.Afero{Fs: afero.NewOsFs()}

// API returns the active afero.Afero instance for filesystem interaction.
func API() afero.Afero {
	return backend
}

// Fs returns the raw backend, for libraries that accept an afero.Fs (viper).
func Fs() afero.Fs {
	return backend.Fs
}

// SetOsFs restores the filesystem backend to the native operating system implementation.
func SetOsFs() {
	backend = afero.Afero{Fs: afero.NewOsFs()}
}

// SetMemMapFs switches to a volatile in-memory backend.
func SetMemMapFs() {
	backend = afero.Afero{Fs: afero.NewMemMapFs()}
}

// OpenAppend opens path for appending, creating it and its parent directory when missing.
func OpenAppend(path string) (afero.File, error) {
	if err := backend.MkdirAll(filepath.Dir(path), os.ModePerm); err != nil {
		return nil, err
	}
	return backend.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0o644)
}
