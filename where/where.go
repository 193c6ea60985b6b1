// Package where resolves the filesystem locations the addon reads from and writes to.
package where

import (
	"os"
	"path/filepath"

	"github.com/samber/lo"
	"github.com/vixstremio/vixstremio/constant"
	"github.com/vixstremio/vixstremio/filesystem"
)

// EnvConfigPath overrides the default configuration directory.
const EnvConfigPath = "VIXSTREMIO_CONFIG_PATH"

func ensureDir(path string) string {
	lo.Must0(filesystem.API().MkdirAll(path, os.ModePerm))
	return path
}

// Config resolves the directory holding vixstremio.toml.
// It follows os.UserConfigDir unless VIXSTREMIO_CONFIG_PATH is set.
func Config() string {
	if custom, ok := os.LookupEnv(EnvConfigPath); ok {
		return ensureDir(custom)
	}

	base, err := os.UserConfigDir()
	if err != nil {
		// Containers frequently run without HOME.
		base = filepath.Join(".", "config")
	}
	return ensureDir(filepath.Join(base, constant.App))
}

// ConfigFile is the path of the TOML configuration file.
func ConfigFile() string {
	return filepath.Join(Config(), constant.App+".toml")
}

// Logs resolves the directory used for persisted log files.
func Logs() string {
	return ensureDir(filepath.Join(Config(), "logs"))
}
