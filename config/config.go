// Package config provides centralized management for addon settings, defaults, and the Viper-based configuration engine.
package config

import (
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"github.com/vixstremio/vixstremio/constant"
	"github.com/vixstremio/vixstremio/filesystem"
	"github.com/vixstremio/vixstremio/where"
)

// EnvKeyReplacer normalizes configuration keys into environment variable naming conventions.
var EnvKeyReplacer = strings.NewReplacer(".", "_")

// DotEnvFile is loaded from the working directory before env bindings are resolved.
// Variables already present in the process environment win.
var DotEnvFile = ".env"

// Setup initializes the global configuration state: defaults, environment bindings and the optional TOML file.
func Setup() error {
	_ = godotenv.Load(DotEnvFile)

	viper.SetConfigName(constant.App)
	viper.SetConfigType("toml")
	viper.SetFs(filesystem.Fs())
	viper.AddConfigPath(where.Config())

	viper.SetEnvPrefix(constant.App)
	viper.SetEnvKeyReplacer(EnvKeyReplacer)
	for _, name := range EnvExposed {
		field := Default[name]
		viper.MustBindEnv(append([]string{name}, field.EnvNames()...)...)
	}

	viper.SetTypeByDefaultValue(true)
	for name, field := range Default {
		viper.SetDefault(name, field.Value)
	}

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return nil
		}
		return err
	}

	return nil
}
