// Package auth stores the TMDB API key in the system keyring and resolves the effective credential.
package auth

import (
	"errors"

	"github.com/spf13/viper"
	"github.com/vixstremio/vixstremio/constant"
	"github.com/vixstremio/vixstremio/key"
	"github.com/zalando/go-keyring"
)

const user = "tmdb-api-key"

// Source tells where the effective credential came from.
type Source string

const (
	SourceNone    Source = "none"
	SourceConfig  Source = "config"
	SourceKeyring Source = "keyring"
)

// SetKey persists the TMDB API key to the system keyring.
func SetKey(apiKey string) error {
	return keyring.Set(constant.App, user, apiKey)
}

// GetKey retrieves the TMDB API key from the system keyring.
func GetKey() (string, error) {
	return keyring.Get(constant.App, user)
}

// DeleteKey removes the TMDB API key from the system keyring. Deleting a missing key is not an error.
func DeleteKey() error {
	if err := keyring.Delete(constant.App, user); err != nil && !errors.Is(err, keyring.ErrNotFound) {
		return err
	}
	return nil
}

// Credential returns the TMDB API key in effect: tmdb.api_key (file, env or legacy TMDB_API_KEY) first, then the keyring.
func Credential() (string, Source) {
	if apiKey := viper.GetString(key.TMDBApiKey); apiKey != "" {
		return apiKey, SourceConfig
	}

	if apiKey, err := GetKey(); err == nil && apiKey != "" {
		return apiKey, SourceKeyring
	}

	return "", SourceNone
}
