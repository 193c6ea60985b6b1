// Package log provides the addon's structured logging, backed by logrus.
//
// Operators read it on stderr by default; with logs.write set, entries go to a dated file in the logs directory.
package log

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	logrus "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"github.com/vixstremio/vixstremio/filesystem"
	"github.com/vixstremio/vixstremio/key"
	"github.com/vixstremio/vixstremio/where"
)

// Setup configures output, formatting and severity from the global configuration.
func Setup() error {
	var out io.Writer = os.Stderr

	if viper.GetBool(key.LogsWrite) {
		path := filepath.Join(where.Logs(), time.Now().Format("2006-01-02")+".log")
		f, err := filesystem.OpenAppend(path)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		out = f
	}
	logrus.SetOutput(out)

	if viper.GetBool(key.LogsJson) {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	parsed, err := logrus.ParseLevel(viper.GetString(key.LogsLevel))
	if err != nil {
		parsed = logrus.InfoLevel
	}
	logrus.SetLevel(parsed)

	return nil
}

// Fields attaches structured context (item id, status code, failure reason) to an entry.
func Fields(fields logrus.Fields) *logrus.Entry {
	return logrus.WithFields(fields)
}

// Severity-specific emissions, proxied to the configured backend.

func Error(args ...interface{}) {
	logrus.Error(args...)
}
func Warn(args ...interface{}) {
	logrus.Warn(args...)
}
func Info(args ...interface{}) {
	logrus.Info(args...)
}
func Infof(format string, args ...interface{}) {
	logrus.Infof(format, args...)
}
