package config

import (
	"os"

	"github.com/sirupsen/logrus"
)

// NewLogger builds the process-wide structured logger. Constructed once in
// main and injected; never a package-level singleton.
func NewLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})
	logger.SetOutput(os.Stdout)

	level, err := logrus.ParseLevel(envOr("LOG_LEVEL", "info"))
	if err != nil {
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)
	return logger
}
