package logging

import (
	"os"

	"github.com/sirupsen/logrus"
)

// New returns a logger writing to stderr so that stdout stays free for the
// generated configuration.
func New(level logrus.Level) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(os.Stderr)
	logger.SetLevel(level)
	logger.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
	})

	return logger
}
