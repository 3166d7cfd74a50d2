package main

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

const (
	LevelEnv = "LOG_LEVEL"
)

// NewLogger returns a logger writing plain text to out. The level is read
// from $LOG_LEVEL and defaults to warnings only.
func NewLogger(out io.Writer) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(out)
	logger.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
	})
	logger.SetLevel(logrus.WarnLevel)
	if lvl := os.Getenv(LevelEnv); lvl != "" {
		level, err := logrus.ParseLevel(lvl)
		if err != nil {
			_, _ = fmt.Fprintf(out, "logrus parse level %q: %s\n", lvl, err.Error())
		} else {
			logger.SetLevel(level)
		}
	}
	return logger
}
