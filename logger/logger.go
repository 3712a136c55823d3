// Package logger holds the process-wide logrus logger.
package logger

import (
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// Log is the global logger. It starts with logrus defaults so packages can
// log before Init runs (tests never call Init).
var Log = logrus.New()

// Init configures the global logger from the environment.
// LOG_LEVEL picks the level (default "info"), LOG_FORMAT=json switches to
// the JSON formatter.
func Init() {
	InitWithOutput(os.Stdout)
}

// InitWithOutput is Init with an explicit output.
func InitWithOutput(out io.Writer) {
	Log = logrus.New()

	logLevel, ok := os.LookupEnv("LOG_LEVEL")
	if !ok {
		logLevel = "info"
	}
	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	Log.SetLevel(level)

	if strings.ToLower(os.Getenv("LOG_FORMAT")) == "json" {
		Log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		Log.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
		})
	}

	Log.SetOutput(out)
}
