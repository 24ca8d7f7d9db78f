package logger

import (
	"os"

	"github.com/sirupsen/logrus"
)

// Log is the shared application logger.
var Log = logrus.New()

// Init configures the shared logger with JSON output on stdout at info level.
func Init() {
	Log.SetOutput(os.Stdout)
	Log.SetFormatter(&logrus.JSONFormatter{})
	Log.SetLevel(logrus.InfoLevel)
}

// SetLevel changes the level of the shared logger. Unknown levels are ignored
// and reported as a warning.
func SetLevel(level string) {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		Log.WithField("level", level).Warn("Unknown log level, keeping current level")
		return
	}
	Log.SetLevel(lvl)
}
