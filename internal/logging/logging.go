// Package logging connects the table logging collaborator to logrus.
package logging

import (
	"io"

	"github.com/sirupsen/logrus"

	"github.com/dkoosis/unitbl/pkg/table"
)

// LogrusLevel maps a table diagnostic level onto the logrus level of the
// same name.
func LogrusLevel(l table.Level) logrus.Level {
	switch l {
	case table.LevelError:
		return logrus.ErrorLevel
	case table.LevelWarn:
		return logrus.WarnLevel
	case table.LevelInfo:
		return logrus.InfoLevel
	default:
		return logrus.DebugLevel
	}
}

// New returns a text logger writing to w with its level set to match the
// table threshold, so logrus and the table config filter identically.
func New(w io.Writer, threshold table.Level, noColor bool) *logrus.Logger {
	l := logrus.New()
	l.SetOutput(w)
	l.SetLevel(LogrusLevel(threshold))
	l.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
		DisableColors:    noColor,
	})
	return l
}

// Sink returns a table.LogFunc that forwards every diagnostic to l.
func Sink(l *logrus.Logger) table.LogFunc {
	return func(level table.Level, msg string) {
		l.Log(LogrusLevel(level), msg)
	}
}

// Install attaches a logrus sink to cfg using the given threshold and prefix.
func Install(cfg *table.Config, l *logrus.Logger, threshold table.Level, prefix string) {
	cfg.SetLogFunc(Sink(l), threshold, prefix)
}
