// Package log provides named package loggers sharing one logrus backend.
package log

import (
	"fmt"
	"io"
	"os"
	"path"
	"runtime"
	"strings"

	"github.com/sirupsen/logrus"
)

var base = &logrus.Logger{
	Out: os.Stderr,
	Formatter: &CustomTextFormatter{
		logrus.TextFormatter{
			FullTimestamp:    true,
			CallerPrettyfier: hideCaller,
		},
	},
	Hooks:        make(logrus.LevelHooks),
	Level:        logrus.InfoLevel,
	ReportCaller: true,
}

// AvailableLevels lists level names accepted by SetLevel.
var AvailableLevels = []string{"panic", "fatal", "error", "warn", "info", "debug"}

// NamedLogger creates named package logger.
func NamedLogger(name string) *logrus.Entry {
	return base.WithField("pkg", name)
}

// SetLevel sets level of every named logger.
func SetLevel(level string) error {
	level = strings.ToLower(level)
	if !ValidateLevel(level) {
		return fmt.Errorf("invalid logging level %q, one of: %s",
			level, strings.Join(AvailableLevels, ", "))
	}
	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		return err
	}
	base.SetLevel(parsed)
	return nil
}

// SetOutput redirects every named logger.
func SetOutput(out io.Writer) {
	base.SetOutput(out)
}

// ValidateLevel ...
func ValidateLevel(level string) bool {
	for _, l := range AvailableLevels {
		if l == level {
			return true
		}
	}
	return false
}

// CustomTextFormatter prefixes messages with the caller location.
type CustomTextFormatter struct {
	logrus.TextFormatter
}

// Format renders a single log entry
func (f *CustomTextFormatter) Format(entry *logrus.Entry) ([]byte, error) {
	if entry.HasCaller() {
		entry.Message = fmt.Sprintf("[%-15s:%03d]%s",
			path.Base(entry.Caller.File), entry.Caller.Line, entry.Message)
	}
	return f.TextFormatter.Format(entry)
}

// hideCaller drops the func/file fields; the location is already in the message.
func hideCaller(*runtime.Frame) (string, string) {
	return "", ""
}
