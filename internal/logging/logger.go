package logging

import (
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Logger wraps a logrus instance writing JSON lines to a combined log file,
// with errors duplicated into a separate error log. It is constructed once
// at startup and passed into each component; there is no package-level
// singleton.
type Logger struct {
	log          *logrus.Logger
	combinedPath string
	errorPath    string
}

// errorFileHook mirrors error-and-above entries into the error log file,
// the way the original stack kept a dedicated error transport.
type errorFileHook struct {
	out       io.Writer
	formatter logrus.Formatter
}

func (h *errorFileHook) Levels() []logrus.Level {
	return []logrus.Level{logrus.PanicLevel, logrus.FatalLevel, logrus.ErrorLevel}
}

func (h *errorFileHook) Fire(entry *logrus.Entry) error {
	line, err := h.formatter.Format(entry)
	if err != nil {
		return err
	}
	_, err = h.out.Write(line)
	return err
}

// New builds a Logger writing under dir, creating it if needed. Rotation is
// handled by lumberjack on the combined file.
func New(dir string) (*Logger, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}

	combinedPath := filepath.Join(dir, "combined.log")
	errorPath := filepath.Join(dir, "error.log")

	formatter := &logrus.JSONFormatter{}

	log := logrus.New()
	log.SetFormatter(formatter)
	log.SetLevel(logrus.InfoLevel)
	log.SetOutput(&lumberjack.Logger{
		Filename:   combinedPath,
		MaxSize:    10, // megabytes
		MaxBackups: 3,
		MaxAge:     28, // days
		Compress:   true,
	})
	log.AddHook(&errorFileHook{
		out: &lumberjack.Logger{
			Filename:   errorPath,
			MaxSize:    10,
			MaxBackups: 3,
			MaxAge:     28,
			Compress:   true,
		},
		formatter: formatter,
	})

	return &Logger{
		log:          log,
		combinedPath: combinedPath,
		errorPath:    errorPath,
	}, nil
}

// entry stamps a unique event id on every record.
func (l *Logger) entry(fields map[string]any) *logrus.Entry {
	e := l.log.WithField("event_id", uuid.NewString())
	if len(fields) > 0 {
		e = e.WithFields(fields)
	}
	return e
}

func (l *Logger) Info(message string, fields map[string]any) {
	l.entry(fields).Info(message)
}

func (l *Logger) Warn(message string, fields map[string]any) {
	l.entry(fields).Warn(message)
}

func (l *Logger) Error(message string, fields map[string]any) {
	l.entry(fields).Error(message)
}
