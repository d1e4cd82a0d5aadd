package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"jewelstore/internal/config"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Setup configures the standard logrus logger: stdout always, plus a rotated JSON file
// when OutputFile is set. Unknown levels fall back to info.
func Setup(cfg config.Logging) (io.Closer, error) {
	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	logrus.SetLevel(level)
	logrus.SetFormatter(&logrus.JSONFormatter{})

	if cfg.OutputFile == "" {
		logrus.SetOutput(os.Stdout)
		return nopCloser{}, nil
	}

	if err = os.MkdirAll(filepath.Dir(cfg.OutputFile), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}
	file := &lumberjack.Logger{
		Filename:   cfg.OutputFile,
		MaxSize:    10, // MB
		MaxBackups: 5,
		MaxAge:     7, // days
		Compress:   true,
	}
	logrus.SetOutput(io.MultiWriter(os.Stdout, file))
	return file, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
