package config

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// ParseLevel maps a log_level value onto a slog level.
func ParseLevel(name string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "info":
		return slog.LevelInfo, nil
	case "debug":
		return slog.LevelDebug, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return slog.LevelInfo, fmt.Errorf("config log_level must be debug, info, warn or error: %q", name)
}

// CLILogger logs text records to w (normally stderr) and, when log_file is
// set, JSON records to that file as well. The returned func closes the file.
func (c *Config) CLILogger(w io.Writer) (*slog.Logger, func(), error) {
	level, err := ParseLevel(c.LogLevel)
	if err != nil {
		return nil, nil, err
	}
	text := slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})
	if c.LogFile == "" {
		return slog.New(text), func() {}, nil
	}
	file, closer, err := openFileLogHandler(c.LogFile, level)
	if err != nil {
		return nil, nil, err
	}
	return slog.New(fanoutHandler{text, file}), closer, nil
}

// TUILogger never writes to the terminal. Records go to log_file when set
// and are discarded otherwise.
func (c *Config) TUILogger() (*slog.Logger, func(), error) {
	level, err := ParseLevel(c.LogLevel)
	if err != nil {
		return nil, nil, err
	}
	if c.LogFile == "" {
		return slog.New(slog.NewTextHandler(io.Discard, nil)), func() {}, nil
	}
	file, closer, err := openFileLogHandler(c.LogFile, level)
	if err != nil {
		return nil, nil, err
	}
	return slog.New(file), closer, nil
}

func openFileLogHandler(path string, level slog.Level) (slog.Handler, func(), error) {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return nil, nil, fmt.Errorf("create log dir: %w", err)
	}
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	handler := slog.NewJSONHandler(file, &slog.HandlerOptions{Level: level})
	return handler, func() { file.Close() }, nil
}
