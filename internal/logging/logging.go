// Package logging provides structured logging using Go's slog package.
package logging

import (
	"context"
	"io"
	"log/slog"
	"os"
	"time"
)

// ContextKey is a type for context keys to avoid collisions.
type ContextKey string

const (
	// RunIDKey is the context key for the ID of the current tool run.
	RunIDKey ContextKey = "run_id"
)

var (
	// defaultLogger is the global logger instance.
	defaultLogger *slog.Logger
)

func init() {
	// Text on stderr keeps stdout free for the tools' progress lines.
	InitLogger(LevelInfo, FormatText)
}

// Level represents a log level.
type Level int

const (
	// LevelDebug is for debug messages.
	LevelDebug Level = iota
	// LevelInfo is for informational messages.
	LevelInfo
	// LevelWarn is for warning messages.
	LevelWarn
	// LevelError is for error messages.
	LevelError
)

// Format represents a log output format.
type Format int

const (
	// FormatJSON outputs logs in JSON format.
	FormatJSON Format = iota
	// FormatText outputs logs in human-readable text format.
	FormatText
)

// InitLogger initializes the global logger on stderr with the specified
// level and format.
func InitLogger(level Level, format Format) {
	InitLoggerTo(os.Stderr, level, format)
}

// InitLoggerTo initializes the global logger writing to w.
func InitLoggerTo(w io.Writer, level Level, format Format) {
	var slogLevel slog.Level
	switch level {
	case LevelDebug:
		slogLevel = slog.LevelDebug
	case LevelInfo:
		slogLevel = slog.LevelInfo
	case LevelWarn:
		slogLevel = slog.LevelWarn
	case LevelError:
		slogLevel = slog.LevelError
	default:
		slogLevel = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{
		Level: slogLevel,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey {
				return slog.String(slog.TimeKey, a.Value.Time().Format(time.RFC3339))
			}
			return a
		},
	}

	var handler slog.Handler
	if format == FormatJSON {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}

	defaultLogger = slog.New(handler)
	slog.SetDefault(defaultLogger)
}

// WithRunID adds a run ID to the context.
func WithRunID(ctx context.Context, runID string) context.Context {
	return context.WithValue(ctx, RunIDKey, runID)
}

// GetRunID retrieves the run ID from the context.
func GetRunID(ctx context.Context) string {
	if runID, ok := ctx.Value(RunIDKey).(string); ok {
		return runID
	}
	return ""
}

// LoggerFromContext returns a logger with context values attached.
func LoggerFromContext(ctx context.Context) *slog.Logger {
	logger := defaultLogger
	if runID := GetRunID(ctx); runID != "" {
		logger = logger.With("run_id", runID)
	}
	return logger
}

// Helper functions for common logging patterns

// Info logs an info message with optional key-value pairs.
func Info(msg string, args ...any) {
	defaultLogger.Info(msg, args...)
}

// InfoContext logs an info message with context.
func InfoContext(ctx context.Context, msg string, args ...any) {
	LoggerFromContext(ctx).Info(msg, args...)
}

// ImportStarted logs the start of a corpus import.
func ImportStarted(ctx context.Context, source, db string, args ...any) {
	allArgs := []any{
		"source", source,
		"db", db,
	}
	allArgs = append(allArgs, args...)
	LoggerFromContext(ctx).Info("import_started", allArgs...)
}

// BookImported logs one book's rows after they have been inserted.
func BookImported(ctx context.Context, name string, bookID int64, verses, comments int, args ...any) {
	allArgs := []any{
		"book", name,
		"book_id", bookID,
		"verses", verses,
		"comments", comments,
	}
	allArgs = append(allArgs, args...)
	LoggerFromContext(ctx).Debug("book_imported", allArgs...)
}

// ImportFinished logs the outcome of a corpus import.
func ImportFinished(ctx context.Context, books, verses, comments int, duration time.Duration, args ...any) {
	allArgs := []any{
		"books", books,
		"verses", verses,
		"comments", comments,
		"duration_ms", duration.Milliseconds(),
	}
	allArgs = append(allArgs, args...)
	LoggerFromContext(ctx).Info("import_finished", allArgs...)
}

// ImportFailed logs an import that stopped before committing.
func ImportFailed(ctx context.Context, err error, args ...any) {
	allArgs := []any{
		"error", err.Error(),
	}
	allArgs = append(allArgs, args...)
	LoggerFromContext(ctx).Error("import_failed", allArgs...)
}

// ProvisionFailed logs a user database that could not be provisioned.
func ProvisionFailed(path string, err error, args ...any) {
	allArgs := []any{
		"path", path,
		"error", err.Error(),
	}
	allArgs = append(allArgs, args...)
	defaultLogger.Error("provision_failed", allArgs...)
}

// SchemaProvisioned logs the tables present after provisioning a database.
func SchemaProvisioned(path string, tables []string, args ...any) {
	allArgs := []any{
		"path", path,
		"tables", tables,
	}
	allArgs = append(allArgs, args...)
	defaultLogger.Info("schema_provisioned", allArgs...)
}
