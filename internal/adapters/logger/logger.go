// Package logger implements a logging adapter using log/slog.
package logger

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"slices"
	"strings"
	"sync"

	"go.trai.ch/accessors/internal/core/ports"
)

// messager is implemented by zerr errors: it reports the message of one link without the chain.
type messager interface {
	Message() string
}

// metadataer is implemented by zerr errors carrying metadata.
type metadataer interface {
	Metadata() map[string]any
}

// Logger implements ports.Logger using log/slog.
type Logger struct {
	logger   *slog.Logger
	mu       sync.RWMutex
	jsonMode bool
	output   io.Writer
}

// New creates a Logger writing pretty text to stderr.
func New() ports.Logger {
	return &Logger{
		logger: slog.New(NewPrettyHandler(os.Stderr, nil)),
		output: os.Stderr,
	}
}

// SetOutput updates the output destination, keeping the current format.
// A nil w selects os.Stderr.
func (l *Logger) SetOutput(w io.Writer) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if w == nil {
		w = os.Stderr
	}
	l.output = w
	l.logger = slog.New(l.handler())
}

// SetJSON switches between JSON and pretty logging.
func (l *Logger) SetJSON(enable bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.jsonMode = enable
	l.logger = slog.New(l.handler())
}

func (l *Logger) handler() slog.Handler {
	w := l.output
	if w == nil {
		w = os.Stderr
	}
	opts := &slog.HandlerOptions{Level: slog.LevelInfo}
	if l.jsonMode {
		return slog.NewJSONHandler(w, opts)
	}
	return NewPrettyHandler(w, opts)
}

// Info logs an informational message.
func (l *Logger) Info(msg string) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.logger.Info(msg)
}

// Warn logs a warning message.
func (l *Logger) Warn(msg string) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.logger.Warn(msg)
}

// Error logs an error with its cause chain.
func (l *Logger) Error(err error) {
	if err == nil {
		return
	}

	l.mu.RLock()
	defer l.mu.RUnlock()

	if l.jsonMode {
		l.logger.Error("operation failed", "error", err)
		return
	}
	l.logger.Error(formatErrorEntries(collectErrorEntries(err)))
}

// errorEntry is one link of an error chain.
type errorEntry struct {
	message  string
	metadata []string
}

// collectErrorEntries walks the chain of err. zerr links contribute their own message,
// joined errors contribute each branch, and any other error ends the walk with its full text.
func collectErrorEntries(err error) []errorEntry {
	var entries []errorEntry
	for current := err; current != nil; {
		if joined, ok := current.(interface{ Unwrap() []error }); ok {
			for _, branch := range joined.Unwrap() {
				entries = append(entries, collectErrorEntries(branch)...)
			}
			return entries
		}

		m, ok := current.(messager)
		if !ok {
			return append(entries, errorEntry{message: current.Error()})
		}

		entry := errorEntry{message: m.Message(), metadata: formatMetadata(current)}
		switch {
		case entry.message != "":
			entries = append(entries, entry)
		case len(entry.metadata) > 0 && len(entries) > 0:
			last := &entries[len(entries)-1]
			last.metadata = append(last.metadata, entry.metadata...)
		case len(entry.metadata) > 0:
			// Metadata attached to a plain error lands on the first message found below it.
			rest := collectErrorEntries(errors.Unwrap(current))
			if len(rest) > 0 {
				rest[0].metadata = append(entry.metadata, rest[0].metadata...)
			}
			return append(entries, rest...)
		}
		current = errors.Unwrap(current)
	}
	return entries
}

// formatMetadata renders scalar metadata sorted by key. Structured attachments are skipped.
func formatMetadata(err error) []string {
	md, ok := err.(metadataer)
	if !ok {
		return nil
	}
	var out []string
	for key, value := range md.Metadata() {
		switch value.(type) {
		case string, bool, int, int64, uint64, float64, fmt.Stringer:
			out = append(out, fmt.Sprintf("%s=%v", key, value))
		}
	}
	slices.Sort(out)
	return out
}

func formatErrorEntries(entries []errorEntry) string {
	var lines []string
	for i, entry := range entries {
		text := entry.message
		if len(entry.metadata) > 0 {
			text += " (" + strings.Join(entry.metadata, ", ") + ")"
		}
		parts := strings.Split(text, "\n")

		if i == 0 {
			lines = append(lines, "Error: "+parts[0])
			for _, line := range parts[1:] {
				lines = append(lines, "       "+line)
			}
			continue
		}
		if i == 1 {
			lines = append(lines, "", "  Caused by:")
		}
		lines = append(lines, "    → "+parts[0])
		for _, line := range parts[1:] {
			lines = append(lines, "      "+line)
		}
	}
	return strings.Join(lines, "\n")
}
