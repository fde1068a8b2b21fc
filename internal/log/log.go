// Package log writes category-tagged debug lines for resourced runs.
// Nothing is written until Init or InitWriter is called; the CLI does that
// for --debug and RESOURCED_DEBUG.
package log

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"
)

// Level orders log lines by severity.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

var levelNames = [...]string{"DEBUG", "INFO", "WARN", "ERROR"}

func (l Level) String() string {
	if l < LevelDebug || l > LevelError {
		return "UNKNOWN"
	}
	return levelNames[l]
}

// Category names the stage of a run a line belongs to.
type Category string

const (
	CatConfig   Category = "config"   // config lookup, validation and saving
	CatRegistry Category = "registry" // entry declaration and identity checks
	CatExpand   Category = "expand"   // record expansion
	CatDatagen  Category = "datagen"  // pack file writes, cache and pruning
	CatCheck    Category = "check"    // drift detection
	CatWatcher  Category = "watcher"  // config file events
	CatCache    Category = "cache"
	CatTrace    Category = "trace"
)

// Logger is the sink behind the package functions.
type Logger struct {
	mu       sync.Mutex
	file     *os.File
	writer   io.Writer
	enabled  bool
	minLevel Level
}

var defaultLogger *Logger

// Init appends debug lines to the file at path.
// The returned func closes the file.
func Init(path string) (func(), error) {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644) //nolint:gosec // G304: debug log path comes from RESOURCED_LOG
	if err != nil {
		return nil, fmt.Errorf("opening log file: %w", err)
	}
	l := &Logger{file: f, writer: f, enabled: true, minLevel: LevelDebug}
	defaultLogger = l
	return func() {
		l.mu.Lock()
		defer l.mu.Unlock()
		l.enabled = false
		_ = l.file.Close()
	}, nil
}

// InitWriter points the global logger at w, replacing any previous logger.
func InitWriter(w io.Writer, minLevel Level) {
	defaultLogger = &Logger{writer: w, enabled: true, minLevel: minLevel}
}

// Reset drops the global logger. Used by tests.
func Reset() {
	defaultLogger = nil
}

func SetEnabled(enabled bool) {
	if l := defaultLogger; l != nil {
		l.mu.Lock()
		l.enabled = enabled
		l.mu.Unlock()
	}
}

func SetMinLevel(level Level) {
	if l := defaultLogger; l != nil {
		l.mu.Lock()
		l.minLevel = level
		l.mu.Unlock()
	}
}

func Debug(cat Category, msg string, fields ...any) { write(LevelDebug, cat, msg, fields) }
func Info(cat Category, msg string, fields ...any)  { write(LevelInfo, cat, msg, fields) }
func Warn(cat Category, msg string, fields ...any)  { write(LevelWarn, cat, msg, fields) }
func Error(cat Category, msg string, fields ...any) { write(LevelError, cat, msg, fields) }

// ErrorErr logs at error level with err appended as the "error" field.
func ErrorErr(cat Category, msg string, err error, fields ...any) {
	text := "<nil>"
	if err != nil {
		text = err.Error()
	}
	write(LevelError, cat, msg, append(fields, "error", text))
}

// write renders one line:
//
//	2026-01-02T15:04:05 [WARN] [datagen] message key=value other=<missing>
func write(level Level, cat Category, msg string, fields []any) {
	l := defaultLogger
	if l == nil {
		return
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	if !l.enabled || level < l.minLevel || l.writer == nil {
		return
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s [%s] [%s] %s", time.Now().Format("2006-01-02T15:04:05"), level, cat, msg)
	for i := 0; i < len(fields); i += 2 {
		if i+1 < len(fields) {
			fmt.Fprintf(&b, " %v=%v", fields[i], fields[i+1])
		} else {
			fmt.Fprintf(&b, " %v=<missing>", fields[i])
		}
	}
	b.WriteByte('\n')
	_, _ = io.WriteString(l.writer, b.String())
}
