// Package logbook records the client's flow transitions (screen changes,
// service calls, commit attempts) to a plain text file under the state dir,
// so a failed onboarding run can be inspected after the terminal closes.
package logbook

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"
)

// Level is the severity of an entry.
type Level string

const (
	LevelInfo  Level = "INFO"
	LevelWarn  Level = "WARN"
	LevelError Level = "ERROR"
)

// Logbook appends timestamped lines to a single file. Safe for use from
// bubbletea commands running off the update loop.
type Logbook struct {
	mu   sync.Mutex
	path string
	file *os.File
}

// Open creates the logbook file (and its parent dir) in append mode.
func Open(path string) (*Logbook, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("logbook: ensure log dir: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("logbook: open %s: %w", path, err)
	}
	return &Logbook{path: path, file: f}, nil
}

// Path returns the file backing this logbook.
func (l *Logbook) Path() string {
	if l == nil {
		return ""
	}
	return l.path
}

// Close releases the file handle.
func (l *Logbook) Close() error {
	if l == nil || l.file == nil {
		return nil
	}
	return l.file.Close()
}

func (l *Logbook) append(level Level, format string, args ...any) {
	if l == nil || l.file == nil {
		return
	}
	msg := strings.TrimSpace(fmt.Sprintf(format, args...))
	if msg == "" {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.file, "%s %-5s %s\n", time.Now().UTC().Format(time.RFC3339), level, msg)
}

// Info appends an informational entry.
func (l *Logbook) Info(format string, args ...any) { l.append(LevelInfo, format, args...) }

// Warn appends a warning entry.
func (l *Logbook) Warn(format string, args ...any) { l.append(LevelWarn, format, args...) }

// Error appends an error entry.
func (l *Logbook) Error(format string, args ...any) { l.append(LevelError, format, args...) }

// Tail returns up to maxLines of the most recent entries, oldest first.
func (l *Logbook) Tail(maxLines int) []string {
	if l == nil || maxLines <= 0 {
		return nil
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	f, err := os.Open(l.path)
	if err != nil {
		return nil
	}
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if len(lines) > maxLines {
		lines = lines[len(lines)-maxLines:]
	}
	return lines
}
