package logbook

import (
	"path/filepath"
	"strings"
	"testing"
)

func TestAppendAndTail(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "yolked.log")
	lb, err := Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer lb.Close()

	lb.Info("screen: welcome")
	lb.Warn("profile fetch failed: %s", "timeout")
	lb.Error("commit attempt %d failed", 1)

	lines := lb.Tail(10)
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d: %v", len(lines), lines)
	}
	if !strings.Contains(lines[0], "INFO") || !strings.Contains(lines[0], "screen: welcome") {
		t.Fatalf("first line = %q", lines[0])
	}
	if !strings.Contains(lines[2], "ERROR") {
		t.Fatalf("last line = %q", lines[2])
	}
}

func TestTailBoundsResults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "yolked.log")
	lb, err := Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer lb.Close()

	for i := 0; i < 8; i++ {
		lb.Info("entry %d", i)
	}
	lines := lb.Tail(3)
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d", len(lines))
	}
	if !strings.Contains(lines[2], "entry 7") {
		t.Fatalf("tail must keep the newest entries, got %q", lines[2])
	}
}

func TestNilLogbookIsSafe(t *testing.T) {
	var lb *Logbook
	lb.Info("ignored")
	if got := lb.Tail(5); got != nil {
		t.Fatalf("nil logbook Tail = %v", got)
	}
	if lb.Path() != "" {
		t.Fatal("nil logbook must report empty path")
	}
}
