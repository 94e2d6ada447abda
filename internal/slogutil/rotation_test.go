package slogutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParseSize(t *testing.T) {
	tests := []struct {
		input    string
		expected int64
	}{
		{"", 0},
		{"invalid", 0},
		{"100", 100},
		{"100B", 100},
		{"100b", 100},
		{"1KB", 1024},
		{"1kb", 1024},
		{"10KB", 10240},
		{"1MB", 1024 * 1024},
		{" 10MB ", 10 * 1024 * 1024},
		{"1GB", 1024 * 1024 * 1024},
		{"1.5MB", int64(1.5 * 1024 * 1024)},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := ParseSize(tt.input); got != tt.expected {
				t.Errorf("ParseSize(%q) = %d, want %d", tt.input, got, tt.expected)
			}
		})
	}
}

func TestRotatingFile_Write(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "hellod.log")

	rf, err := OpenRotatingFile(path, 100, 2)
	if err != nil {
		t.Fatalf("OpenRotatingFile failed: %v", err)
	}
	defer rf.Close()

	data := []byte("hello world\n")
	for i := 0; i < 5; i++ {
		if _, err := rf.Write(data); err != nil {
			t.Fatalf("Write failed: %v", err)
		}
	}

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	if got := strings.Count(string(content), "hello world"); got != 5 {
		t.Errorf("expected 5 lines before rotation, got %d", got)
	}
}

func TestRotatingFile_Rotation(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hellod.log")

	rf, err := OpenRotatingFile(path, 50, 2)
	if err != nil {
		t.Fatalf("OpenRotatingFile failed: %v", err)
	}

	data := []byte(strings.Repeat("a", 29) + "\n")
	for i := 0; i < 5; i++ {
		if _, err := rf.Write(data); err != nil {
			t.Fatalf("Write %d failed: %v", i, err)
		}
	}
	if err := rf.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	for _, p := range []string{path, path + ".1", path + ".2"} {
		if _, err := os.Stat(p); err != nil {
			t.Errorf("%s should exist: %v", filepath.Base(p), err)
		}
	}
	if _, err := os.Stat(path + ".3"); !os.IsNotExist(err) {
		t.Error("only maxBackups rotated files should be kept")
	}
}

func TestRotatingFile_CloseTwice(t *testing.T) {
	rf, err := OpenRotatingFile(filepath.Join(t.TempDir(), "x.log"), 0, 0)
	if err != nil {
		t.Fatalf("OpenRotatingFile failed: %v", err)
	}
	if err := rf.Close(); err != nil {
		t.Fatalf("first Close failed: %v", err)
	}
	if err := rf.Close(); err != nil {
		t.Errorf("second Close should be a no-op, got %v", err)
	}
}

func TestOpenLogFile(t *testing.T) {
	dir := t.TempDir()

	w, err := OpenLogFile(filepath.Join(dir, "rotating.log"), "1MB", 3)
	if err != nil {
		t.Fatalf("OpenLogFile with rotation failed: %v", err)
	}
	if _, ok := w.(*RotatingFile); !ok {
		t.Errorf("expected *RotatingFile, got %T", w)
	}
	_ = w.Close()

	w, err = OpenLogFile(filepath.Join(dir, "plain.log"), "", 3)
	if err != nil {
		t.Fatalf("OpenLogFile without rotation failed: %v", err)
	}
	if _, ok := w.(*os.File); !ok {
		t.Errorf("expected *os.File, got %T", w)
	}
	_ = w.Close()
}
