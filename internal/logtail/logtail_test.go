package logtail

import (
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"time"
)

func TestRead(t *testing.T) {
	tmpDir := t.TempDir()
	logPath := filepath.Join(tmpDir, "activity.log")

	var content strings.Builder
	var expectedAll []string
	for i := 1; i <= 10; i++ {
		line := fmt.Sprintf("Line %d", i)
		content.WriteString(line + "\n")
		expectedAll = append(expectedAll, line)
	}
	if err := os.WriteFile(logPath, []byte(content.String()), 0o644); err != nil {
		t.Fatalf("failed to create test log file: %v", err)
	}

	tests := []struct {
		name     string
		maxLines int
		expected []string
	}{
		{"zero", 0, nil},
		{"negative", -1, nil},
		{"partial", 5, expectedAll[5:]},
		{"exactly all", 10, expectedAll},
		{"more than exists", 20, expectedAll},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Read(logPath, tt.maxLines)
			if err != nil {
				t.Fatalf("Read returned error: %v", err)
			}
			if !reflect.DeepEqual(got, tt.expected) {
				t.Fatalf("Read = %#v, want %#v", got, tt.expected)
			}
		})
	}
}

func TestRead_MissingFile(t *testing.T) {
	got, err := Read(filepath.Join(t.TempDir(), "missing.log"), 10)
	if err != nil {
		t.Fatalf("Read returned error: %v", err)
	}
	if got != nil {
		t.Fatalf("Read = %#v, want nil", got)
	}
}

func TestParseLine(t *testing.T) {
	want := time.Date(2026, 10, 18, 9, 12, 44, 0, time.Local)

	got := ParseLine("2026/10/18 09:12:44 [Books] Load Books\n")
	if !got.Time.Equal(want) {
		t.Fatalf("Time = %v, want %v", got.Time, want)
	}
	if got.Message != "[Books] Load Books" {
		t.Fatalf("Message = %q, want %q", got.Message, "[Books] Load Books")
	}

	plain := ParseLine("  just text ")
	if !plain.Time.IsZero() {
		t.Fatalf("Time = %v, want zero", plain.Time)
	}
	if plain.Message != "just text" {
		t.Fatalf("Message = %q, want %q", plain.Message, "just text")
	}
}

func TestReadEntries_SkipsBlankLines(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "activity.log")
	body := "2026/10/18 09:12:44 [Books] Load Books\n\n2026/10/18 09:12:45 [Books] Load Books Success: 2 books\n"
	if err := os.WriteFile(logPath, []byte(body), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	entries, err := ReadEntries(logPath, 10)
	if err != nil {
		t.Fatalf("ReadEntries returned error: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("ReadEntries returned %d entries, want 2", len(entries))
	}
	if entries[1].Message != "[Books] Load Books Success: 2 books" {
		t.Fatalf("entries[1].Message = %q", entries[1].Message)
	}
}
