package logtail

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"
)

// timeLayout matches log.LstdFlags.
const timeLayout = "2006/01/02 15:04:05"

// Entry is one parsed line of the activity log.
type Entry struct {
	Time    time.Time // zero when the line has no timestamp
	Message string
}

// Read returns at most maxLines from the end of the file at path. A missing
// file yields no lines and no error.
func Read(path string, maxLines int) ([]string, error) {
	if maxLines <= 0 {
		return nil, nil
	}
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("open log: %w", err)
	}
	defer file.Close()

	ring := make([]string, maxLines)
	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	count := 0
	idx := 0
	for scanner.Scan() {
		ring[idx] = scanner.Text()
		idx = (idx + 1) % maxLines
		if count < maxLines {
			count++
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read log: %w", err)
	}

	lines := make([]string, count)
	if count == maxLines {
		for i := 0; i < count; i++ {
			lines[i] = ring[(idx+i)%maxLines]
		}
	} else {
		copy(lines, ring[:count])
	}
	return lines, nil
}

// ReadEntries is Read followed by ParseLine, newest entry last. Blank lines
// are skipped.
func ReadEntries(path string, maxLines int) ([]Entry, error) {
	lines, err := Read(path, maxLines)
	if err != nil {
		return nil, err
	}
	entries := make([]Entry, 0, len(lines))
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		entries = append(entries, ParseLine(line))
	}
	return entries, nil
}

// ParseLine splits a standard log line into its timestamp and message. Lines
// without a leading timestamp are returned whole as the message.
func ParseLine(line string) Entry {
	line = strings.TrimRight(line, "\r\n")
	if len(line) > len(timeLayout) {
		if ts, err := time.ParseInLocation(timeLayout, line[:len(timeLayout)], time.Local); err == nil {
			return Entry{Time: ts, Message: strings.TrimSpace(line[len(timeLayout):])}
		}
	}
	return Entry{Message: strings.TrimSpace(line)}
}
