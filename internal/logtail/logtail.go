package logtail

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"
	"time"
)

// Entry is one decoded line of the application log.
type Entry struct {
	Time    time.Time
	Level   string
	Message string
	Fields  map[string]string
}

// Keys written by the logging package's encoder.
const (
	timeKey    = "timestamp"
	levelKey   = "severity"
	messageKey = "message"
	callerKey  = "caller"
)

// Read returns at most maxEntries entries from the end of the log at path,
// oldest first. A missing file yields no entries.
func Read(path string, maxEntries int) ([]Entry, error) {
	lines, err := tailLines(path, maxEntries)
	if err != nil {
		return nil, err
	}
	entries := make([]Entry, 0, len(lines))
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		entries = append(entries, Parse(line))
	}
	return entries, nil
}

// Parse decodes a JSON log line. Lines that aren't JSON objects become an
// entry whose Message is the raw text.
func Parse(line string) Entry {
	var raw map[string]any
	if err := json.Unmarshal([]byte(line), &raw); err != nil {
		return Entry{Message: strings.TrimSpace(line)}
	}
	entry := Entry{Fields: make(map[string]string)}
	for key, value := range raw {
		switch key {
		case timeKey:
			if s, ok := value.(string); ok {
				entry.Time, _ = time.Parse(time.RFC3339Nano, s)
			}
		case levelKey:
			entry.Level = fmt.Sprint(value)
		case messageKey:
			entry.Message = fmt.Sprint(value)
		case callerKey:
		default:
			entry.Fields[key] = fmt.Sprint(value)
		}
	}
	return entry
}

// String renders the entry on one line: time, level, message, then fields
// sorted by key.
func (e Entry) String() string {
	var b strings.Builder
	if !e.Time.IsZero() {
		b.WriteString(e.Time.Local().Format("15:04:05"))
		b.WriteString(" ")
	}
	if e.Level != "" {
		b.WriteString(e.Level)
		b.WriteString(" ")
	}
	b.WriteString(e.Message)

	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(&b, " %s=%s", k, e.Fields[k])
	}
	return b.String()
}

func tailLines(path string, maxLines int) ([]string, error) {
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
