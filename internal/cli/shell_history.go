package cli

import (
	"bufio"
	"os"
	"path/filepath"
	"strings"
)

const maxHistoryLines = 500

// loadHistoryFromPath reads command history from the given file.
// Returns nil if the file does not exist or cannot be read.
func loadHistoryFromPath(path string) []string {
	f, err := os.Open(path)
	if err != nil {
		return nil
	}
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line != "" {
			lines = append(lines, line)
		}
	}

	// Keep only the most recent entries.
	if len(lines) > maxHistoryLines {
		lines = lines[len(lines)-maxHistoryLines:]
	}
	return lines
}

// appendHistoryToPath appends a single line to the given history file.
// History is best-effort, so errors are ignored.
func appendHistoryToPath(path, line string) {
	line = strings.TrimSpace(line)
	if line == "" {
		return
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o600)
	if err != nil {
		return
	}
	defer f.Close()

	_, _ = f.WriteString(line + "\n")
}

// lineHistory is the shell's recall list. pos == len(lines) means the
// cursor sits on the fresh, empty line.
type lineHistory struct {
	path  string
	lines []string
	pos   int
}

// newLineHistory restores history from path. An empty path keeps history in
// memory only.
func newLineHistory(path string) *lineHistory {
	h := &lineHistory{path: path}
	if path != "" {
		h.lines = loadHistoryFromPath(path)
	}
	h.pos = len(h.lines)
	return h
}

func (h *lineHistory) add(line string) {
	if line == "" {
		return
	}
	h.lines = append(h.lines, line)
	h.pos = len(h.lines)
	if h.path != "" {
		appendHistoryToPath(h.path, line)
	}
}

// prev steps back one entry; it reports false at the oldest entry.
func (h *lineHistory) prev() (string, bool) {
	if h.pos == 0 {
		return "", false
	}
	h.pos--
	return h.lines[h.pos], true
}

// next steps forward, returning "" once past the newest entry.
func (h *lineHistory) next() string {
	if h.pos >= len(h.lines)-1 {
		h.pos = len(h.lines)
		return ""
	}
	h.pos++
	return h.lines[h.pos]
}
