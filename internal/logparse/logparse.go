// Package logparse reads plain-text workout journals, one exercise per line:
//
//	2024-05-01 Bench Press 3x10 60kg
//	2024-05-01 Running 1x1 30min
//
// Blank lines and lines starting with '#' are skipped.
package logparse

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"
	"time"
)

const dateLayout = "2006-01-02"

const (
	// maxLineLen bounds a single journal line.
	maxLineLen = 64 * 1024
	maxMinutes = 24 * 60
)

var linePattern = regexp.MustCompile(
	`(?i)^(\d{4}-\d{2}-\d{2})\s+(.+?)\s+(\d+)\s*x\s*(\d+)(?:\s+(\d+(?:\.\d+)?)\s*kg)?(?:\s+(\d+)\s*min)?$`,
)

// Entry is one parsed journal line.
type Entry struct {
	Line        int
	Text        string
	Date        string
	Exercise    string
	Sets        int
	Reps        int
	WeightKg    float64
	DurationSec int
}

// LineError describes a line that could not be used.
type LineError struct {
	Line   int    `json:"line"`
	Text   string `json:"text"`
	Reason string `json:"reason"`
}

func (e LineError) Error() string {
	return fmt.Sprintf("line %d: %s", e.Line, e.Reason)
}

// ParseLine parses a single non-comment line.
func ParseLine(line string) (Entry, error) {
	m := linePattern.FindStringSubmatch(strings.TrimSpace(line))
	if m == nil {
		return Entry{}, fmt.Errorf("expected \"YYYY-MM-DD <exercise> <sets>x<reps> [<w>kg] [<m>min]\"")
	}
	if _, err := time.Parse(dateLayout, m[1]); err != nil {
		return Entry{}, fmt.Errorf("invalid date %q", m[1])
	}

	e := Entry{Date: m[1], Exercise: strings.Join(strings.Fields(m[2]), " ")}
	var err error
	if e.Sets, err = strconv.Atoi(m[3]); err != nil {
		return Entry{}, fmt.Errorf("invalid sets %q", m[3])
	}
	if e.Reps, err = strconv.Atoi(m[4]); err != nil {
		return Entry{}, fmt.Errorf("invalid reps %q", m[4])
	}
	if m[5] != "" {
		if e.WeightKg, err = strconv.ParseFloat(m[5], 64); err != nil {
			return Entry{}, fmt.Errorf("invalid weight %q", m[5])
		}
	}
	if m[6] != "" {
		minutes, err := strconv.Atoi(m[6])
		if err != nil || minutes > maxMinutes {
			return Entry{}, fmt.Errorf("duration must be at most %d min, got %q", maxMinutes, m[6])
		}
		e.DurationSec = minutes * 60
	}
	return e, nil
}

// Parse scans r line by line. Lines that fail to parse are returned as
// LineErrors rather than aborting the scan; the error return is reserved
// for read failures.
func Parse(r io.Reader) ([]Entry, []LineError, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 4*1024), maxLineLen)

	var (
		entries []Entry
		bad     []LineError
		n       int
	)
	for scanner.Scan() {
		n++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		e, err := ParseLine(line)
		if err != nil {
			bad = append(bad, LineError{Line: n, Text: line, Reason: err.Error()})
			continue
		}
		e.Line, e.Text = n, line
		entries = append(entries, e)
	}
	if err := scanner.Err(); err != nil {
		return entries, bad, fmt.Errorf("read journal: %w", err)
	}
	return entries, bad, nil
}
