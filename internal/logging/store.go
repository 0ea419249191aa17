package logging

import (
	"bufio"
	"encoding/json"
	"os"
	"strings"
)

// Page is one slice of log entries, newest first.
type Page struct {
	Logs       []map[string]any `json:"logs"`
	Pagination Pagination       `json:"pagination"`
}

type Pagination struct {
	Total      int `json:"total"`
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	TotalPages int `json:"totalPages"`
}

// ReadPage scans the combined log file and returns the requested page,
// optionally filtered by level. The scan is a plain full-file read: a
// concurrent writer may leave a partial line at the tail, and any line that
// does not parse as JSON is skipped rather than failing the request.
func (l *Logger) ReadPage(page, limit int, level string) (*Page, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 50
	}

	f, err := os.Open(l.combinedPath)
	if err != nil {
		if os.IsNotExist(err) {
			return &Page{Logs: []map[string]any{}, Pagination: Pagination{Page: page, Limit: limit}}, nil
		}
		return nil, err
	}
	defer f.Close()

	targetLevel := strings.ToUpper(level)

	var entries []map[string]any
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		var entry map[string]any
		if err := json.Unmarshal(line, &entry); err != nil {
			continue
		}
		if targetLevel != "" {
			lvl, _ := entry["level"].(string)
			if strings.ToUpper(lvl) != targetLevel {
				continue
			}
		}
		entries = append(entries, entry)
	}
	if err := scanner.Err(); err != nil && len(entries) == 0 {
		return nil, err
	}

	// Appends are chronological; newest first for the caller.
	for i, j := 0, len(entries)-1; i < j; i, j = i+1, j-1 {
		entries[i], entries[j] = entries[j], entries[i]
	}

	total := len(entries)
	start := (page - 1) * limit
	if start > total {
		start = total
	}
	end := start + limit
	if end > total {
		end = total
	}

	paged := entries[start:end]
	if paged == nil {
		paged = []map[string]any{}
	}

	return &Page{
		Logs: paged,
		Pagination: Pagination{
			Total:      total,
			Page:       page,
			Limit:      limit,
			TotalPages: (total + limit - 1) / limit,
		},
	}, nil
}

// Clear truncates both log files. Missing files are not an error.
func (l *Logger) Clear() error {
	for _, path := range []string{l.combinedPath, l.errorPath} {
		if err := os.Truncate(path, 0); err != nil && !os.IsNotExist(err) {
			return err
		}
	}
	return nil
}
