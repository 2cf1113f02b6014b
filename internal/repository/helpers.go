package repository

import (
	"strings"
	"time"
)

// formatTime renders t in UTC RFC3339 for SQLite storage.
func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

// joinNames stores a name list in a single TEXT column.
func joinNames(names []string) string {
	return strings.Join(names, ",")
}

// splitNames reverses joinNames; an empty column yields nil.
func splitNames(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(s, ",")
}
