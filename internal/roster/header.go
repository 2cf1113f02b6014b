package roster

import (
	"strings"

	"github.com/alexanderramin/shiftroster/internal/domain"
)

// LocateHeaders scans every pair of adjacent lines for a target staff name.
// A roster row wraps across a line break, so line i is searched for the name
// and line i+1 is joined onto it before the reflow repair runs. Windows
// whose name cannot be isolated as a standalone token after repair are
// skipped.
func LocateHeaders(lines []string, names []string) []domain.HeaderMatch {
	var matches []domain.HeaderMatch
	for i := 0; i+1 < len(lines); i++ {
		name := findName(lines[i], names)
		if name == "" {
			continue
		}
		m, ok := splitWindow(lines[i]+" "+lines[i+1], name)
		if !ok {
			continue
		}
		m.Line = i
		matches = append(matches, m)
	}
	return matches
}

// findName returns the first configured name contained in line, ignoring case.
func findName(line string, names []string) string {
	upper := strings.ToUpper(line)
	for _, n := range names {
		if n != "" && strings.Contains(upper, n) {
			return n
		}
	}
	return ""
}

// splitWindow repairs the combined window text and cuts it at the name token.
func splitWindow(combined, name string) (domain.HeaderMatch, bool) {
	parts := strings.Fields(RepairReflow(combined))
	idx := -1
	for i, p := range parts {
		if p == name {
			idx = i
			break
		}
	}
	if idx == -1 {
		return domain.HeaderMatch{}, false
	}
	return domain.HeaderMatch{
		Name:   name,
		Header: strings.Join(parts[:idx+1], " "),
		Blob:   strings.Join(parts[idx+1:], ""),
	}, true
}
