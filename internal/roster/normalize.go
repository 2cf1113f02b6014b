package roster

import "strings"

var lineBreaks = strings.NewReplacer("\r\n", "\n", "\r", "\n")

// NormalizeLines splits extracted text into trimmed, non-empty lines,
// preserving order.
func NormalizeLines(text string) []string {
	lines := make([]string, 0, strings.Count(text, "\n")+1)
	for _, l := range strings.Split(lineBreaks.Replace(text), "\n") {
		l = strings.TrimSpace(l)
		if l == "" {
			continue
		}
		lines = append(lines, l)
	}
	return lines
}
