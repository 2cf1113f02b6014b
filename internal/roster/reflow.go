package roster

import (
	"regexp"
	"strings"
)

var (
	// An upper-case run ending in a gender marker, e.g. "AZANMALE".
	wordGenderPattern = regexp.MustCompile(`[A-Z]{2,}(?:FEMALE|MALE)`)
	// A gender marker glued to an 8-digit staff ID.
	genderIDPattern = regexp.MustCompile(`(FEMALE|MALE)(\d{8})`)
	// A 6-digit number glued to the letters that follow it.
	idTextPattern = regexp.MustCompile(`(\d{6})([A-Z]+)`)
)

// RepairReflow reinserts the spaces a PDF text layer drops between the
// name, gender, ID and trailing columns of a roster row. The rewrites run
// in order; the first applies to every occurrence, the other two only to
// the first.
func RepairReflow(s string) string {
	s = wordGenderPattern.ReplaceAllStringFunc(s, splitGenderSuffix)
	s = replaceFirst(genderIDPattern, s)
	s = replaceFirst(idTextPattern, s)
	return s
}

// splitGenderSuffix separates a word from a trailing MALE/FEMALE marker.
// FEMALE is tested first so "AZANFEMALE" splits as "AZAN FEMALE" and a
// bare "FEMALE" is left whole.
func splitGenderSuffix(run string) string {
	for _, marker := range []string{"FEMALE", "MALE"} {
		if !strings.HasSuffix(run, marker) {
			continue
		}
		word := run[:len(run)-len(marker)]
		if len(word) < 2 {
			return run
		}
		return word + " " + marker
	}
	return run
}

// replaceFirst inserts a space between the two capture groups of the
// leftmost match of re.
func replaceFirst(re *regexp.Regexp, s string) string {
	loc := re.FindStringSubmatchIndex(s)
	if loc == nil {
		return s
	}
	split := loc[3]
	return s[:split] + " " + s[split:]
}
