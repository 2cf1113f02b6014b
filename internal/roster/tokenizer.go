package roster

import (
	"unicode/utf8"

	"github.com/alexanderramin/shiftroster/internal/domain"
)

// statusKeywords are the non-numeric shift codes, matched case-insensitively.
var statusKeywords = []string{"off", "AL", "TR", "TP", "MC", "TBD"}

// A rule reports how many leading bytes of s form one token of its kind,
// or 0 when it does not apply.
type rule struct {
	kind  domain.ShiftKind
	match func(s string) int
}

// rules are tried in order against the remaining input. Keywords go first
// because they are textual, and the 4-character composite shape must be
// tried before the bare 2-digit shape that is its prefix.
var rules = []rule{
	{kind: domain.ShiftStatus, match: matchStatus},
	{kind: domain.ShiftComposite, match: matchComposite},
	{kind: domain.ShiftNumeric, match: matchNumeric},
}

// Tokenize splits an undelimited shift blob into at most limit tokens.
// Characters no rule accepts are skipped one at a time; callers validate
// the token count.
func Tokenize(blob string, limit int) []domain.ShiftToken {
	tokens := make([]domain.ShiftToken, 0, max(limit, 0))
	i := 0
	for i < len(blob) && len(tokens) < limit {
		rest := blob[i:]
		n, kind := nextToken(rest)
		if n == 0 {
			_, size := utf8.DecodeRuneInString(rest)
			i += size
			continue
		}
		tokens = append(tokens, domain.ShiftToken{Code: rest[:n], Kind: kind})
		i += n
	}
	return tokens
}

func nextToken(s string) (int, domain.ShiftKind) {
	for _, r := range rules {
		if n := r.match(s); n > 0 {
			return n, r.kind
		}
	}
	return 0, ""
}

func matchStatus(s string) int {
	for _, kw := range statusKeywords {
		if len(s) >= len(kw) && equalFoldASCII(s[:len(kw)], kw) {
			return len(kw)
		}
	}
	return 0
}

// matchComposite accepts two digits, a letter A-D and a digit, e.g. "12B3".
func matchComposite(s string) int {
	if len(s) < 4 {
		return 0
	}
	if isDigit(s[0]) && isDigit(s[1]) && s[2] >= 'A' && s[2] <= 'D' && isDigit(s[3]) {
		return 4
	}
	return 0
}

func matchNumeric(s string) int {
	if len(s) >= 2 && isDigit(s[0]) && isDigit(s[1]) {
		return 2
	}
	return 0
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

func equalFoldASCII(a, b string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := 0; i < len(a); i++ {
		if lowerASCII(a[i]) != lowerASCII(b[i]) {
			return false
		}
	}
	return true
}

func lowerASCII(b byte) byte {
	if b >= 'A' && b <= 'Z' {
		return b + ('a' - 'A')
	}
	return b
}
