package formatter

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/alexanderramin/shiftroster/internal/domain"
)

// FormatSchedule renders a result as one row per date and one column per
// staff member. Dates missing for a staff member show as "--".
func FormatSchedule(result domain.ScheduleResult) string {
	names := result.Names()
	headers := append([]string{"DATE"}, names...)

	seen := make(map[int]bool)
	var dates []int
	for _, s := range result {
		for _, d := range s.Dates() {
			if !seen[d] {
				seen[d] = true
				dates = append(dates, d)
			}
		}
	}
	sort.Ints(dates)

	rows := make([][]string, 0, len(dates))
	for _, d := range dates {
		row := make([]string, 0, len(headers))
		row = append(row, Dim(strconv.Itoa(d)))
		for _, n := range names {
			tok, ok := result[n].Shifts[d]
			if !ok {
				row = append(row, Dim("--"))
				continue
			}
			row = append(row, ShiftCode(tok))
		}
		rows = append(rows, row)
	}

	return Header("Roster") + "\n" + RenderTable(headers, rows)
}

// FormatHeaders lists each staff member with the header text their row was
// found under.
func FormatHeaders(result domain.ScheduleResult) string {
	var b strings.Builder
	for _, n := range result.Names() {
		s := result[n]
		fmt.Fprintf(&b, "  %s  %s  %s\n", Bold(n), Dim(s.Header), Dim("("+Plural(s.Len(), "shift")+")"))
	}
	return b.String()
}

// FormatTokens renders tokenizer output for the debug command.
func FormatTokens(tokens []domain.ShiftToken) string {
	headers := []string{"#", "CODE", "KIND"}
	rows := make([][]string, 0, len(tokens))
	for i, tok := range tokens {
		rows = append(rows, []string{
			strconv.Itoa(i + 1),
			ShiftCode(tok),
			Dim(string(tok.Kind)),
		})
	}
	return RenderTable(headers, rows) + "\n" + Dim(Plural(len(tokens), "token")) + "\n"
}
