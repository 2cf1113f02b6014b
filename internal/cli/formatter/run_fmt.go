package formatter

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alexanderramin/shiftroster/internal/domain"
)

const runTimeLayout = "2006-01-02 15:04"

// FormatRunList renders the run history table, newest first as given.
func FormatRunList(runs []*domain.ExtractionRun) string {
	headers := []string{"ID", "CREATED", "STATUS", "STAFF", "WARNINGS", "SOURCE"}
	rows := make([][]string, 0, len(runs))

	for _, r := range runs {
		warnings := strconv.Itoa(r.WarningCount)
		if r.WarningCount > 0 {
			warnings = StyleYellow.Render(warnings)
		}
		rows = append(rows, []string{
			TruncID(r.ID),
			r.CreatedAt.UTC().Format(runTimeLayout),
			RunStatusPill(r.Status),
			strconv.Itoa(r.StaffCount),
			warnings,
			r.SourcePath,
		})
	}

	return RenderTable(headers, rows)
}

// FormatRunDetail renders a run card followed by its roster and warnings.
func FormatRunDetail(d *domain.RunDetail) string {
	var meta strings.Builder
	r := d.Run
	output := r.OutputPath
	if output == "" {
		output = "--"
	}
	fmt.Fprintf(&meta, "%s  %s\n", StyleDim.Render("ID      "), r.ID)
	fmt.Fprintf(&meta, "%s  %s %s\n", StyleDim.Render("CREATED "),
		r.CreatedAt.UTC().Format(runTimeLayout), Dim("("+HumanTimestamp(r.CreatedAt)+")"))
	fmt.Fprintf(&meta, "%s  %s\n", StyleDim.Render("STATUS  "), RunStatusPill(r.Status))
	fmt.Fprintf(&meta, "%s  %s\n", StyleDim.Render("SOURCE  "), r.SourcePath)
	fmt.Fprintf(&meta, "%s  %s\n", StyleDim.Render("OUTPUT  "), output)
	fmt.Fprintf(&meta, "%s  %s", StyleDim.Render("TARGETS "), strings.Join(r.TargetNames, ", "))

	var b strings.Builder
	b.WriteString(RenderBox("Run", meta.String()))
	b.WriteString("\n\n")

	if len(d.Schedules) > 0 {
		b.WriteString(FormatHeaders(d.Schedules))
		b.WriteString("\n")
		b.WriteString(FormatSchedule(d.Schedules))
	} else {
		b.WriteString(Dim("No schedules were recorded for this run.") + "\n")
	}

	if len(d.Warnings) > 0 {
		b.WriteString("\n")
		b.WriteString(FormatWarnings(d.Warnings))
	}
	return b.String()
}

// FormatWarnings renders per-staff skip diagnostics.
func FormatWarnings(warnings []domain.Warning) string {
	var b strings.Builder
	b.WriteString(Header("Warnings"))
	b.WriteString("\n")
	for _, w := range warnings {
		fmt.Fprintf(&b, "  %s %s\n", StyleYellow.Render("!"), w.Message())
	}
	return b.String()
}
