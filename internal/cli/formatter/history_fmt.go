package formatter

import (
	"strings"
	"time"

	"github.com/alexanderramin/emopath/internal/contract"
	"github.com/alexanderramin/emopath/internal/domain"
)

// FormatHistory renders journal entries newest first as a boxed table.
func FormatHistory(entries []contract.CheckInEntry, now time.Time) string {
	if len(entries) == 0 {
		return Dim("No check-ins recorded yet.") + "\n"
	}

	headers := []string{"ID", "WHEN", "HOW", "FROM", "REACHED", "ROUTE"}
	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		how := "named"
		if e.Method == domain.MethodAssessment {
			how = "check-in"
		}
		goal := Dim("no path")
		if e.Goal != "" {
			goal = StyleGreen.Render(e.Goal)
		}
		rows = append(rows, []string{
			TruncID(e.ID),
			HumanTimestamp(e.CreatedAt, now),
			how,
			e.Source,
			goal,
			Truncate(strings.Join(e.Steps, " -> "), 48),
		})
	}
	return RenderBox("Recent check-ins", RenderTable(headers, rows)) + "\n"
}
