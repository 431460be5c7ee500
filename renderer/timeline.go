package renderer

import (
	"fmt"
	"strings"

	"github.com/etnz/folio"
	"github.com/etnz/folio/date"
)

// TimelineMarkdown renders the amounts invested per month and their current
// value. The last row is the selected month.
func TimelineMarkdown(months []folio.AggregateRow, cur string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Timeline\n\n")
	rows := make([][]string, 0, len(months))
	for _, m := range months {
		rows = append(rows, []string{
			date.Month(m.Key).Label(),
			Money(m.Invested, cur),
			Money(m.Value, cur),
			Money(m.Gain, cur),
			Pct(m.GainPct),
		})
	}
	table(&b, "lrrrr", []string{"Month", "Invested", "Value", "Gain", "Gain %"}, rows)
	return b.String()
}
