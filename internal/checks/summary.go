package checks

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"
)

// WriteSummary renders an aligned table of results after a run. Column
// widths use display width, not byte length, so multi-width runes in
// messages don't skew the borders.
func WriteSummary(w io.Writer, results []Result) {
	if len(results) == 0 {
		return
	}

	nameWidth := runewidth.StringWidth("CHECK")
	statusWidth := runewidth.StringWidth("STATUS")
	for _, r := range results {
		if width := runewidth.StringWidth(r.Name); width > nameWidth {
			nameWidth = width
		}
		if width := runewidth.StringWidth(r.Status.String()); width > statusWidth {
			statusWidth = width
		}
	}

	fmt.Fprintf(w, "\n%s  %s  %s\n", pad("CHECK", nameWidth), pad("STATUS", statusWidth), "MESSAGE")
	fmt.Fprintf(w, "%s  %s  %s\n", strings.Repeat("-", nameWidth), strings.Repeat("-", statusWidth), strings.Repeat("-", 7))
	for _, r := range results {
		fmt.Fprintf(w, "%s  %s  %s\n", pad(r.Name, nameWidth), pad(r.Status.String(), statusWidth), r.Message)
	}
}

// pad right-pads s with spaces to the given display width.
func pad(s string, width int) string {
	fill := width - runewidth.StringWidth(s)
	if fill <= 0 {
		return s
	}
	return s + strings.Repeat(" ", fill)
}
