package report

import (
	"fmt"
	"strings"
	"time"

	"github.com/psychob/nwc-waybar/pkg/duration"
	"github.com/psychob/nwc-waybar/pkg/types"
	"github.com/psychob/nwc-waybar/pkg/ui"
)

// RenderRankings renders both rankings as the process part of the tooltip.
func RenderRankings(top, groups []types.ProcessRecord) string {
	var b strings.Builder
	b.WriteString(ui.Bold("Top processes") + "\n")
	for _, r := range top {
		writeRow(&b, r, r.ResidentBytes)
	}
	b.WriteString("\n" + ui.Bold("Top process groups") + "\n")
	for _, r := range groups {
		writeRow(&b, r, r.GroupBytes)
	}
	b.WriteString("\n")
	return b.String()
}

func writeRow(b *strings.Builder, r types.ProcessRecord, bytes uint64) {
	fmt.Fprintf(b, " %s %d: %s (%s)\n", ui.Escape(r.Icon), r.PID, ui.Bold(ui.Escape(r.Name)), ui.Bytes(bytes))
}

// Footer renders the freshness line of a tooltip status.
func Footer(st Status) string {
	updated := "never"
	if !st.LastUpdate.IsZero() {
		updated = fmt.Sprintf("%s (%s ago)", st.LastUpdate.Format(time.TimeOnly), duration.Format(st.Age, false))
	}
	return ui.Italic("Last updated: "+updated) + " | " + ui.Italic("Next update in: "+duration.Format(st.NextIn, false))
}
