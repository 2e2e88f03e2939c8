package report

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/psychob/nwc-waybar/pkg/types"
)

func TestRenderRankings(t *testing.T) {
	top := []types.ProcessRecord{{PID: 42, Name: "a&b", Icon: "*", ResidentBytes: 2048}}
	groups := []types.ProcessRecord{{PID: 7, Name: "kitty", Icon: "K", GroupBytes: 3 << 20}}

	want := "<b>Top processes</b>\n" +
		" * 42: <b>a&amp;b</b> (2.00 KiB)\n" +
		"\n<b>Top process groups</b>\n" +
		" K 7: <b>kitty</b> (3.00 MiB)\n" +
		"\n"
	assert.Equal(t, want, RenderRankings(top, groups))
}

func TestFooter(t *testing.T) {
	st := Status{
		LastUpdate: time.Date(2026, 10, 15, 9, 5, 7, 0, time.UTC),
		Age:        3 * time.Second,
		NextIn:     12 * time.Second,
	}
	assert.Equal(t, "<i>Last updated: 09:05:07 (3s ago)</i> | <i>Next update in: 12s</i>", Footer(st))
	assert.Equal(t, "<i>Last updated: never</i> | <i>Next update in: 1s</i>", Footer(Status{NextIn: time.Second}))
}
