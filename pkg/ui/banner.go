package ui

import (
	"fmt"
	"strings"
)

const (
	reset     = "\033[0m"
	bold      = "\033[1m"
	accent    = "\033[38;5;208m"
	dimGray   = "\033[38;5;244m"
	homepage  = "https://tools.psychob.pl/nwc-waybar/"
	copyright = "© 2025 Andrzej Budzanowski"
)

// Banner renders the version header shown above --help. Colors are only
// emitted when color is set, so piped output stays plain.
func Banner(app, version string, color bool) string {
	var b strings.Builder
	if color {
		fmt.Fprintf(&b, "%s%s%s%s ver: %s\n", bold, accent, app, reset, version)
		fmt.Fprintf(&b, "%s%s %s%s\n", dimGray, copyright, homepage, reset)
		return b.String()
	}
	fmt.Fprintf(&b, "%s ver: %s\n", app, version)
	fmt.Fprintf(&b, "%s %s\n", copyright, homepage)
	return b.String()
}
