// Package ui holds the presentation helpers shared by the providers: Pango
// markup for waybar tooltips, byte sizes and the --help banner.
package ui

import (
	"fmt"
	"strings"
)

var markupEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	"'", "&#39;",
	`"`, "&quot;",
)

// Escape makes s safe to embed in Pango markup.
func Escape(s string) string {
	return markupEscaper.Replace(s)
}

// Bold wraps already escaped markup in <b>.
func Bold(s string) string {
	return "<b>" + s + "</b>"
}

// Italic wraps already escaped markup in <i>.
func Italic(s string) string {
	return "<i>" + s + "</i>"
}

const (
	kibibyte = 1 << 10
	mebibyte = 1 << 20
	gibibyte = 1 << 30
)

// Bytes renders a byte count with binary units and two decimals, "0" for zero.
func Bytes(n uint64) string {
	switch {
	case n >= gibibyte:
		return fmt.Sprintf("%.2f GiB", float64(n)/gibibyte)
	case n >= mebibyte:
		return fmt.Sprintf("%.2f MiB", float64(n)/mebibyte)
	case n >= kibibyte:
		return fmt.Sprintf("%.2f KiB", float64(n)/kibibyte)
	case n == 0:
		return "0"
	default:
		return fmt.Sprintf("%d B", n)
	}
}
