// Package waybar writes the JSON lines consumed by waybar's custom modules.
package waybar

import (
	"fmt"
	"io"

	"github.com/bytedance/sonic"

	"github.com/psychob/nwc-waybar/pkg/ui"
)

// ErrorClass is the CSS class of lines reporting a failed iteration.
const ErrorClass = "error"

// Line is one status update.
type Line struct {
	Text       string `json:"text"`
	Alt        string `json:"alt"`
	Tooltip    string `json:"tooltip"`
	Class      string `json:"class"`
	Percentage int    `json:"percentage,omitempty"`
}

// ErrorLine reports a failed iteration so the bar shows that its data is
// stale instead of freezing on the last good line.
func ErrorLine(provider string, err error) Line {
	return Line{
		Text:    "⚠ " + provider,
		Alt:     "⚠",
		Tooltip: ui.Escape(err.Error()),
		Class:   ErrorClass,
	}
}

// lineAPI replaces invalid UTF-8 with U+FFFD; waybar drops markup that is not
// valid UTF-8.
var lineAPI = sonic.Config{ValidateString: true}.Froze()

// Emitter writes one JSON object per line.
type Emitter struct {
	w io.Writer
}

// NewEmitter returns an Emitter writing to w, usually os.Stdout. Each line is
// handed to w in a single Write call.
func NewEmitter(w io.Writer) *Emitter {
	return &Emitter{w: w}
}

// Emit encodes line and terminates it with a newline.
func (e *Emitter) Emit(line Line) error {
	buf, err := lineAPI.Marshal(line)
	if err != nil {
		return fmt.Errorf("encoding status line: %w", err)
	}
	buf = append(buf, '\n')
	if _, err := e.w.Write(buf); err != nil {
		return fmt.Errorf("writing status line: %w", err)
	}
	return nil
}
