// Package duration renders elapsed time spans the way the status bar shows them.
package duration

import (
	"fmt"
	"strings"
	"time"
)

// Calendar units are averaged over the Gregorian cycle.
const (
	secondsPerMinute = 60
	secondsPerHour   = 60 * secondsPerMinute
	secondsPerDay    = 24 * secondsPerHour
	secondsPerYear   = 31556952 // 365.2425 days
	secondsPerMonth  = secondsPerYear / 12
)

type unit struct {
	value  int64
	suffix string
	padded bool
}

// Format renders d as "1d 02h 03m 04s". The leading unit is printed as is and
// every following clock unit is zero padded to two digits. With stripSeconds
// the seconds are dropped unless they are the only unit left. Sub-second
// precision is truncated and negative spans render as "0s".
func Format(d time.Duration, stripSeconds bool) string {
	total := int64(d / time.Second)
	if total <= 0 {
		return "0s"
	}

	years := total / secondsPerYear
	rem := total % secondsPerYear
	months := rem / secondsPerMonth
	rem %= secondsPerMonth
	days := rem / secondsPerDay
	rem %= secondsPerDay

	units := []unit{
		{years, "y", false},
		{months, "mo", false},
		{days, "d", false},
		{rem / secondsPerHour, "h", true},
		{rem % secondsPerHour / secondsPerMinute, "m", true},
		{rem % secondsPerMinute, "s", true},
	}

	lead := 0
	for units[lead].value == 0 {
		lead++
	}
	last := len(units) - 1
	if stripSeconds && lead < last {
		last--
	}

	parts := make([]string, 0, last-lead+1)
	for i := lead; i <= last; i++ {
		u := units[i]
		if i != lead && u.padded {
			parts = append(parts, fmt.Sprintf("%02d%s", u.value, u.suffix))
			continue
		}
		parts = append(parts, fmt.Sprintf("%d%s", u.value, u.suffix))
	}
	return strings.Join(parts, " ")
}

// Since formats the time elapsed between start and now.
func Since(start, now time.Time, stripSeconds bool) string {
	return Format(now.Sub(start), stripSeconds)
}
