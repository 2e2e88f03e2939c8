package duration

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormat(t *testing.T) {
	cases := []struct {
		name     string
		seconds  int64
		full     string
		stripped string
	}{
		{"zero", 0, "0s", "0s"},
		{"secondsOnly", 42, "42s", "42s"},
		{"minutes", 65, "1m 05s", "1m"},
		{"hour", 3600, "1h 00m 00s", "1h 00m"},
		{"dayAndHour", 90000, "1d 01h 00m 00s", "1d 01h 00m"},
		{"mixed", 93784, "1d 02h 03m 04s", "1d 02h 03m"},
		{"month", secondsPerMonth + secondsPerDay, "1mo 1d 00h 00m 00s", "1mo 1d 00h 00m"},
		{"year", secondsPerYear + 61, "1y 0mo 0d 00h 01m 01s", "1y 0mo 0d 00h 01m"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			d := time.Duration(tc.seconds) * time.Second
			assert.Equal(t, tc.full, Format(d, false))
			assert.Equal(t, tc.stripped, Format(d, true))
		})
	}
}

func TestFormatIsDeterministic(t *testing.T) {
	for s := int64(0); s < 200000; s += 997 {
		d := time.Duration(s) * time.Second
		assert.Equal(t, Format(d, false), Format(d, false))
	}
}

func TestFormatClampsNegativeAndTruncatesFractions(t *testing.T) {
	assert.Equal(t, "0s", Format(-5*time.Second, false))
	assert.Equal(t, "0s", Format(900*time.Millisecond, true))
	assert.Equal(t, "1m 01s", Format(61*time.Second+999*time.Millisecond, false))
}

func TestSince(t *testing.T) {
	start := time.Date(2026, 1, 1, 8, 0, 0, 0, time.UTC)
	assert.Equal(t, "2h 30m", Since(start, start.Add(150*time.Minute), true))
}
