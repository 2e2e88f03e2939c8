package memory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleMeminfo = `MemTotal:       16000000 kB
MemFree:         2000000 kB
MemAvailable:    6000000 kB
Buffers:          300000 kB
Cached:          4000000 kB
SwapCached:            0 kB
SwapTotal:       8000000 kB
SwapFree:        7000000 kB
`

func TestReadMemInfo(t *testing.T) {
	fs, _ := writeProcFixture(t, sampleMeminfo)

	info, err := ReadMemInfo(fs)
	require.NoError(t, err)
	assert.Equal(t, uint64(16000000*1024), info.Total)
	assert.Equal(t, uint64(6000000*1024), info.Available)
	assert.Equal(t, uint64(10000000*1024), info.Used)
	assert.Equal(t, uint64(1000000*1024), info.SwapUsed)
	assert.Equal(t, uint64(4000000*1024), info.Cached)
	assert.Equal(t, uint64(300000*1024), info.Buffers)
	assert.InDelta(t, 62.5, info.UsedPercent(), 1e-9)
}

func TestReadMemInfoWithoutMemAvailable(t *testing.T) {
	fs, _ := writeProcFixture(t, "MemTotal: 1000 kB\nMemFree: 100 kB\nBuffers: 50 kB\nCached: 250 kB\n")

	info, err := ReadMemInfo(fs)
	require.NoError(t, err)
	assert.Equal(t, uint64(400*1024), info.Available)
	assert.Equal(t, uint64(600*1024), info.Used)
	assert.Zero(t, info.SwapTotal)
	assert.Zero(t, info.SwapUsed)
}

func TestReadMemInfoErrors(t *testing.T) {
	fs, _ := writeProcFixture(t, "")
	_, err := ReadMemInfo(fs)
	assert.Error(t, err, "missing meminfo file must fail")

	fs, _ = writeProcFixture(t, "MemFree: 100 kB\n")
	_, err = ReadMemInfo(fs)
	assert.ErrorIs(t, err, ErrMeminfoIncomplete)
}
