package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testTemplates = Templates{Text: "{icon} {name}", Alt: "{icon}", Tooltip: "{uptime}"}

func load(t *testing.T, args ...string) (Options, error) {
	t.Helper()
	dir := t.TempDir()
	t.Cleanup(func() { userConfigDir = os.UserConfigDir })
	userConfigDir = func() (string, error) { return dir, nil }

	cmd := &cobra.Command{Use: "nwc-test"}
	v := viper.New()
	require.NoError(t, Bind(cmd, v, testTemplates))
	require.NoError(t, cmd.Flags().Parse(args))
	return Load(v, "nwc-test")
}

func TestLoadDefaults(t *testing.T) {
	opts, err := load(t)
	require.NoError(t, err)
	assert.False(t, opts.Once)
	assert.Equal(t, DefaultInterval, opts.Interval)
	assert.Equal(t, testTemplates, opts.Templates)
	assert.Equal(t, "warn", opts.LogLevel)
}

func TestLoadFlags(t *testing.T) {
	opts, err := load(t, "--once", "-i", "250", "--text", "{name}", "--log-level", "debug")
	require.NoError(t, err)
	assert.True(t, opts.Once)
	assert.Equal(t, 250*time.Millisecond, opts.Interval)
	assert.Equal(t, "{name}", opts.Templates.Text)
	assert.Equal(t, testTemplates.Alt, opts.Templates.Alt)
	assert.Equal(t, "debug", opts.LogLevel)
}

func TestLoadNonPositiveIntervalFallsBack(t *testing.T) {
	opts, err := load(t, "--interval", "0")
	require.NoError(t, err)
	assert.Equal(t, DefaultInterval, opts.Interval)
}

func TestLoadConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cfg.yaml")
	require.NoError(t, os.WriteFile(path, []byte("interval: 5000\nalt: \"{name}\"\ntext: from-file\n"), 0o644))

	opts, err := load(t, "--config", path, "--text", "from-flag")
	require.NoError(t, err)
	assert.Equal(t, 5*time.Second, opts.Interval)
	assert.Equal(t, "{name}", opts.Templates.Alt)
	assert.Equal(t, "from-flag", opts.Templates.Text, "explicit flags win over the file")
}

func TestLoadMissingExplicitConfig(t *testing.T) {
	_, err := load(t, "--config", filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadEnvironment(t *testing.T) {
	t.Setenv("NWC_LOG_LEVEL", "error")
	t.Setenv("NWC_ONCE", "true")

	opts, err := load(t)
	require.NoError(t, err)
	assert.Equal(t, "error", opts.LogLevel)
	assert.True(t, opts.Once)
}
