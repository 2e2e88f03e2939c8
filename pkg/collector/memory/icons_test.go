package memory

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIconLookup(t *testing.T) {
	icons := DefaultIcons()
	assert.Equal(t, "\uf269", icons.Lookup("firefox"))
	assert.Equal(t, DefaultIcon, icons.Lookup("Firefox"), "lookup is exact")
	assert.Equal(t, DefaultIcon, icons.Lookup(""))
}

func TestLoadIconsOverlaysDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "icons.yaml")
	require.NoError(t, os.WriteFile(path, []byte("nvim: \"N\"\nbash: \"B\"\nsh: \"\"\n"), 0o644))

	icons, err := LoadIcons(path)
	require.NoError(t, err)
	assert.Equal(t, "N", icons.Lookup("nvim"))
	assert.Equal(t, "B", icons.Lookup("bash"))
	assert.Equal(t, DefaultIcon, icons.Lookup("sh"))
	assert.Equal(t, "\uf6be", icons.Lookup("kitty"))

	assert.Equal(t, "\uf120", DefaultIcons().Lookup("bash"), "defaults are not mutated")
}

func TestLoadIconsErrors(t *testing.T) {
	_, err := LoadIcons(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("- not\n- a map\n"), 0o644))
	_, err = LoadIcons(path)
	assert.Error(t, err)
}
