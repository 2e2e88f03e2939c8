// Package config wires the flags shared by every provider into viper, so each
// setting can come from the command line, an NWC_* environment variable or a
// YAML config file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// DefaultInterval is the pause between two iterations.
const DefaultInterval = time.Second

const (
	KeyConfig   = "config"
	KeyOnce     = "once"
	KeyInterval = "interval"
	KeyText     = "text"
	KeyAlt      = "alt"
	KeyTooltip  = "tooltip"
	KeyLogLevel = "log-level"
	KeyLogFile  = "log-file"
)

// Templates are the three strings a provider expands on every iteration.
type Templates struct {
	Text    string
	Alt     string
	Tooltip string
}

// Options are the settings shared by every provider.
type Options struct {
	Once      bool
	Interval  time.Duration
	Templates Templates
	LogLevel  string
	LogFile   string
}

// userConfigDir allows tests to point the default config lookup elsewhere.
var userConfigDir = os.UserConfigDir

// Bind registers the shared flags on cmd with the provider's default templates
// and binds every flag of cmd into v. Call it after the provider registered its
// own flags.
func Bind(cmd *cobra.Command, v *viper.Viper, defaults Templates) error {
	flags := cmd.Flags()
	addShared(flags, cmd.Name(), defaults)

	v.SetEnvPrefix("NWC")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if err := v.BindPFlags(flags); err != nil {
		return fmt.Errorf("binding flags: %w", err)
	}
	return nil
}

func addShared(flags *pflag.FlagSet, app string, defaults Templates) {
	flags.String(KeyConfig, "", "YAML config file (default $XDG_CONFIG_HOME/nwc-waybar/"+app+".yaml)")
	flags.Bool(KeyOnce, false, "run only once")
	flags.IntP(KeyInterval, "i", int(DefaultInterval/time.Millisecond), "interval between fetches in milliseconds")
	flags.String(KeyText, defaults.Text, "template of the text field")
	flags.String(KeyAlt, defaults.Alt, "template of the alt field")
	flags.String(KeyTooltip, defaults.Tooltip, "template of the tooltip field")
	flags.String(KeyLogLevel, "warn", "log level (debug, info, warn, error)")
	flags.String(KeyLogFile, "", "also write logs to this file, rotated by size")
}

// Load reads the config file, if any, and returns the shared options. An
// explicit --config must exist; the default location is optional.
func Load(v *viper.Viper, app string) (Options, error) {
	if path := v.GetString(KeyConfig); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Options{}, fmt.Errorf("reading config %s: %w", path, err)
		}
	} else if dir, err := userConfigDir(); err == nil {
		v.SetConfigFile(filepath.Join(dir, "nwc-waybar", app+".yaml"))
		if err := v.ReadInConfig(); err != nil && !errors.Is(err, os.ErrNotExist) {
			return Options{}, fmt.Errorf("reading default config: %w", err)
		}
	}

	interval := time.Duration(v.GetInt(KeyInterval)) * time.Millisecond
	if interval <= 0 {
		interval = DefaultInterval
	}
	return Options{
		Once:     v.GetBool(KeyOnce),
		Interval: interval,
		Templates: Templates{
			Text:    v.GetString(KeyText),
			Alt:     v.GetString(KeyAlt),
			Tooltip: v.GetString(KeyTooltip),
		},
		LogLevel: v.GetString(KeyLogLevel),
		LogFile:  v.GetString(KeyLogFile),
	}, nil
}
