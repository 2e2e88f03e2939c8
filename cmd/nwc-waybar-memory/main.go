package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/prometheus/procfs"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/psychob/nwc-waybar/pkg/collector/memory"
	"github.com/psychob/nwc-waybar/pkg/config"
	"github.com/psychob/nwc-waybar/pkg/logging"
	"github.com/psychob/nwc-waybar/pkg/provider"
	"github.com/psychob/nwc-waybar/pkg/report"
	"github.com/psychob/nwc-waybar/pkg/types"
	"github.com/psychob/nwc-waybar/pkg/ui"
	"github.com/psychob/nwc-waybar/pkg/waybar"
)

const app = "nwc-waybar-memory"

// stdout receives the status lines; tests capture it.
var stdout io.Writer = os.Stdout

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

const (
	keyTop          = "top"
	keyRefreshEvery = "refresh-every"
	keyIcons        = "icons"
	keyProcRoot     = "proc"
)

var defaultTemplates = config.Templates{
	Text:    "{icon} {used}/{total}",
	Alt:     "{icon} {used}",
	Tooltip: "<b>RAM</b>: {used}/{total} (cache: {cache} | buffers: {buffers})\n<b>SWAP</b>: {swap-used}/{swap-total}\n\n{processes}{updated}",
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newCommand().ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func newCommand() *cobra.Command {
	v := viper.New()
	cmd := &cobra.Command{
		Use:          app,
		Short:        "Report memory usage and the heaviest processes to waybar",
		Version:      version,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd.Context(), v)
		},
	}
	cmd.Flags().Int(keyTop, types.DefaultTopK, "number of processes listed per ranking")
	cmd.Flags().Int(keyRefreshEvery, types.DefaultRefreshEvery, "iterations between two process table walks")
	cmd.Flags().String(keyIcons, "", "YAML file mapping process names to icons, layered over the built-in table")
	cmd.Flags().String(keyProcRoot, procfs.DefaultMountPoint, "proc filesystem mount point")
	if err := config.Bind(cmd, v, defaultTemplates); err != nil {
		panic(err)
	}

	placeholders := newResolver(&sample{}).Names()
	cmd.Long = ui.Banner(app, version, term.IsTerminal(int(os.Stdout.Fd()))) +
		"\nPlaceholders: {" + strings.Join(placeholders, "}, {") + "}"
	return cmd
}

func run(ctx context.Context, v *viper.Viper) error {
	opts, err := config.Load(v, app)
	if err != nil {
		return err
	}
	log, err := logging.New(logging.Config{Level: opts.LogLevel, File: opts.LogFile})
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	runner := provider.Runner{
		Name:     "memory",
		Interval: opts.Interval,
		Once:     opts.Once,
		Out:      waybar.NewEmitter(stdout),
		Log:      log,
	}

	fs, err := procfs.NewFS(v.GetString(keyProcRoot))
	if err != nil {
		return runner.Fail(fmt.Errorf("opening proc filesystem: %w", err))
	}
	icons := memory.DefaultIcons()
	if path := v.GetString(keyIcons); path != "" {
		if icons, err = memory.LoadIcons(path); err != nil {
			return runner.Fail(err)
		}
	}

	cur := &sample{}
	r := newResolver(cur)
	for _, tmpl := range []string{opts.Templates.Text, opts.Templates.Alt, opts.Templates.Tooltip} {
		if err := r.Check(tmpl); err != nil {
			log.Error("invalid template", zap.String("template", tmpl), zap.Error(err))
			return runner.Fail(fmt.Errorf("template %q: %w", tmpl, err))
		}
	}

	it := &iteration{
		fs: fs,
		tracker: report.NewTracker(report.TrackerConfig{
			FS:           fs,
			Icons:        icons,
			Logger:       log,
			RefreshEvery: v.GetInt(keyRefreshEvery),
			TopK:         v.GetInt(keyTop),
			Interval:     opts.Interval,
		}),
		resolver:  r,
		templates: opts.Templates,
		cur:       cur,
		log:       log,
	}
	return runner.Run(ctx, it.run)
}
