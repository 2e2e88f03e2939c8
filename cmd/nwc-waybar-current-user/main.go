package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/psychob/nwc-waybar/pkg/config"
	"github.com/psychob/nwc-waybar/pkg/logging"
	"github.com/psychob/nwc-waybar/pkg/provider"
	"github.com/psychob/nwc-waybar/pkg/session"
	"github.com/psychob/nwc-waybar/pkg/ui"
	"github.com/psychob/nwc-waybar/pkg/waybar"
)

const app = "nwc-waybar-current-user"

// stdout receives the status lines; tests capture it.
var stdout io.Writer = os.Stdout

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

const (
	keyUptimeDynamic   = "uptime-dynamic"
	keyBootTimeDynamic = "dynamic-boot-time"
)

var defaultTemplates = config.Templates{
	Text:    "{icon} {name} {uptime}",
	Alt:     "{icon} {name} {boottime}",
	Tooltip: "uptime   : {uptime}\nboot time: {boottime}",
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
		Short:        "Report the current user and session uptime to waybar",
		Version:      version,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd.Context(), v)
		},
	}
	cmd.Flags().Bool(keyUptimeDynamic, true, "dynamically adapt time format for displaying uptime")
	cmd.Flags().Bool(keyBootTimeDynamic, true, "dynamically adapt time format for displaying boot time")
	if err := config.Bind(cmd, v, defaultTemplates); err != nil {
		panic(err)
	}

	placeholders := newResolver(&userProducers{}).Names()
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

	p := newUserProducers(ctx, log, v.GetBool(keyUptimeDynamic), v.GetBool(keyBootTimeDynamic))
	r := newResolver(p)
	runner := provider.Runner{
		Name:     "user",
		Interval: opts.Interval,
		Once:     opts.Once,
		Out:      waybar.NewEmitter(stdout),
		Log:      log,
	}
	for _, tmpl := range []string{opts.Templates.Text, opts.Templates.Alt, opts.Templates.Tooltip} {
		if err := r.Check(tmpl); err != nil {
			log.Error("invalid template", zap.String("template", tmpl), zap.Error(err))
			return runner.Fail(fmt.Errorf("template %q: %w", tmpl, err))
		}
	}

	return runner.Run(ctx, func(context.Context) (waybar.Line, error) {
		return expandLine(r, opts.Templates)
	})
}

func newUserProducers(ctx context.Context, log *zap.Logger, uptimeDynamic, bootDynamic bool) *userProducers {
	uid := os.Getuid()
	sources := session.Chain{
		session.Login1{SessionID: os.Getenv("XDG_SESSION_ID"), UID: uint32(uid)},
	}
	if acct, err := lookupAccount(uid); err == nil {
		sources = append(sources, session.Utmp{Username: acct.Username})
	} else {
		log.Info("utmp session lookup disabled", zap.Error(err))
	}

	return &userProducers{
		ctx:           ctx,
		uid:           os.Geteuid(),
		session:       session.NewMemo(sources),
		uptimeDynamic: uptimeDynamic,
		bootDynamic:   bootDynamic,
	}
}
