package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"demohost/internal/config"
)

var exit = os.Exit

// Execute runs the root command. SIGTERM cancels the whole session; SIGINT
// is left to the harness.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		fmt.Fprintln(os.Stderr, "Run 'demohost --help' for usage.")
		stop()
		exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var cfgFile string

	cmd := &cobra.Command{
		Use:   "demohost",
		Short: "Interactive host for cancellable demo scenarios",
		Long: `demohost shows a numbered menu of demo scenarios and runs the one you
pick. Ctrl+C while a scenario runs stops only that scenario and returns to the
menu; Ctrl+C at the menu exits.`,
		Version:       version,
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := config.Load(cfgFile); err != nil {
				return err
			}
			applyNegatedFlags(cmd.Flags())
			if err := config.ValidateConfig(); err != nil {
				return err
			}
			return runInteractive(cmd.Context(), config.Current(), terminalIO{
				in:     cmd.InOrStdin(),
				out:    cmd.OutOrStdout(),
				errOut: cmd.ErrOrStderr(),
			})
		},
	}
	cmd.SetVersionTemplate("demohost version {{.Version}}\n")

	fs := cmd.PersistentFlags()
	fs.StringVar(&cfgFile, "config", "", "config file (default is ./config.yaml)")
	fs.Bool("debug", false, "Enable debug logging on stderr")
	fs.String("log-file", "", "Also write logs to this file")
	fs.String("metrics-addr", "", "Serve Prometheus metrics on this address, e.g. :2112")
	fs.String("ui", config.UIAuto, "Console: auto, line or list")
	fs.String("title", "", "Menu title")
	fs.StringSlice("scenario", nil, "Scenarios to offer, in menu order (default all)")
	fs.Bool("no-interrupt", false, "Do not intercept Ctrl+C")
	fs.Bool("no-exit-on-idle-interrupt", false, "Ignore Ctrl+C at the menu instead of exiting")
	bindFlags(fs)

	cmd.AddCommand(newVersionCmd(), newInitCmd())
	return cmd
}

// bindFlags connects the flags that map one to one onto config keys.
func bindFlags(fs *pflag.FlagSet) {
	for flag, key := range map[string]string{
		"debug":        config.KeyDebug,
		"log-file":     config.KeyLogFile,
		"metrics-addr": config.KeyMetricsAddr,
		"ui":           config.KeyUI,
		"title":        config.KeyTitle,
		"scenario":     config.KeyScenarios,
	} {
		_ = viper.BindPFlag(key, fs.Lookup(flag))
	}
}

// applyNegatedFlags turns the --no-* switches into config overrides. They
// only ever disable, so an unset flag leaves config and env alone.
func applyNegatedFlags(fs *pflag.FlagSet) {
	if on, _ := fs.GetBool("no-interrupt"); on {
		viper.Set(config.KeyHandleInterrupt, false)
	}
	if on, _ := fs.GetBool("no-exit-on-idle-interrupt"); on {
		viper.Set(config.KeyExitOnIdleInterrupt, false)
	}
}
