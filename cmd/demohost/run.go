package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"

	"demohost/internal/config"
	"demohost/internal/demos"
	"demohost/internal/metrics"
	"demohost/internal/telemetry"
	"demohost/internal/ui"
	"demohost/pkg/harness"
)

type terminalIO struct {
	in     io.Reader
	out    io.Writer
	errOut io.Writer
}

// runInteractive is replaced in tests that must not reach the menu.
var runInteractive = runMenu

// engineOptions are appended to the engine options, for tests.
var engineOptions []harness.Option

func runMenu(ctx context.Context, s config.Settings, tio terminalIO) error {
	closeLog := telemetry.InitLogger(tio.errOut, s.Debug, s.LogFile)
	defer closeLog()

	scenarios, err := demos.Build(tio.out, s.Demos, s.Scenarios...)
	if err != nil {
		return err
	}

	console, err := newConsole(s.UI, tio.in, tio.out)
	if err != nil {
		return err
	}
	if c, ok := console.(io.Closer); ok {
		defer c.Close()
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	m := metrics.NewMetrics()
	if s.MetricsAddr != "" {
		go func() {
			if err := telemetry.StartMetricsServer(ctx, s.MetricsAddr, m.Handler()); err != nil {
				slog.Warn("metrics server stopped", "addr", s.MetricsAddr, "error", err)
			}
		}()
	}

	cfg := s.Harness()
	if !cfg.ExitOnInterruptWhenIdle {
		cfg.OnIdleInterrupt = func() {
			fmt.Fprintln(tio.out, "\nInterrupt ignored at the menu; choose q to quit.")
		}
	}

	actions := []harness.MenuAction{
		ui.HelpAction(tio.out, s.Title, s.HelpStyle),
		ui.ClearAction(termenv.NewOutput(tio.out)),
	}

	opts := append([]harness.Option{
		harness.WithLogger(slog.Default()),
		harness.WithObserver(m),
		harness.WithExit(exit),
	}, engineOptions...)

	fmt.Fprintln(tio.out, ui.Banner())
	slog.Debug("starting menu", "scenarios", len(scenarios), "ui", s.UI)
	return harness.NewEngine(cfg, console, opts...).Run(ctx, scenarios, actions)
}

// newConsole picks the console for the ui mode. auto uses the list console
// when both ends are terminals.
func newConsole(mode string, in io.Reader, out io.Writer) (harness.Console, error) {
	switch mode {
	case config.UILine:
		return ui.NewLineConsole(in, out), nil
	case config.UIList:
		fin, okIn := in.(*os.File)
		fout, okOut := out.(*os.File)
		if !okIn || !okOut {
			return nil, fmt.Errorf("ui %q needs a terminal on stdin and stdout", mode)
		}
		return ui.NewListConsole(fin, fout), nil
	case config.UIAuto, "":
		fin, okIn := in.(*os.File)
		fout, okOut := out.(*os.File)
		if okIn && okOut && isTerminal(fin) && isTerminal(fout) {
			return ui.NewListConsole(fin, fout), nil
		}
		return ui.NewLineConsole(in, out), nil
	default:
		return nil, fmt.Errorf("unknown ui %q", mode)
	}
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
