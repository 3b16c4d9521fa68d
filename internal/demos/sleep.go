package demos

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"demohost/pkg/harness"
)

func init() {
	Register("sleep", func(w io.Writer, s Settings) (harness.Scenario, error) {
		if s.Sleep.Duration <= 0 {
			return nil, errors.New("sleep duration must be positive")
		}
		return &SleepScenario{Out: w, Settings: s.Sleep}, nil
	})
}

// SleepScenario waits for the configured duration. Useful for trying Ctrl+C.
type SleepScenario struct {
	Out      io.Writer
	Settings SleepSettings
}

func (s *SleepScenario) Name() string {
	return "sleep"
}

func (s *SleepScenario) Run(ctx context.Context) error {
	fmt.Fprintf(s.Out, "Sleeping for %s (Ctrl+C to stop)...\n", s.Settings.Duration)
	start := time.Now()
	if err := pause(ctx, s.Settings.Duration); err != nil {
		fmt.Fprintf(s.Out, "Woken up after %s.\n", time.Since(start).Round(time.Millisecond))
		return err
	}
	fmt.Fprintln(s.Out, "Slept well.")
	return nil
}
