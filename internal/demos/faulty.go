package demos

import (
	"context"
	"errors"
	"fmt"
	"io"

	"demohost/pkg/harness"
)

// ErrFaulty is returned by the faulty scenario when it reaches its failure
// step.
var ErrFaulty = errors.New("simulated failure")

func init() {
	Register("faulty", func(w io.Writer, s Settings) (harness.Scenario, error) {
		if s.Faulty.FailAfter < 1 {
			return nil, errors.New("faulty fail_after must be positive")
		}
		return &FaultyScenario{Out: w, Settings: s.Faulty}, nil
	})
}

// FaultyScenario works for FailAfter steps and then fails.
type FaultyScenario struct {
	Out      io.Writer
	Settings FaultySettings
}

func (s *FaultyScenario) Name() string {
	return "faulty"
}

func (s *FaultyScenario) Run(ctx context.Context) error {
	for step := 1; ; step++ {
		if step == s.Settings.FailAfter {
			return fmt.Errorf("step %d: %w", step, ErrFaulty)
		}
		fmt.Fprintf(s.Out, "step %d ok\n", step)
		if err := pause(ctx, s.Settings.Delay); err != nil {
			return err
		}
	}
}
