package demos

import (
	"context"
	"errors"
	"fmt"
	"io"

	"demohost/pkg/harness"
)

func init() {
	Register("counting", func(w io.Writer, s Settings) (harness.Scenario, error) {
		if s.Counting.Limit < 1 {
			return nil, errors.New("counting limit must be positive")
		}
		return &CountingScenario{Out: w, Settings: s.Counting}, nil
	})
}

// CountingScenario prints 1..Limit, one number per step.
type CountingScenario struct {
	Out      io.Writer
	Settings CountingSettings
}

func (s *CountingScenario) Name() string {
	return "counting"
}

func (s *CountingScenario) Run(ctx context.Context) error {
	for i := 1; i <= s.Settings.Limit; i++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		fmt.Fprintf(s.Out, "%d\n", i)
		if i < s.Settings.Limit {
			if err := pause(ctx, s.Settings.Delay); err != nil {
				return err
			}
		}
	}
	fmt.Fprintf(s.Out, "Counted to %d.\n", s.Settings.Limit)
	return nil
}
