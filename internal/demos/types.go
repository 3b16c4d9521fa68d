package demos

import (
	"context"
	"fmt"
	"io"
	"sort"
	"time"

	"demohost/pkg/harness"
)

// CountingSettings configures the counting scenario.
type CountingSettings struct {
	Limit int
	Delay time.Duration
}

// SleepSettings configures the sleep scenario.
type SleepSettings struct {
	Duration time.Duration
}

// TicTacToeSettings configures the board geometry and animation speed.
// Seed 0 picks a time based seed.
type TicTacToeSettings struct {
	Rows  int
	Cols  int
	Win   int
	Delay time.Duration
	Seed  uint64
}

// FaultySettings configures after how many steps the faulty scenario fails.
type FaultySettings struct {
	FailAfter int
	Delay     time.Duration
}

// Settings holds the configuration of every demo.
type Settings struct {
	Counting  CountingSettings
	Sleep     SleepSettings
	TicTacToe TicTacToeSettings
	Faulty    FaultySettings
}

// DefaultSettings returns the settings used when nothing is configured.
func DefaultSettings() Settings {
	return Settings{
		Counting:  CountingSettings{Limit: 10, Delay: 500 * time.Millisecond},
		Sleep:     SleepSettings{Duration: 5 * time.Second},
		TicTacToe: TicTacToeSettings{Rows: 3, Cols: 3, Win: 3, Delay: 400 * time.Millisecond},
		Faulty:    FaultySettings{FailAfter: 3, Delay: 300 * time.Millisecond},
	}
}

// Factory builds a scenario writing to w.
type Factory func(w io.Writer, s Settings) (harness.Scenario, error)

// Registry holds available scenarios.
var Registry = make(map[string]Factory)

// Register adds a scenario factory to the registry.
func Register(name string, f Factory) {
	Registry[name] = f
}

// Lookup returns the factory registered under name.
func Lookup(name string) (Factory, bool) {
	f, ok := Registry[name]
	return f, ok
}

// Names returns the registered scenario names in menu order.
func Names() []string {
	names := make([]string, 0, len(Registry))
	for name := range Registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Build creates the named scenarios, or all of them when names is empty.
func Build(w io.Writer, s Settings, names ...string) ([]harness.Scenario, error) {
	if len(names) == 0 {
		names = Names()
	}

	scenarios := make([]harness.Scenario, 0, len(names))
	for _, name := range names {
		factory, ok := Lookup(name)
		if !ok {
			return nil, fmt.Errorf("unknown scenario %q (available: %v)", name, Names())
		}
		sc, err := factory(w, s)
		if err != nil {
			return nil, fmt.Errorf("build scenario %q: %w", name, err)
		}
		scenarios = append(scenarios, sc)
	}
	return scenarios, nil
}

// pause waits for d or until ctx is done.
func pause(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
