package harness

import (
	"context"
	"strings"
)

// Scenario is a selectable unit of interactive work.
//
// Run must return when ctx is done. Returning ctx.Err() (or an error wrapping
// it) is the conventional way to report a cooperative stop.
type Scenario interface {
	Name() string
	Run(ctx context.Context) error
}

type funcScenario struct {
	name string
	fn   func(ctx context.Context) error
}

func (s funcScenario) Name() string                  { return s.name }
func (s funcScenario) Run(ctx context.Context) error { return s.fn(ctx) }

// ScenarioFunc adapts a plain function to the Scenario interface.
func ScenarioFunc(name string, fn func(ctx context.Context) error) Scenario {
	return funcScenario{name: name, fn: fn}
}

// Descriptor pairs the name shown in the menu with the scenario behind it.
type Descriptor struct {
	Name     string
	Scenario Scenario
}

// MenuAction is a keyed menu entry that is not a scenario, e.g. "show help".
// Keys are matched case-insensitively.
type MenuAction struct {
	Key    string
	Label  string
	Invoke func()
}

func normalizeKey(key string) string {
	return strings.ToLower(strings.TrimSpace(key))
}
