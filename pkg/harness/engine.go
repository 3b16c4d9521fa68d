package harness

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
)

// Engine is the composition root of an interactive session.
type Engine struct {
	cfg      Config
	console  Console
	signals  SignalSource
	exit     func(int)
	logger   *slog.Logger
	observer Observer
	onState  func(State)
}

// Option customises an Engine.
type Option func(*Engine)

// WithLogger sets the logger used by every component.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) { e.logger = logger }
}

// WithObserver sets the lifecycle observer.
func WithObserver(o Observer) Option {
	return func(e *Engine) { e.observer = o }
}

// WithSignalSource replaces os/signal, mostly for tests.
func WithSignalSource(s SignalSource) Option {
	return func(e *Engine) { e.signals = s }
}

// WithExit replaces os.Exit for the idle interrupt path.
func WithExit(exit func(int)) Option {
	return func(e *Engine) { e.exit = exit }
}

// WithStateObserver receives every menu loop state transition.
func WithStateObserver(fn func(State)) Option {
	return func(e *Engine) { e.onState = fn }
}

// NewEngine creates an Engine talking to console.
func NewEngine(cfg Config, console Console, opts ...Option) *Engine {
	e := &Engine{
		cfg:      cfg,
		console:  console,
		logger:   slog.Default(),
		observer: NopObserver{},
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Run validates the menu, then runs the session until quit or until ctx is
// cancelled. The interrupt coordinator is installed for exactly the lifetime
// of the loop.
func (e *Engine) Run(ctx context.Context, scenarios []Scenario, actions []MenuAction) error {
	descriptors, err := ValidateMenu(scenarios, actions)
	if err != nil {
		return err
	}

	session, cancel := context.WithCancel(ctx)
	defer cancel()

	slot := &RunSlot{}
	runner := NewRunner(slot, e.logger, e.observer)
	coordinator := NewCoordinator(slot, e.cfg, e.signals, e.exit, e.logger, e.observer)

	handle := coordinator.Install()
	defer coordinator.Uninstall(handle)

	loop := NewMenuLoop(e.cfg.Title, descriptors, actions, e.console, runner, coordinator, e.logger)
	loop.OnState(e.onState)

	e.logger.Debug("session starting", "scenarios", len(descriptors), "actions", len(actions), "interrupts", handle != nil)
	err = loop.Run(session)
	e.logger.Debug("session finished", "error", err)
	return err
}

// ValidateMenu checks a menu setup and returns the scenario descriptors in
// menu order. All problems are reported together in a *ConfigurationError.
func ValidateMenu(scenarios []Scenario, actions []MenuAction) ([]Descriptor, error) {
	var problems []error
	if len(scenarios) == 0 {
		problems = append(problems, ErrNoScenarios)
	}

	descriptors := make([]Descriptor, 0, len(scenarios))
	for i, s := range scenarios {
		if s == nil {
			problems = append(problems, fmt.Errorf("scenario %d is nil", i+1))
			continue
		}
		if s.Name() == "" {
			problems = append(problems, fmt.Errorf("scenario %d has no name", i+1))
		}
		descriptors = append(descriptors, Descriptor{Name: s.Name(), Scenario: s})
	}

	reserved := map[string]string{QuitKey: "quit", "quit": "quit"}
	for i := range scenarios {
		reserved[strconv.Itoa(i+1)] = "scenario " + strconv.Itoa(i+1)
	}

	seen := make(map[string]string, len(actions))
	for _, a := range actions {
		key := normalizeKey(a.Key)
		switch {
		case key == "":
			problems = append(problems, fmt.Errorf("action %q has an empty key", a.Label))
			continue
		case a.Invoke == nil:
			problems = append(problems, fmt.Errorf("action %q has no operation", a.Key))
		}
		if owner, ok := reserved[key]; ok {
			problems = append(problems, fmt.Errorf("action key %q collides with %s", a.Key, owner))
		}
		if label, ok := seen[key]; ok {
			problems = append(problems, fmt.Errorf("duplicate action key %q (%q and %q)", a.Key, label, a.Label))
		}
		seen[key] = a.Label
	}

	if len(problems) > 0 {
		return nil, &ConfigurationError{Err: errors.Join(problems...)}
	}
	return descriptors, nil
}
