package harness

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"sync/atomic"
)

// State is a step of the menu loop.
type State int32

const (
	Idle State = iota
	Rendering
	AwaitingInput
	DispatchingAction
	DispatchingScenario
	Pausing
	Stopped
)

var stateNames = [...]string{
	Idle:                "idle",
	Rendering:           "rendering",
	AwaitingInput:       "awaiting-input",
	DispatchingAction:   "dispatching-action",
	DispatchingScenario: "dispatching-scenario",
	Pausing:             "pausing",
	Stopped:             "stopped",
}

func (s State) String() string {
	if s >= 0 && int(s) < len(stateNames) {
		return stateNames[s]
	}
	return "State(" + strconv.Itoa(int(s)) + ")"
}

// QuitKey ends the session when entered at the menu.
const QuitKey = "q"

// EntryKind tells menu entries apart.
type EntryKind int

const (
	EntryScenario EntryKind = iota
	EntryAction
	EntryQuit
)

// MenuEntry is one line of the rendered menu.
type MenuEntry struct {
	Key   string
	Label string
	Kind  EntryKind
}

// MenuView is what a Console renders.
type MenuView struct {
	Title   string
	Entries []MenuEntry
}

// Console is the terminal the menu loop talks to. ReadSelection and
// WaitForAck return io.EOF when input is exhausted and ErrInterrupted when
// the user pressed Ctrl+C while the console owned the terminal.
type Console interface {
	ShowMenu(view MenuView) error
	ReadSelection(ctx context.Context) (string, error)
	ShowFailure(name string, err error)
	WaitForAck(ctx context.Context) error
}

// selection is the tagged variant a key resolves to.
type selection struct {
	kind     EntryKind
	scenario Descriptor
	action   MenuAction
}

// MenuLoop is the render, select, dispatch, pause cycle.
type MenuLoop struct {
	title       string
	scenarios   []Descriptor
	actions     []MenuAction
	console     Console
	runner      *Runner
	coordinator *Coordinator
	logger      *slog.Logger
	onState     func(State)

	state atomic.Int32
}

// NewMenuLoop wires a loop. Menus should be validated with ValidateMenu first.
func NewMenuLoop(title string, scenarios []Descriptor, actions []MenuAction, console Console, runner *Runner, coordinator *Coordinator, logger *slog.Logger) *MenuLoop {
	if logger == nil {
		logger = slog.Default()
	}
	return &MenuLoop{
		title:       title,
		scenarios:   scenarios,
		actions:     actions,
		console:     console,
		runner:      runner,
		coordinator: coordinator,
		logger:      logger,
	}
}

// OnState registers a callback invoked on every state transition.
func (l *MenuLoop) OnState(fn func(State)) {
	l.onState = fn
}

// State returns the current state. Safe for concurrent use.
func (l *MenuLoop) State() State {
	return State(l.state.Load())
}

func (l *MenuLoop) enter(s State) {
	l.state.Store(int32(s))
	if l.onState != nil {
		l.onState(s)
	}
}

// Run drives the loop until quit, end of input or cancellation of ctx. The
// last two are not errors. Scenario failures are shown and the loop goes on.
func (l *MenuLoop) Run(ctx context.Context) error {
	l.enter(Idle)
	defer l.enter(Stopped)

	for ctx.Err() == nil {
		l.enter(Rendering)
		view, table := l.build()
		if err := l.console.ShowMenu(view); err != nil {
			return fmt.Errorf("render menu: %w", err)
		}

		l.enter(AwaitingInput)
		input, err := l.console.ReadSelection(ctx)
		switch next, err := l.checkInput(ctx, err); next {
		case inputStop:
			return err
		case inputRetry:
			continue
		}

		sel, ok := table[normalizeKey(input)]
		if !ok {
			l.logger.Debug("ignoring unknown selection", "input", input)
			continue
		}

		switch sel.kind {
		case EntryQuit:
			return nil
		case EntryAction:
			l.enter(DispatchingAction)
			sel.action.Invoke()
		case EntryScenario:
			l.enter(DispatchingScenario)
			l.dispatch(ctx, sel.scenario)
		}

		if ctx.Err() != nil {
			return nil
		}

		l.enter(Pausing)
		if next, err := l.checkInput(ctx, l.console.WaitForAck(ctx)); next == inputStop {
			return err
		}
	}
	return nil
}

type inputResult int

const (
	inputOK inputResult = iota
	inputRetry
	inputStop
)

func (l *MenuLoop) checkInput(ctx context.Context, err error) (inputResult, error) {
	switch {
	case err == nil:
		return inputOK, nil
	case ctx.Err() != nil, errors.Is(err, io.EOF):
		return inputStop, nil
	case errors.Is(err, ErrInterrupted):
		// The console swallowed Ctrl+C in raw mode; nothing is running.
		if l.coordinator != nil {
			l.coordinator.HandleInterrupt()
		}
		return inputRetry, nil
	default:
		return inputStop, fmt.Errorf("read input: %w", err)
	}
}

func (l *MenuLoop) dispatch(ctx context.Context, d Descriptor) {
	out := l.runner.Execute(ctx, d.Scenario)
	switch out.Kind {
	case Failed:
		l.logger.Warn("scenario failed", "scenario", d.Name, "error", out.Err)
		l.console.ShowFailure(d.Name, out.Err)
	case Cancelled:
		l.logger.Debug("scenario cancelled", "scenario", d.Name)
	}
}

// build returns the view and the key table for one render.
func (l *MenuLoop) build() (MenuView, map[string]selection) {
	view := MenuView{Title: l.title}
	table := make(map[string]selection, len(l.scenarios)+len(l.actions)+1)

	for i, d := range l.scenarios {
		key := strconv.Itoa(i + 1)
		view.Entries = append(view.Entries, MenuEntry{Key: key, Label: d.Name, Kind: EntryScenario})
		table[key] = selection{kind: EntryScenario, scenario: d}
	}
	for _, a := range l.actions {
		key := normalizeKey(a.Key)
		view.Entries = append(view.Entries, MenuEntry{Key: key, Label: a.Label, Kind: EntryAction})
		table[key] = selection{kind: EntryAction, action: a}
	}
	view.Entries = append(view.Entries, MenuEntry{Key: QuitKey, Label: "Quit", Kind: EntryQuit})
	table[QuitKey] = selection{kind: EntryQuit}
	table["quit"] = selection{kind: EntryQuit}

	return view, table
}
