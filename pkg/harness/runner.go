package harness

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"
)

// OutcomeKind classifies how a scenario run ended.
type OutcomeKind int

const (
	Completed OutcomeKind = iota
	Cancelled
	Failed
)

func (k OutcomeKind) String() string {
	switch k {
	case Completed:
		return "completed"
	case Cancelled:
		return "cancelled"
	case Failed:
		return "failed"
	default:
		return fmt.Sprintf("OutcomeKind(%d)", int(k))
	}
}

// Outcome is the result of Runner.Execute. Err is set for Failed and, when
// the scenario returned one, for Cancelled.
type Outcome struct {
	Kind    OutcomeKind
	Err     error
	Elapsed time.Duration
}

// Runner executes one scenario at a time inside a fresh cancellation scope.
type Runner struct {
	slot     *RunSlot
	logger   *slog.Logger
	observer Observer
}

// NewRunner creates a Runner publishing its scopes into slot.
func NewRunner(slot *RunSlot, logger *slog.Logger, observer Observer) *Runner {
	if logger == nil {
		logger = slog.Default()
	}
	if observer == nil {
		observer = NopObserver{}
	}
	return &Runner{slot: slot, logger: logger, observer: observer}
}

// Execute runs s with a context derived from ctx. The slot is empty again
// and the derived context released by the time Execute returns.
//
// Once the run context has been cancelled the outcome is Cancelled whatever
// the scenario returned; a late error is logged, not reported as a failure.
func (r *Runner) Execute(ctx context.Context, s Scenario) Outcome {
	name := s.Name()
	r.logger.Debug("scenario starting", "scenario", name)
	r.observer.RunStarted(name)

	start := time.Now()
	cancelled, err := r.runScoped(ctx, s)
	out := Outcome{Err: err, Elapsed: time.Since(start)}

	switch {
	case cancelled || errors.Is(err, context.Canceled):
		out.Kind = Cancelled
		if err != nil && !errors.Is(err, context.Canceled) {
			r.logger.Debug("scenario error after cancellation", "scenario", name, "error", err)
		}
	case err != nil:
		out.Kind = Failed
	default:
		out.Kind = Completed
	}

	r.logger.Debug("scenario finished", "scenario", name, "outcome", out.Kind.String(), "elapsed", out.Elapsed)
	r.observer.RunFinished(name, out)
	return out
}

func (r *Runner) runScoped(ctx context.Context, s Scenario) (cancelled bool, err error) {
	runCtx, cancel := context.WithCancel(ctx)
	scope := r.slot.publish(s.Name(), cancel)
	defer func() {
		r.slot.clear(scope)
		cancel()
	}()
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("scenario %q panicked: %v", s.Name(), p)
			cancelled = runCtx.Err() != nil
		}
	}()

	err = s.Run(runCtx)
	return runCtx.Err() != nil, err
}
