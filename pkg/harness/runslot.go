package harness

import (
	"context"
	"sync/atomic"
)

// runScope is the cancellation handle of one scenario run. A scope is never
// reused: every run allocates a new one.
type runScope struct {
	id     uint64
	name   string
	cancel context.CancelFunc
}

// RunSlot holds the scope of the scenario currently executing, if any.
//
// The Runner is the only writer. The interrupt coordinator reads a snapshot
// and cancels it; because context.CancelFunc is idempotent, cancelling a
// snapshot whose run already finished does nothing.
type RunSlot struct {
	current atomic.Pointer[runScope]
	seq     atomic.Uint64
}

func (s *RunSlot) publish(name string, cancel context.CancelFunc) *runScope {
	scope := &runScope{id: s.seq.Add(1), name: name, cancel: cancel}
	s.current.Store(scope)
	return scope
}

// clear empties the slot if it still holds scope.
func (s *RunSlot) clear(scope *runScope) {
	s.current.CompareAndSwap(scope, nil)
}

// Busy reports whether a scenario is executing.
func (s *RunSlot) Busy() bool {
	return s.current.Load() != nil
}

// Current returns the name of the running scenario.
func (s *RunSlot) Current() (string, bool) {
	scope := s.current.Load()
	if scope == nil {
		return "", false
	}
	return scope.name, true
}

// Cancel requests cancellation of the running scenario and returns its name.
// It returns false when the slot was empty at the time of the read.
func (s *RunSlot) Cancel() (string, bool) {
	scope := s.current.Load()
	if scope == nil {
		return "", false
	}
	scope.cancel()
	return scope.name, true
}
