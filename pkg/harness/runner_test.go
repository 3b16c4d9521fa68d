package harness

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunner_Completed(t *testing.T) {
	slot := &RunSlot{}
	obs := &recordingObserver{}
	r := NewRunner(slot, nil, obs)

	var busyDuringRun bool
	out := r.Execute(context.Background(), ScenarioFunc("ok", func(ctx context.Context) error {
		busyDuringRun = slot.Busy()
		return nil
	}))

	assert.Equal(t, Completed, out.Kind)
	assert.NoError(t, out.Err)
	assert.True(t, busyDuringRun)
	assert.False(t, slot.Busy())
	assert.Equal(t, []string{"ok"}, obs.started)
	require.Len(t, obs.Outcomes(), 1)
	assert.Equal(t, Completed, obs.Outcomes()[0].Kind)
}

func TestRunner_Failed(t *testing.T) {
	slot := &RunSlot{}
	r := NewRunner(slot, nil, nil)
	boom := errors.New("boom")

	out := r.Execute(context.Background(), ScenarioFunc("bad", func(ctx context.Context) error {
		return fmt.Errorf("step 3: %w", boom)
	}))

	assert.Equal(t, Failed, out.Kind)
	assert.ErrorIs(t, out.Err, boom)
	assert.False(t, slot.Busy())
}

func TestRunner_PanicIsFailure(t *testing.T) {
	slot := &RunSlot{}
	r := NewRunner(slot, nil, nil)

	out := r.Execute(context.Background(), ScenarioFunc("panicky", func(ctx context.Context) error {
		panic("kaboom")
	}))

	assert.Equal(t, Failed, out.Kind)
	assert.Contains(t, out.Err.Error(), "kaboom")
	assert.False(t, slot.Busy())
}

func TestRunner_CancelledBySession(t *testing.T) {
	slot := &RunSlot{}
	r := NewRunner(slot, nil, nil)
	session, cancel := context.WithCancel(context.Background())
	defer cancel()

	started := make(chan struct{})
	go func() {
		<-started
		cancel()
	}()

	out := r.Execute(session, ScenarioFunc("wait", func(ctx context.Context) error {
		close(started)
		<-ctx.Done()
		return ctx.Err()
	}))

	assert.Equal(t, Cancelled, out.Kind)
	assert.False(t, slot.Busy())
}

func TestRunner_CancelledThroughSlot(t *testing.T) {
	slot := &RunSlot{}
	r := NewRunner(slot, nil, nil)

	started := make(chan struct{})
	go func() {
		<-started
		_, ok := slot.Cancel()
		assert.True(t, ok)
	}()

	out := r.Execute(context.Background(), ScenarioFunc("wait", func(ctx context.Context) error {
		close(started)
		select {
		case <-ctx.Done():
			return fmt.Errorf("stopped early: %w", ctx.Err())
		case <-time.After(5 * time.Second):
			return errors.New("never cancelled")
		}
	}))

	assert.Equal(t, Cancelled, out.Kind)
	assert.False(t, slot.Busy())
}

func TestRunner_ErrorAfterCancellationIsCancelled(t *testing.T) {
	slot := &RunSlot{}
	r := NewRunner(slot, nil, nil)
	session, cancel := context.WithCancel(context.Background())
	cancel()

	out := r.Execute(session, ScenarioFunc("late", func(ctx context.Context) error {
		return errors.New("disk full")
	}))

	assert.Equal(t, Cancelled, out.Kind)
	assert.EqualError(t, out.Err, "disk full")
}

func TestRunner_ReturnWithoutErrorAfterCancelIsCancelled(t *testing.T) {
	slot := &RunSlot{}
	r := NewRunner(slot, nil, nil)
	session, cancel := context.WithCancel(context.Background())
	cancel()

	out := r.Execute(session, ScenarioFunc("quiet", func(ctx context.Context) error {
		return nil
	}))

	assert.Equal(t, Cancelled, out.Kind)
	assert.NoError(t, out.Err)
}

func TestRunner_ScopesAreNotReused(t *testing.T) {
	slot := &RunSlot{}
	r := NewRunner(slot, nil, nil)

	started := make(chan struct{})
	go func() {
		<-started
		slot.Cancel()
	}()
	first := r.Execute(context.Background(), ScenarioFunc("first", func(ctx context.Context) error {
		close(started)
		<-ctx.Done()
		return ctx.Err()
	}))
	require.Equal(t, Cancelled, first.Kind)

	second := r.Execute(context.Background(), ScenarioFunc("second", func(ctx context.Context) error {
		return ctx.Err()
	}))
	assert.Equal(t, Completed, second.Kind)
}

func TestOutcomeKind_String(t *testing.T) {
	assert.Equal(t, "completed", Completed.String())
	assert.Equal(t, "cancelled", Cancelled.String())
	assert.Equal(t, "failed", Failed.String())
	assert.Equal(t, "OutcomeKind(9)", OutcomeKind(9).String())
}
