package harness

import (
	"context"
	"fmt"
	"io"
	"os"
	"sync"
)

// ctrlC makes scriptedConsole report ErrInterrupted.
const ctrlC = "\x03"

type scriptedConsole struct {
	mu       sync.Mutex
	inputs   []string
	block    bool
	menus    int
	acks     int
	events   []string
	lastView MenuView
}

func newScriptedConsole(inputs ...string) *scriptedConsole {
	return &scriptedConsole{inputs: inputs}
}

func (c *scriptedConsole) record(event string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.events = append(c.events, event)
}

func (c *scriptedConsole) Events() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]string(nil), c.events...)
}

func (c *scriptedConsole) ShowMenu(view MenuView) error {
	c.mu.Lock()
	c.menus++
	c.lastView = view
	c.mu.Unlock()
	return nil
}

func (c *scriptedConsole) ReadSelection(ctx context.Context) (string, error) {
	c.mu.Lock()
	if len(c.inputs) == 0 {
		block := c.block
		c.mu.Unlock()
		if !block {
			return "", io.EOF
		}
		<-ctx.Done()
		return "", ctx.Err()
	}
	in := c.inputs[0]
	c.inputs = c.inputs[1:]
	c.mu.Unlock()

	if in == ctrlC {
		return "", ErrInterrupted
	}
	return in, nil
}

func (c *scriptedConsole) ShowFailure(name string, err error) {
	c.record(fmt.Sprintf("failure %s: %v", name, err))
}

func (c *scriptedConsole) WaitForAck(ctx context.Context) error {
	c.mu.Lock()
	c.acks++
	c.mu.Unlock()
	return nil
}

type fakeSignals struct {
	mu       sync.Mutex
	ch       chan<- os.Signal
	notified int
	stopped  int
}

func (f *fakeSignals) Notify(c chan<- os.Signal, sig ...os.Signal) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.ch = c
	f.notified++
}

func (f *fakeSignals) Stop(c chan<- os.Signal) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.stopped++
}

func (f *fakeSignals) Interrupt() {
	f.mu.Lock()
	ch := f.ch
	f.mu.Unlock()
	ch <- os.Interrupt
}

func (f *fakeSignals) counts() (int, int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.notified, f.stopped
}

type exitRecorder struct {
	codes chan int
}

func newExitRecorder() *exitRecorder {
	return &exitRecorder{codes: make(chan int, 4)}
}

func (e *exitRecorder) exit(code int) {
	e.codes <- code
}

type recordingObserver struct {
	mu         sync.Mutex
	started    []string
	outcomes   []Outcome
	interrupts []bool
}

func (o *recordingObserver) RunStarted(name string) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.started = append(o.started, name)
}

func (o *recordingObserver) RunFinished(name string, out Outcome) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.outcomes = append(o.outcomes, out)
}

func (o *recordingObserver) Interrupted(busy bool) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.interrupts = append(o.interrupts, busy)
}

func (o *recordingObserver) Outcomes() []Outcome {
	o.mu.Lock()
	defer o.mu.Unlock()
	return append([]Outcome(nil), o.outcomes...)
}
