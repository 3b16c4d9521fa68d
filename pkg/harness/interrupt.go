package harness

import (
	"log/slog"
	"os"
	"os/signal"
	"sync"
)

// SignalSource subscribes channels to process signals. The default
// implementation is backed by os/signal.
type SignalSource interface {
	Notify(c chan<- os.Signal, sig ...os.Signal)
	Stop(c chan<- os.Signal)
}

type osSignals struct{}

func (osSignals) Notify(c chan<- os.Signal, sig ...os.Signal) { signal.Notify(c, sig...) }
func (osSignals) Stop(c chan<- os.Signal)                     { signal.Stop(c) }

// Coordinator decides what an interrupt means: cancel the running scenario
// when the RunSlot is busy, otherwise exit (or defer to the host).
type Coordinator struct {
	slot     *RunSlot
	cfg      Config
	signals  SignalSource
	exit     func(int)
	logger   *slog.Logger
	observer Observer
}

// InterruptHandle is the subscription returned by Install. A nil handle is
// valid and means nothing was installed.
type InterruptHandle struct {
	ch       chan os.Signal
	signals  SignalSource
	stop     chan struct{}
	done     chan struct{}
	stopOnce sync.Once
}

// NewCoordinator creates a coordinator for slot. Nil signals, exit, logger or
// observer select the process defaults.
func NewCoordinator(slot *RunSlot, cfg Config, signals SignalSource, exit func(int), logger *slog.Logger, observer Observer) *Coordinator {
	if signals == nil {
		signals = osSignals{}
	}
	if exit == nil {
		exit = os.Exit
	}
	if logger == nil {
		logger = slog.Default()
	}
	if observer == nil {
		observer = NopObserver{}
	}
	return &Coordinator{
		slot:     slot,
		cfg:      cfg,
		signals:  signals,
		exit:     exit,
		logger:   logger,
		observer: observer,
	}
}

// Install subscribes to os.Interrupt until the handle is uninstalled. Session
// cancellation does not end the subscription: a scenario may still be
// stopping, and an interrupt then must take the busy path. It returns nil
// when interrupt handling is disabled.
func (c *Coordinator) Install() *InterruptHandle {
	if !c.cfg.HandleInterrupt {
		return nil
	}

	h := &InterruptHandle{
		ch:      make(chan os.Signal, 1),
		signals: c.signals,
		stop:    make(chan struct{}),
		done:    make(chan struct{}),
	}
	c.signals.Notify(h.ch, os.Interrupt)

	go func() {
		defer close(h.done)
		defer h.unsubscribe()
		for {
			select {
			case <-h.ch:
				c.HandleInterrupt()
			case <-h.stop:
				return
			}
		}
	}()
	return h
}

// Uninstall removes the subscription and waits for the signal goroutine to
// finish. It is safe to call on a nil or already uninstalled handle.
func (c *Coordinator) Uninstall(h *InterruptHandle) {
	if h == nil {
		return
	}
	h.stopOnce.Do(func() { close(h.stop) })
	<-h.done
}

func (h *InterruptHandle) unsubscribe() {
	h.signals.Stop(h.ch)
}

// HandleInterrupt reacts to one interrupt. The busy check and the cancel
// act on the same snapshot of the slot, so a run finishing concurrently is
// either cancelled harmlessly or treated as idle.
func (c *Coordinator) HandleInterrupt() {
	if !c.cfg.HandleInterrupt {
		return
	}

	if name, ok := c.slot.Cancel(); ok {
		c.observer.Interrupted(true)
		c.logger.Debug("interrupt cancelled running scenario", "scenario", name)
		return
	}

	c.observer.Interrupted(false)
	if c.cfg.ExitOnInterruptWhenIdle {
		c.logger.Debug("interrupt while idle, exiting")
		c.exit(ExitInterrupted)
		return
	}
	if c.cfg.OnIdleInterrupt != nil {
		c.cfg.OnIdleInterrupt()
		return
	}
	c.logger.Debug("interrupt while idle ignored")
}
