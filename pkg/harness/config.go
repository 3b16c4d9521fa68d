package harness

// Config controls the session. It is read-only once Engine.Run starts.
type Config struct {
	// Title is shown above the menu.
	Title string

	// HandleInterrupt installs the SIGINT coordinator. When false the harness
	// does not intercept interrupts and SIGINT keeps its default disposition.
	HandleInterrupt bool

	// ExitOnInterruptWhenIdle terminates the process when SIGINT arrives
	// while no scenario is running.
	ExitOnInterruptWhenIdle bool

	// OnIdleInterrupt is called for an idle interrupt when
	// ExitOnInterruptWhenIdle is false. The host decides what it means.
	OnIdleInterrupt func()
}

// DefaultConfig returns the configuration used by the demo host: interrupts
// handled, idle interrupt exits.
func DefaultConfig() Config {
	return Config{
		Title:                   "Scenarios",
		HandleInterrupt:         true,
		ExitOnInterruptWhenIdle: true,
	}
}
