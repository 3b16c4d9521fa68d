package harness

// Observer receives lifecycle notifications from the harness. Calls for runs
// happen on the menu loop goroutine; Interrupted is called from the signal
// goroutine.
type Observer interface {
	RunStarted(name string)
	RunFinished(name string, out Outcome)
	Interrupted(busy bool)
}

// NopObserver ignores everything.
type NopObserver struct{}

func (NopObserver) RunStarted(string)           {}
func (NopObserver) RunFinished(string, Outcome) {}
func (NopObserver) Interrupted(bool)            {}
