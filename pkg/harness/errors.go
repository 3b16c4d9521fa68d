package harness

import (
	"errors"
	"fmt"
)

// ExitInterrupted is the status used when an idle interrupt terminates the
// process, following the 128+SIGINT shell convention.
const ExitInterrupted = 130

var (
	// ErrInterrupted is returned by a Console that owns the terminal in raw
	// mode when the user presses Ctrl+C. No SIGINT is delivered in that case,
	// so the menu loop routes it through the interrupt coordinator itself.
	ErrInterrupted = errors.New("interrupted")

	// ErrNoScenarios is reported when a menu has nothing to run.
	ErrNoScenarios = errors.New("no scenarios configured")
)

// ConfigurationError reports an invalid menu setup. It is returned before the
// menu loop starts and is never recovered by the harness.
type ConfigurationError struct {
	Err error
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("invalid menu configuration: %v", e.Err)
}

func (e *ConfigurationError) Unwrap() error {
	return e.Err
}
