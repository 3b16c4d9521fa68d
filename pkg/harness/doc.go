// Package harness runs an interactive menu of scenarios.
//
// An Engine shows a menu, reads a selection and either invokes a MenuAction
// or executes a Scenario, then pauses and shows the menu again until the user
// quits or the session context is cancelled.
//
// Every scenario run gets its own cancellable context derived from the
// session context. While a run is in flight its cancel function is published
// in a RunSlot, which the interrupt coordinator reads when the process
// receives SIGINT: a busy slot is cancelled and the menu comes back, an empty
// slot means the user wants out and the process exits (configurable).
package harness
