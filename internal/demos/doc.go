// Package demos contains the scenarios shipped with the demo host.
//
// Every scenario writes its own output and returns as soon as its context is
// cancelled, reporting the cancellation with ctx.Err().
package demos
