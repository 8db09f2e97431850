// Package trace is an opt-in debugging aid that logs the path a machine takes
// through its states. It composes ordinary fsm.State values and touches
// nothing inside fsm.Run, so the core's no-bookkeeping guarantee is intact:
// a traced machine is just a machine whose states happen to log.
//
// Function values carry no usable name at runtime (and the core forbids
// reflection), so states are named explicitly when wrapped:
//
//	tr := trace.New[*scan](logger)
//	var start, vowel fsm.State[*scan]
//	start = tr.State("start", func(s *scan) fsm.State[*scan] {
//		...
//		return vowel
//	})
//
// Wrap every state of the machine or the gaps simply go unlogged; unwrapped
// states run normally.
package trace

import (
	"log/slog"

	"github.com/rdentato/fsm"
)

// Tracer wraps the states of one machine so that entering a state, and the
// exit of the machine, are logged at debug level.
type Tracer[M any] struct {
	log *slog.Logger
}

// New returns a Tracer writing through log. A nil log uses slog.Default.
func New[M any](log *slog.Logger) *Tracer[M] {
	if log == nil {
		log = slog.Default()
	}
	return &Tracer[M]{log: log}
}

// State gives fn the name used in the log and returns it otherwise unchanged:
// the wrapper logs entry, runs fn, and passes its successor through. When fn
// exits the machine, the exit is logged with the state it happened in.
func (t *Tracer[M]) State(name string, fn fsm.State[M]) fsm.State[M] {
	return func(m M) fsm.State[M] {
		t.log.Debug("enter state", "state", name)
		next := fn(m)
		if next == nil {
			t.log.Debug("exit machine", "from", name)
		}
		return next
	}
}
