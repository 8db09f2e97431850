// Package fsm is a minimal notation for writing an explicit, named-state
// finite state machine inside a single function, compiling to direct control
// transfer with no runtime bookkeeping.
//
// The notation has four operations:
//
//	fsm.Run(m, start)        // enter the machine at its entry state
//	func start(m *T) fsm.State[*T] {...}  // declare a state
//	return nextState         // transition to a named state
//	return nil               // exit the machine
//
// States are state functions in the sense of text/template/parse: a state is
// both a block of statements and a value naming itself, so the transition
// loop is nothing more than s = s(m). See Rob Pike's talk on lexical scanning
// (https://talks.golang.org/2011/lex.slide) for the lineage of the pattern.
//
// # Invariants
//
// Run always reaches the entry state first; no other state is reachable from
// the machine boundary. A state is entered only by a return statement naming
// it: source order of the state functions is meaningless, and control cannot
// "fall through" one state into the next, because a function body cannot fall
// into another function. Every terminating path of a state must return, and
// returning nil terminates the machine; an early return nil buried in a
// condition behaves identically to one at the end of the state. All exit
// paths converge on one statement, the one after the Run call.
//
// A transition names its target as an identifier, so an undeclared target is
// an undefined-identifier compile error. There is no runtime failure surface:
// the construct performs no I/O, no allocation, and no validation.
//
// # Writing a machine
//
// The machine datum M carries the locals the states share. Declare the states
// as functions (or methods) over it:
//
//	type scan struct {
//		input string
//		pos   int
//	}
//
//	func start(s *scan) fsm.State[*scan] {
//		if s.pos == len(s.input) {
//			return nil // end of input: exit
//		}
//		switch s.input[s.pos] {
//		case 'a', 'e', 'i', 'o', 'u':
//			return vowel
//		}
//		return consonant
//	}
//
// A file-local alias keeps the signatures short when states proliferate:
//
//	type state = fsm.State[*scan]
//
// # What the construct is not
//
// Run does not suspend. Control returns to the caller only when the machine
// exits (or through an ordinary return written inside a state, which is a
// function return like any other). A program that wants to advance a machine
// in bounded increments across calls keeps the continuation itself, via Step;
// the construct stores nothing between calls. There are no events, guards,
// hierarchies or transition tables here: conditional logic around a
// transition is ordinary Go written inside the state.
package fsm
