package fsm

// State is a declared state of a machine. M is the machine datum: data the
// caller owns (usually a pointer to a struct of its locals) that every state
// receives unchanged. A state runs to a return statement and names its
// successor; returning nil leaves the machine.
//
// Because a transition target is an ordinary identifier, a transition to an
// undeclared state is a compile error, never a runtime one.
type State[M any] func(M) State[M]

// Run enters the machine: control transfers to entry, then follows each
// state's returned successor until one returns nil, at which point Run
// returns and the caller resumes at the statement after the call. That
// statement is the machine's single exit point, shared by every exit path.
//
// Run keeps no bookkeeping: no current-state value survives it, nothing is
// allocated, and each call is an independent machine instance. A nil entry is
// the empty machine and exits immediately.
func Run[M any](m M, entry State[M]) {
	for s := entry; s != nil; {
		s = s(m)
	}
}
