package fsm

// Step executes exactly one state and returns the continuation, or nil once
// the machine has exited. It is the building block for step-wise use: a
// caller that wants to advance a long-running machine in bounded increments
// keeps the returned value in its own data and passes it back in later.
//
// The construct itself never stores a resumption point. Step makes the
// caller-owned record explicit instead of hiding a coroutine behind Run:
//
//	s := entryState
//	for s != nil && budget > 0 {
//		s = fsm.Step(m, s)
//		budget--
//	}
//	// persist s (alongside m) to resume later
//
// Step(m, nil) is nil: an exited machine stays exited.
func Step[M any](m M, s State[M]) State[M] {
	if s == nil {
		return nil
	}
	return s(m)
}
