package fsm_test

import (
	"testing"

	. "github.com/rdentato/fsm"
)

// Test machines record which states they visit in a caller-owned slice; the
// construct itself has nothing to inspect.
type rec struct {
	visits []string
	n      int
}

type state = State[*rec]

// Declared deliberately after the states it targets would be in a "natural"
// order: source order of states must not matter.
func stTail(r *rec) state {
	r.visits = append(r.visits, "tail")
	return nil
}

func stMiddle(r *rec) state {
	r.visits = append(r.visits, "middle")
	return stTail
}

func stEntry(r *rec) state {
	r.visits = append(r.visits, "entry")
	return stMiddle
}

// stNever is never named by a transition, so no machine may reach it.
func stNever(r *rec) state {
	r.visits = append(r.visits, "never")
	return nil
}

// Test single entry: execution always reaches the entry state first, no
// matter how many states are declared or in what order.
func TestRunReachesEntryFirst(t *testing.T) {
	r := &rec{}
	Run(r, stEntry)

	if len(r.visits) == 0 || r.visits[0] != "entry" {
		t.Fatalf("expected entry state first, got visits %v", r.visits)
	}
}

// Test explicit-only transitions: a state is entered only when a transition
// names it; textual adjacency reaches nothing.
func TestUnnamedStateUnreachable(t *testing.T) {
	r := &rec{}
	Run(r, stEntry)

	for _, v := range r.visits {
		if v == "never" {
			t.Fatalf("reached state that no transition names: %v", r.visits)
		}
	}
	want := []string{"entry", "middle", "tail"}
	if len(r.visits) != len(want) {
		t.Fatalf("expected visits %v, got %v", want, r.visits)
	}
	for i := range want {
		if r.visits[i] != want[i] {
			t.Fatalf("expected visits %v, got %v", want, r.visits)
		}
	}
}

// Test no cascade: a state whose every path ends without naming a successor
// exits the machine; control never continues into the next declared state.
func TestExitNeverCascades(t *testing.T) {
	r := &rec{}
	Run(r, stMiddle) // stMiddle -> stTail -> exit; stNever follows textually

	if got := len(r.visits); got != 2 {
		t.Fatalf("expected 2 visits, got %d: %v", got, r.visits)
	}
	if r.visits[1] != "tail" {
		t.Fatalf("expected tail last, got %v", r.visits)
	}
}

// Test idempotent self-transition: re-entering a state via itself behaves
// exactly like entering it fresh.
func TestSelfTransition(t *testing.T) {
	var loop state
	loop = func(r *rec) state {
		r.visits = append(r.visits, "loop")
		r.n++
		if r.n < 3 {
			return loop
		}
		return nil
	}

	r := &rec{}
	Run(r, loop)

	if r.n != 3 {
		t.Fatalf("expected 3 iterations, got %d", r.n)
	}
	for i, v := range r.visits {
		if v != "loop" {
			t.Fatalf("visit %d: expected loop, got %q", i, v)
		}
	}
}

// Test single exit point: every exit path resumes at the statement after the
// Run call, exactly once.
func TestSingleExitPoint(t *testing.T) {
	earlyReturn := func(r *rec) state {
		if true {
			return nil // abrupt exit mid-state
		}
		r.visits = append(r.visits, "unreached")
		return stNever
	}
	endOfState := func(r *rec) state {
		r.visits = append(r.visits, "end")
		return nil // exit at the end of the state
	}

	for name, entry := range map[string]state{
		"early return": earlyReturn,
		"end of state": endOfState,
	} {
		r := &rec{}
		resumed := 0
		Run(r, entry)
		resumed++ // the exit point

		if resumed != 1 {
			t.Fatalf("%s: exit point reached %d times", name, resumed)
		}
	}
}

// A nil entry is the empty machine: Run returns immediately.
func TestRunNilEntry(t *testing.T) {
	r := &rec{}
	Run(r, nil)

	if len(r.visits) != 0 {
		t.Fatalf("empty machine visited states: %v", r.visits)
	}
}

// Test step-wise use: Step executes one state per call and the caller keeps
// the continuation; nothing is stored between calls.
func TestStepResumes(t *testing.T) {
	r := &rec{}
	s := state(stEntry)

	steps := 0
	for s != nil {
		s = Step(r, s)
		steps++
	}

	if steps != 3 {
		t.Fatalf("expected 3 steps, got %d", steps)
	}
	if len(r.visits) != 3 || r.visits[2] != "tail" {
		t.Fatalf("unexpected visits %v", r.visits)
	}
}

// An exited machine stays exited.
func TestStepAfterExit(t *testing.T) {
	r := &rec{}
	if next := Step(r, nil); next != nil {
		t.Fatal("Step on an exited machine returned a state")
	}
	if len(r.visits) != 0 {
		t.Fatalf("Step on an exited machine visited states: %v", r.visits)
	}
}

// Interleaved machines: each Run call is its own instance with its own exit
// point; one running inside a state of another does not disturb it.
func TestIndependentInstances(t *testing.T) {
	inner := &rec{}
	var outer *rec

	outerEntry := func(r *rec) state {
		r.visits = append(r.visits, "outer")
		Run(inner, stEntry)
		return nil
	}

	outer = &rec{}
	Run(outer, outerEntry)

	if len(outer.visits) != 1 || outer.visits[0] != "outer" {
		t.Fatalf("outer machine visits: %v", outer.visits)
	}
	if len(inner.visits) != 3 || inner.visits[0] != "entry" {
		t.Fatalf("inner machine visits: %v", inner.visits)
	}
}

func TestVersionMarker(t *testing.T) {
	if Version == "" {
		t.Fatal("empty version marker")
	}
	if VersionHex == 0 {
		t.Fatal("zero hex version marker")
	}
}
