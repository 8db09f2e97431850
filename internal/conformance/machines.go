// Package conformance runs the acceptance machines against fixture-declared
// inputs and expected transition traces. Every machine here is built with the
// public construct and records its trace in its own datum; the package exists
// so the fixtures in testdata/ have something to drive.
package conformance

import (
	"strings"

	"github.com/rdentato/fsm"
)

// Machines maps the machine names usable in fixtures to their runners. Each
// runner builds a fresh machine over input and returns its transition trace.
var Machines = map[string]func(input string) []string{
	"classifier":    runClassifier,
	"tokenizer":     runTokenizer,
	"fallthrough":   runFallthrough,
	"abrupt-exit":   runAbruptExit,
	"explicit-exit": runExplicitExit,
	"self-loop":     runSelfLoop,
}

// classifier: the two-state vowel/consonant machine. The entry state consumes
// one character and dispatches; both classifying states loop back to entry.
// 'Z' stops the machine from inside the entry state.
type classifier struct {
	input string
	pos   int
	trace []string
}

type cstate = fsm.State[*classifier]

func clsStart(c *classifier) cstate {
	if c.pos == len(c.input) {
		return nil
	}
	ch := c.input[c.pos]
	c.pos++
	if ch == 'Z' {
		return nil
	}
	if strings.ContainsRune("aeiou", rune(ch)) {
		return clsVowel
	}
	return clsConsonant
}

func clsVowel(c *classifier) cstate {
	c.trace = append(c.trace, "vowel")
	return clsStart
}

func clsConsonant(c *classifier) cstate {
	c.trace = append(c.trace, "consonant")
	return clsStart
}

func runClassifier(input string) []string {
	c := &classifier{input: input}
	fsm.Run(c, clsStart)
	return c.trace
}

// tokenizer: entry/identifier/number machine emitting one token per run. The
// cursor lives in the datum, so invoking the machine again resumes past the
// consumed token; the construct itself remembers nothing between runs.
type token struct {
	text string
	kind string
}

type tokenizer struct {
	input string
	pos   int
	start int
	toks  []token
}

type tstate = fsm.State[*tokenizer]

func tokStart(t *tokenizer) tstate {
	for t.pos < len(t.input) && t.input[t.pos] == ' ' {
		t.pos++
	}
	if t.pos == len(t.input) {
		return nil
	}
	t.start = t.pos
	c := t.input[t.pos]
	switch {
	case isDigit(c):
		return tokNumber
	case isAlpha(c):
		return tokIdentifier
	}
	t.pos++ // unrecognized byte: skip it
	return tokStart
}

func tokIdentifier(t *tokenizer) tstate {
	for t.pos < len(t.input) && (isAlpha(t.input[t.pos]) || isDigit(t.input[t.pos])) {
		t.pos++
	}
	t.toks = append(t.toks, token{text: t.input[t.start:t.pos], kind: "identifier"})
	return nil
}

func tokNumber(t *tokenizer) tstate {
	for t.pos < len(t.input) && isDigit(t.input[t.pos]) {
		t.pos++
	}
	t.toks = append(t.toks, token{text: t.input[t.start:t.pos], kind: "number"})
	return nil
}

func isDigit(c byte) bool { return '0' <= c && c <= '9' }

func isAlpha(c byte) bool {
	return 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z' || c == '_'
}

// nextToken advances the tokenizer by one full machine run and reports
// whether a token was emitted.
func (t *tokenizer) nextToken() bool {
	before := len(t.toks)
	fsm.Run(t, tokStart)
	return len(t.toks) > before
}

func runTokenizer(input string) []string {
	t := &tokenizer{input: input}
	for t.nextToken() {
	}
	var trace []string
	for _, tok := range t.toks {
		trace = append(trace, tok.kind+":"+tok.text)
	}
	return trace
}

// fallthrough: walkDeadEnd ends without naming a successor, which must take
// the machine to its exit point, not into walkAfter below it.
type walker struct {
	trace []string
}

type wstate = fsm.State[*walker]

func walkEntry(w *walker) wstate {
	w.trace = append(w.trace, "entry")
	return walkDeadEnd
}

func walkDeadEnd(w *walker) wstate {
	w.trace = append(w.trace, "dead-end")
	return nil
}

// walkAfter sits right after walkDeadEnd in source and is named by no
// transition; a machine that ever records "after" has cascaded.
func walkAfter(w *walker) wstate {
	w.trace = append(w.trace, "after")
	return nil
}

func runFallthrough(input string) []string {
	w := &walker{}
	fsm.Run(w, walkEntry)
	w.trace = append(w.trace, "exit-point")
	return w.trace
}

// abrupt-exit and explicit-exit: the same machine written twice, once exiting
// abruptly from the middle of the entry state and once exiting at its end.
// Their traces must be indistinguishable for every input.
type scanstop struct {
	input string
	trace []string
}

type sstate = fsm.State[*scanstop]

func abruptEntry(s *scanstop) sstate {
	s.trace = append(s.trace, "entry")
	if strings.ContainsRune(s.input, 'q') {
		return nil
	}
	s.trace = append(s.trace, "scan")
	return nil
}

func explicitEntry(s *scanstop) sstate {
	s.trace = append(s.trace, "entry")
	if !strings.ContainsRune(s.input, 'q') {
		s.trace = append(s.trace, "scan")
	}
	return nil
}

func runAbruptExit(input string) []string {
	s := &scanstop{input: input}
	fsm.Run(s, abruptEntry)
	return s.trace
}

func runExplicitExit(input string) []string {
	s := &scanstop{input: input}
	fsm.Run(s, explicitEntry)
	return s.trace
}

// self-loop: one state transitioning to itself once per input byte. Each
// re-entry must look exactly like the first.
type looper struct {
	input string
	pos   int
	trace []string
}

func loopTick(l *looper) fsm.State[*looper] {
	if l.pos == len(l.input) {
		return nil
	}
	l.pos++
	l.trace = append(l.trace, "tick")
	return loopTick
}

func runSelfLoop(input string) []string {
	l := &looper{input: input}
	fsm.Run(l, loopTick)
	return l.trace
}
