package main

import (
	"bufio"
	"fmt"
	"io"

	"github.com/rdentato/fsm"
)

// stripper is the machine datum: one byte of lookahead, the streams, and the
// literal state to re-enter after an escape sequence.
type stripper struct {
	in     *bufio.Reader
	out    *bufio.Writer
	c      byte
	resume state
	err    error
}

type state = fsm.State[*stripper]

// read fetches the next input byte into s.c; a false return means the machine
// should exit (end of input, or a read error left in s.err).
func (s *stripper) read() bool {
	c, err := s.in.ReadByte()
	if err != nil {
		if err != io.EOF {
			s.err = err
		}
		return false
	}
	s.c = c
	return true
}

func (s *stripper) write(c byte) {
	if s.err == nil {
		s.err = s.out.WriteByte(c)
	}
}

func stStart(s *stripper) state {
	return stCode
}

func stCode(s *stripper) state {
	if !s.read() {
		return nil
	}
	if s.c == '/' {
		return stSlash
	}
	return stCodeChar
}

func stCodeChar(s *stripper) state {
	s.write(s.c)
	if s.c == '"' {
		s.resume = stString
		return stString
	}
	if s.c == '\'' {
		s.resume = stLiteral
		return stLiteral
	}
	return stCode
}

func stSlash(s *stripper) state {
	if !s.read() {
		return nil
	}
	if s.c == '/' {
		return stLineComment
	}
	if s.c == '*' {
		return stBlockComment
	}
	s.write('/') // lone slash: division, not a comment
	return stCodeChar
}

func stString(s *stripper) state {
	if !s.read() {
		return nil
	}
	if s.c == '\\' {
		return stEscaped
	}
	s.write(s.c)
	if s.c == '"' {
		return stCode
	}
	return stString
}

func stLiteral(s *stripper) state {
	if !s.read() {
		return nil
	}
	if s.c == '\\' {
		return stEscaped
	}
	s.write(s.c)
	if s.c == '\'' {
		return stCode
	}
	return stLiteral
}

func stEscaped(s *stripper) state {
	s.write('\\')
	if !s.read() {
		return nil
	}
	s.write(s.c)
	return s.resume
}

// The newline that ends a line comment belongs to the comment and is
// swallowed with it.
func stLineComment(s *stripper) state {
	if !s.read() {
		return nil
	}
	if s.c == '\n' {
		return stCode
	}
	return stLineComment
}

func stBlockComment(s *stripper) state {
	if !s.read() {
		return nil
	}
	if s.c == '*' {
		return stStar
	}
	return stBlockComment
}

func stStar(s *stripper) state {
	if !s.read() {
		return nil
	}
	if s.c == '/' {
		return stCode
	}
	if s.c == '*' {
		return stStar
	}
	return stBlockComment
}

// Uncomment copies r to w with // and /* */ comments removed. An unterminated
// comment or literal at end of input ends the copy without error, like the
// truncated input it is.
func Uncomment(r io.Reader, w io.Writer) error {
	s := &stripper{in: bufio.NewReader(r), out: bufio.NewWriter(w)}
	fsm.Run(s, stStart)
	if s.err != nil {
		return fmt.Errorf("copy: %w", s.err)
	}
	if err := s.out.Flush(); err != nil {
		return fmt.Errorf("flush: %w", err)
	}
	return nil
}
