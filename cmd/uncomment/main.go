// Command uncomment copies C source from stdin to stdout with its comments
// removed. It is the tool that produces the stripped distribution variant of
// a commented source file: the output is byte-identical to the input except
// for the comments, and string and character literals pass through untouched
// so comment-looking text inside them survives.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := Uncomment(os.Stdin, os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, "uncomment:", err)
		os.Exit(1)
	}
}
