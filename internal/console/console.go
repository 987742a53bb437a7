// Package console implements the interactive customer and courier front ends.
// Both talk to the server through the gRPC client and read their input line
// by line, so they run the same against a terminal or a test buffer.
package console

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"restaurant/internal/adapters/out/grpcclient"
)

type prompter struct {
	in  *bufio.Scanner
	out io.Writer
}

func newPrompter(in io.Reader, out io.Writer) prompter {
	return prompter{in: bufio.NewScanner(in), out: out}
}

// ask prints label and reads one trimmed line. ok is false once input ends.
func (p prompter) ask(label string) (line string, ok bool) {
	fmt.Fprint(p.out, label)
	if !p.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(p.in.Text()), true
}

func (p prompter) say(format string, args ...any) {
	fmt.Fprintf(p.out, format+"\n", args...)
}

func (p prompter) fail(err error) {
	p.say("Error: %s", grpcclient.Detail(err))
}
