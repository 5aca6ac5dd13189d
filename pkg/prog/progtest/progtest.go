// Package progtest contains utilities for testing subprograms.
//
// Programs are run in-process with [prog.Run], with stdout and stderr
// connected to pipes.
package progtest

import (
	"io"
	"os"
	"strings"
	"testing"

	"src.anchorpwd.dev/pkg/prog"
)

// Case is a test case that can be used in Test.
type Case struct {
	args []string
	want result
}

type result struct {
	exitCode int
	out      output
	err      output
}

type output struct {
	content string
	partial bool
}

func (o output) String() string {
	if o.partial {
		return "text containing " + o.content
	}
	return o.content
}

// ThatAnchorpwd returns a new Case with the specified CLI arguments.
//
// The new Case expects the program run to exit with 0, and write nothing to
// stdout or stderr.
//
// When combined with subsequent method calls, a test case reads like English.
// For example, a test for the fact that "anchorpwd -bad-flag" exits with 2
// reads like:
//
//	ThatAnchorpwd("-bad-flag").ExitsWith(2)
func ThatAnchorpwd(args ...string) Case {
	return Case{args: append([]string{"anchorpwd"}, args...)}
}

// DoesNothing returns c itself. It is useful to mark tests that otherwise don't
// have any expectations, for example:
//
//	ThatAnchorpwd("-log", "log").DoesNothing()
func (c Case) DoesNothing() Case {
	return c
}

// ExitsWith returns an altered Case that requires the program run to return
// with the given exit code.
func (c Case) ExitsWith(code int) Case {
	c.want.exitCode = code
	return c
}

// WritesStdout returns an altered Case that requires the program run to write
// exactly the given text to stdout.
func (c Case) WritesStdout(s string) Case {
	c.want.out = output{s, false}
	return c
}

// WritesStdoutContaining returns an altered Case that requires the program run
// to write output to stdout that contains the given text as a substring.
func (c Case) WritesStdoutContaining(s string) Case {
	c.want.out = output{s, true}
	return c
}

// WritesStderr returns an altered Case that requires the program run to write
// exactly the given text to stderr.
func (c Case) WritesStderr(s string) Case {
	c.want.err = output{s, false}
	return c
}

// WritesStderrContaining returns an altered Case that requires the program run
// to write output to stderr that contains the given text as a substring.
func (c Case) WritesStderrContaining(s string) Case {
	c.want.err = output{s, true}
	return c
}

// Test runs test cases against a given program.
func Test(t *testing.T, p prog.Program, cases ...Case) {
	t.Helper()
	for _, c := range cases {
		t.Run(strings.Join(c.args, " "), func(t *testing.T) {
			t.Helper()
			exit, stdout, stderr := Run(p, c.args[1:]...)
			if exit != c.want.exitCode {
				t.Errorf("got exit code %v, want %v", exit, c.want.exitCode)
			}
			if !matchOutput(stdout, c.want.out) {
				t.Errorf("got stdout %q, want %q", stdout, c.want.out)
			}
			if !matchOutput(stderr, c.want.err) {
				t.Errorf("got stderr %q, want %q", stderr, c.want.err)
			}
		})
	}
}

// Run runs a Program with the given arguments, which should not include the
// program name. It returns the exit status and the output written to stdout
// and stderr.
func Run(p prog.Program, args ...string) (exit int, stdout, stderr string) {
	r0, w0 := mustPipe()
	// Stdin is empty.
	w0.Close()
	defer r0.Close()
	r1, w1 := mustPipe()
	r2, w2 := mustPipe()

	// Drain the pipes concurrently so that large outputs can't block the
	// program.
	outCh, errCh := readAllAsync(r1), readAllAsync(r2)
	exit = prog.Run([3]*os.File{r0, w1, w2},
		append([]string{"anchorpwd"}, args...), p)
	w1.Close()
	w2.Close()
	return exit, <-outCh, <-errCh
}

func matchOutput(got string, want output) bool {
	if want.partial {
		return strings.Contains(got, want.content)
	}
	return got == want.content
}

func readAllAsync(r *os.File) <-chan string {
	ch := make(chan string, 1)
	go func() {
		defer r.Close()
		data, err := io.ReadAll(r)
		if err != nil {
			panic(err)
		}
		ch <- string(data)
	}()
	return ch
}

func mustPipe() (*os.File, *os.File) {
	r, w, err := os.Pipe()
	if err != nil {
		panic(err)
	}
	return r, w
}
