// Package prog provides the entry point to anchorpwd. Its subpackages
// correspond to subprograms of anchorpwd.
package prog

// This package parses flags common to all subprograms, sets up logging and
// calls the first applicable "subprogram": either the build information
// printer or the prompt.

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"src.anchorpwd.dev/pkg/logutil"
	"src.anchorpwd.dev/pkg/sys"
)

var logger = logutil.GetLogger("[prog] ")

// Flags keeps command-line flags.
type Flags struct {
	Log string

	Help, Version, BuildInfo, JSON bool
}

func newFlagSet(f *Flags) *flag.FlagSet {
	fs := flag.NewFlagSet("anchorpwd", flag.ContinueOnError)
	// Error and usage will be printed explicitly.
	fs.SetOutput(io.Discard)

	fs.StringVar(&f.Log, "log", "", "a file to write debug log to")

	fs.BoolVar(&f.Help, "help", false, "show usage help and quit")
	fs.BoolVar(&f.Version, "version", false, "show version and quit")
	fs.BoolVar(&f.BuildInfo, "buildinfo", false, "show build info and quit")
	fs.BoolVar(&f.JSON, "json", false, "show output of -version or -buildinfo in JSON")

	return fs
}

func usage(out io.Writer, fs *flag.FlagSet) {
	fmt.Fprintln(out, "Usage: anchorpwd [flags]")
	fmt.Fprintln(out, "Prints the working directory, shortened for use in a prompt.")
	fmt.Fprintln(out, "Supported flags:")
	fs.SetOutput(out)
	fs.PrintDefaults()
}

// Run parses command-line flags and runs the first applicable subprogram. It
// returns the exit status of the program.
func Run(fds [3]*os.File, args []string, p Program) int {
	f := &Flags{}
	fs := newFlagSet(f)
	err := fs.Parse(args[1:])
	if err != nil {
		if err == flag.ErrHelp {
			// (*flag.FlagSet).Parse returns ErrHelp when -h or -help was
			// requested but *not* defined. anchorpwd defines -help, but not
			// -h; so this means that -h has been requested. Handle this by
			// printing the same message as an undefined flag.
			fmt.Fprintln(fds[2], "flag provided but not defined: -h")
		} else {
			fmt.Fprintln(fds[2], err)
		}
		usage(fds[2], fs)
		return 2
	}

	if f.Log != "" {
		err = logutil.SetOutputFile(f.Log)
		if err != nil {
			fmt.Fprintln(fds[2], err)
		} else {
			defer logutil.SetOutput(io.Discard)
		}
	}
	logger.Println("args:", args)

	if f.Help {
		usage(fds[1], fs)
		return 0
	}

	err = p.Run(fds, f, fs.Args())
	if err == nil {
		return 0
	}
	logger.Println("error:", err)
	printError(fds[2], err.Error())
	if _, ok := err.(badUsageError); ok {
		usage(fds[2], fs)
	}
	return 2
}

// Prints an error message, highlighted when the output is a terminal.
func printError(out *os.File, msg string) {
	if sys.IsATTY(out.Fd()) {
		fmt.Fprintf(out, "\033[31;1m%s\033[m\n", msg)
	} else {
		fmt.Fprintln(out, msg)
	}
}

// Composite returns a Program that tries each of the given programs,
// terminating at the first one that doesn't return NotSuitable().
func Composite(programs ...Program) Program {
	return compositeProgram(programs)
}

type compositeProgram []Program

func (cp compositeProgram) Run(fds [3]*os.File, f *Flags, args []string) error {
	for _, p := range cp {
		err := p.Run(fds, f, args)
		if err != ErrNotSuitable {
			return err
		}
	}
	// If we have reached here, all subprograms have returned ErrNotSuitable
	return ErrNotSuitable
}

// ErrNotSuitable is a special error that may be returned by Program.Run, to
// signify that this Program should not be run. It is useful when a Program is
// used in Composite.
var ErrNotSuitable = errors.New("internal error: no suitable subprogram")

// BadUsage returns a special error that may be returned by Program.Run. It
// causes the main function to print out a message, the usage information and
// exit with 2.
func BadUsage(msg string) error { return badUsageError{msg} }

type badUsageError struct{ msg string }

func (e badUsageError) Error() string { return e.msg }

// Program represents a subprogram.
type Program interface {
	// Run runs the subprogram.
	Run(fds [3]*os.File, f *Flags, args []string) error
}
