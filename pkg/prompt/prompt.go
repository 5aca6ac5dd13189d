// Package prompt implements the main subprogram of anchorpwd, which prints the
// working directory in a form suitable for a shell prompt.
//
// The line consists of an icon identifying the anchor, the anchor's label and
// the shortened path below the anchor. With $HOME being /home/alice:
//
//	/home/alice/projects/deep/nested   home icon, then "/../nested"
//	/home/alice/code/myrepo/src        repository icon, then "myrepo/src"
//	/var/data                          "/../data"
//	D:\var\data (Windows)              "D:/../data"
package prompt

import (
	"fmt"
	"io"
	"os"

	"src.anchorpwd.dev/pkg/anchor"
	"src.anchorpwd.dev/pkg/icons"
	"src.anchorpwd.dev/pkg/logutil"
	"src.anchorpwd.dev/pkg/prog"
	"src.anchorpwd.dev/pkg/shorten"
)

var logger = logutil.GetLogger("[prompt] ")

// Program is the prompt subprogram. The zero value uses the working directory
// of the process and resolves it on the real filesystem.
type Program struct {
	// Resolver used to find the anchor. If nil, anchor.NewResolver() is used.
	Resolver *anchor.Resolver
	// Getwd returns the directory to display. If nil, os.Getwd is used.
	Getwd func() (string, error)
}

// Run writes the prompt line to stdout. It takes no arguments.
func (p Program) Run(fds [3]*os.File, _ *prog.Flags, args []string) error {
	if len(args) > 0 {
		return prog.BadUsage("arguments are not supported")
	}
	line, err := p.line()
	if err != nil {
		return err
	}
	_, err = io.WriteString(fds[1], line+"\n")
	return err
}

func (p Program) line() (string, error) {
	getwd := p.Getwd
	if getwd == nil {
		getwd = os.Getwd
	}
	dir, err := getwd()
	if err != nil {
		return "", fmt.Errorf("cannot determine working directory: %w", err)
	}
	resolver := p.Resolver
	if resolver == nil {
		resolver = anchor.NewResolver()
	}
	a, err := resolver.Resolve(dir)
	if err != nil {
		return "", err
	}
	logger.Printf("%s: %s anchor with %d segments below", dir, a.Kind, len(a.Rel))
	return Line(a), nil
}

// Line formats an anchor as a prompt line, without the trailing newline.
func Line(a anchor.Anchor) string {
	switch a.Kind {
	case anchor.Home:
		return icons.Home + shorten.Rel(a.Rel, false)
	case anchor.Repo:
		return icons.Repo + a.Name + shorten.Rel(a.Rel, false)
	case anchor.Root:
		// The drive comes before the icon, and a bare root still shows a
		// separator.
		return a.Drive + icons.Root + shorten.Rel(a.Rel, true)
	default:
		panic(fmt.Sprintf("unknown anchor kind %v", a.Kind))
	}
}
