// Anchorpwd prints the working directory for a shell prompt. The directory is
// shown relative to the enclosing repository, the home directory or the
// filesystem root, in that order of preference, with everything but the last
// segment collapsed.
package main

import (
	"os"

	"src.anchorpwd.dev/pkg/buildinfo"
	"src.anchorpwd.dev/pkg/prog"
	"src.anchorpwd.dev/pkg/prompt"
)

func main() {
	os.Exit(prog.Run(
		[3]*os.File{os.Stdin, os.Stdout, os.Stderr}, os.Args,
		prog.Composite(buildinfo.Program{}, prompt.Program{})))
}
