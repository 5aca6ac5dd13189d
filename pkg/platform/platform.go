// Package platform isolates the path conventions that differ between Unix-like
// systems and Windows: where the home directory is recorded, whether paths
// carry a drive prefix and which characters separate path segments.
//
// Both implementations are available on every OS so that they can be tested
// anywhere; Native returns the one matching the OS the program was built for.
package platform

import "src.anchorpwd.dev/pkg/env"

// Paths provides the platform-specific parts of path handling.
type Paths interface {
	// HomeDir returns the home directory recorded in the environment. It
	// returns a *HomeError if the variable is unset or empty.
	HomeDir() (string, error)
	// Drive returns the drive prefix of path, such as "C:", or "" if path has
	// none.
	Drive(path string) string
	// RootSeparator returns the separator that follows the drive prefix in
	// an absolute path, and joins segments when building paths.
	RootSeparator() string
	// IsSeparator reports whether c separates path segments.
	IsSeparator(c byte) bool
}

// LookupEnv has the same signature as os.LookupEnv.
type LookupEnv func(name string) (string, bool)

// HomeError is returned by HomeDir when the home directory can't be determined
// from the environment.
type HomeError struct {
	// Var is the name of the environment variable that was consulted.
	Var string
}

func (e *HomeError) Error() string {
	return "cannot determine home directory: $" + e.Var + " is not set"
}

// Unix returns the Paths for Unix-like systems, reading the environment with
// lookup.
func Unix(lookup LookupEnv) Paths { return unixPaths{lookup} }

// Windows returns the Paths for Windows, reading the environment with lookup.
func Windows(lookup LookupEnv) Paths { return windowsPaths{lookup} }

type unixPaths struct{ lookup LookupEnv }

func (p unixPaths) HomeDir() (string, error) { return homeDir(p.lookup, env.HOME) }

func (unixPaths) Drive(string) string { return "" }

func (unixPaths) RootSeparator() string { return "/" }

func (unixPaths) IsSeparator(c byte) bool { return c == '/' }

type windowsPaths struct{ lookup LookupEnv }

func (p windowsPaths) HomeDir() (string, error) { return homeDir(p.lookup, env.USERPROFILE) }

// Drive recognizes drive letters only; UNC volumes have no drive prefix. The
// letter is always returned in upper case.
func (windowsPaths) Drive(path string) string {
	if len(path) >= 2 && path[1] == ':' && isLetter(path[0]) {
		return string(upper(path[0])) + ":"
	}
	return ""
}

func (windowsPaths) RootSeparator() string { return `\` }

func (windowsPaths) IsSeparator(c byte) bool { return c == '\\' || c == '/' }

func homeDir(lookup LookupEnv, name string) (string, error) {
	home, ok := lookup(name)
	if !ok || home == "" {
		return "", &HomeError{name}
	}
	return home, nil
}

func isLetter(c byte) bool { return 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z' }

func upper(c byte) byte {
	if 'a' <= c && c <= 'z' {
		return c - 'a' + 'A'
	}
	return c
}
