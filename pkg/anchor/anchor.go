// Package anchor decides which directory a path is displayed relative to.
//
// There are exactly three kinds of anchors, tried in a fixed order: the root of
// an enclosing repository, the home directory, and the root of the filesystem
// (or the drive on Windows). A repository always wins over the home directory,
// even when the repository lives inside it.
package anchor

import "fmt"

// Kind identifies the kind of an Anchor.
type Kind int

// Possible values of Kind.
const (
	Root Kind = iota
	Home
	Repo
)

var kindNames = [...]string{Root: "root", Home: "home", Repo: "repo"}

func (k Kind) String() string {
	if 0 <= k && int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Anchor is the result of resolving a directory. Which fields are meaningful
// depends on Kind.
type Anchor struct {
	Kind Kind
	// Basename of the repository root. Only set when Kind is Repo.
	Name string
	// Drive prefix such as "C:". Only set when Kind is Root, and only on
	// platforms with drive letters.
	Drive string
	// Segments from the anchor directory down to the resolved directory.
	// Empty when the directory is the anchor directory itself.
	Rel []string
}

// AtHome returns a Home anchor.
func AtHome(rel []string) Anchor { return Anchor{Kind: Home, Rel: rel} }

// InRepo returns a Repo anchor for the repository with the given name.
func InRepo(name string, rel []string) Anchor {
	return Anchor{Kind: Repo, Name: name, Rel: rel}
}

// AtRoot returns a Root anchor on the given drive.
func AtRoot(drive string, rel []string) Anchor {
	return Anchor{Kind: Root, Drive: drive, Rel: rel}
}

// MalformedPathError is returned when a path lacks a component that every
// well-formed absolute path has.
type MalformedPathError struct {
	Path   string
	Reason string
}

func (e *MalformedPathError) Error() string {
	return fmt.Sprintf("malformed path %q: %s", e.Path, e.Reason)
}
