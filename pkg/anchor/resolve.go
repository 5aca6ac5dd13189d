package anchor

import (
	"strings"

	"src.anchorpwd.dev/pkg/fsutil"
	"src.anchorpwd.dev/pkg/logutil"
	"src.anchorpwd.dev/pkg/platform"
)

var logger = logutil.GetLogger("[anchor] ")

// DefaultMarkers are the names of entries that mark the root of a repository.
var DefaultMarkers = []string{".git", ".hg", ".jj"}

// Resolver resolves directories to anchors.
type Resolver struct {
	Paths platform.Paths
	// Names of entries, either files or directories, whose presence marks the
	// containing directory as a repository root.
	Markers []string
	// Exists reports whether there is a filesystem entry at the given path.
	Exists func(path string) bool
}

// NewResolver returns a Resolver for the native platform that checks
// DefaultMarkers on the real filesystem.
func NewResolver() *Resolver {
	return &Resolver{platform.Native(), DefaultMarkers, fsutil.Exists}
}

// Resolve determines the anchor of dir, which should be an absolute path.
//
// The only errors are a *platform.HomeError, when no repository encloses dir
// and the home directory is not known, and a *MalformedPathError when the
// repository root turns out to be the filesystem root itself.
func (r *Resolver) Resolve(dir string) (Anchor, error) {
	p := r.parse(dir)

	if n, ok := r.findRepo(p); ok {
		if n == 0 {
			return Anchor{}, &MalformedPathError{
				Path: r.join(p, n), Reason: "repository root has no name"}
		}
		logger.Printf("%s is in repository %s", dir, r.join(p, n))
		return InRepo(p.segs[n-1], p.segs[n:]), nil
	}

	home, err := r.Paths.HomeDir()
	if err != nil {
		return Anchor{}, err
	}
	if rel, ok := stripPrefix(p, r.parse(home)); ok {
		logger.Printf("%s is under home %s", dir, home)
		return AtHome(rel), nil
	}

	logger.Printf("%s is anchored at the root", dir)
	return AtRoot(p.drive, p.segs), nil
}

// FindRepoRoot walks upward from dir, stopping at the first directory
// (including dir itself) that directly contains one of the markers. It returns
// that directory and true, or "" and false if the filesystem root is reached
// without finding any marker.
func (r *Resolver) FindRepoRoot(dir string) (string, bool) {
	p := r.parse(dir)
	if n, ok := r.findRepo(p); ok {
		return r.join(p, n), true
	}
	return "", false
}

// Returns the number of leading segments of p that make up the repository
// root.
func (r *Resolver) findRepo(p parsed) (int, bool) {
	for n := len(p.segs); n >= 0; n-- {
		candidate := r.join(p, n)
		for _, marker := range r.Markers {
			if r.Exists(r.child(candidate, marker)) {
				return n, true
			}
		}
	}
	return 0, false
}

// A path broken into its drive prefix, its leading separators and its
// non-empty segments. ".." segments are kept as they are.
type parsed struct {
	// The drive as it appears in the path and its normalized label.
	volume, drive string
	// Leading separators, kept verbatim. Empty for relative paths.
	root string
	segs []string
}

func (p *parsed) leadsRelative() bool {
	return p.volume == "" && p.root == "" && len(p.segs) == 0
}

func (r *Resolver) parse(path string) parsed {
	drive := r.Paths.Drive(path)
	volume, rest := path[:len(drive)], path[len(drive):]
	p := parsed{volume: volume, drive: drive}
	i := 0
	for i < len(rest) && r.Paths.IsSeparator(rest[i]) {
		i++
	}
	p.root, rest = rest[:i], rest[i:]
	for rest != "" {
		i := 0
		for i < len(rest) && !r.Paths.IsSeparator(rest[i]) {
			i++
		}
		// "." is dropped unless it leads a relative path.
		if seg := rest[:i]; seg != "" && (seg != "." || p.leadsRelative()) {
			p.segs = append(p.segs, seg)
		}
		if i == len(rest) {
			break
		}
		rest = rest[i+1:]
	}
	return p
}

// Builds the path made up of the first n segments of p.
func (r *Resolver) join(p parsed, n int) string {
	sep := r.Paths.RootSeparator()
	var sb strings.Builder
	sb.WriteString(p.volume)
	sb.WriteString(p.root)
	for i, seg := range p.segs[:n] {
		if i > 0 {
			sb.WriteString(sep)
		}
		sb.WriteString(seg)
	}
	return sb.String()
}

func (r *Resolver) child(dir, name string) string {
	if dir == "" || r.Paths.IsSeparator(dir[len(dir)-1]) {
		return dir + name
	}
	return dir + r.Paths.RootSeparator() + name
}

// Returns the segments of p below prefix, if p is prefix or a descendant of
// it. Paths are compared segment by segment; drive letters are compared
// case-insensitively.
func stripPrefix(p, prefix parsed) ([]string, bool) {
	if !strings.EqualFold(p.drive, prefix.drive) || (p.root == "") != (prefix.root == "") ||
		len(p.segs) < len(prefix.segs) {
		return nil, false
	}
	for i, seg := range prefix.segs {
		if p.segs[i] != seg {
			return nil, false
		}
	}
	return p.segs[len(prefix.segs):], true
}
