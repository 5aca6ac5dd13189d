// Package shorten renders the part of a path below an anchor directory in a
// bounded width.
package shorten

const (
	// Separator is written before every rendered segment. It is the same on
	// all platforms.
	Separator = "/"
	// Ellipsis stands for all segments except the last one.
	Ellipsis = ".."
)

// Rel renders the segments from an anchor directory down to a directory.
//
// An empty rel renders as Separator if sepOnEmpty is true, and as "" otherwise.
// A single segment renders as Separator followed by the segment. Deeper paths
// render as only the last segment, preceded by Separator, Ellipsis and
// Separator, no matter how many segments are collapsed.
func Rel(rel []string, sepOnEmpty bool) string {
	switch len(rel) {
	case 0:
		if sepOnEmpty {
			return Separator
		}
		return ""
	case 1:
		return Separator + rel[0]
	default:
		return Separator + Ellipsis + Separator + rel[len(rel)-1]
	}
}
