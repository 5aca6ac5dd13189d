// Package icons holds the glyphs that prefix the prompt line. The glyphs come
// from the Nerd Fonts private use area.
package icons

// Icons for each kind of anchor. Non-empty icons include a trailing space that
// separates them from what follows.
const (
	Home = "\uf015 "     // nf-fa-home
	Repo = "\U000f02a2 " // nf-md-git
	Root = ""
)
