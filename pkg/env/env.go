// Package env keeps names of environment variables with special significance to
// anchorpwd.
package env

// Environment variables with special significance to anchorpwd.
const (
	// HOME names the home directory on Unix.
	HOME = "HOME"
	// USERPROFILE names the home directory on Windows.
	USERPROFILE = "USERPROFILE"
)
