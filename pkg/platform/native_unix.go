//go:build !windows

package platform

import "os"

// Native returns the Paths for the OS the program is running on.
func Native() Paths { return Unix(os.LookupEnv) }
