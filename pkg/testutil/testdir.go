package testutil

import (
	"fmt"
	"os"
	"path/filepath"
)

// TempDir creates a temporary directory for testing that will be removed
// after the test finishes. It is different from testing.TB.TempDir in that it
// resolves symlinks in the path of the directory, so that the directory looks
// the same as what os.Getwd returns after changing into it.
//
// It panics if the test directory cannot be created or symlinks cannot be
// resolved. It is only suitable for use in tests.
func TempDir(c Cleanuper) string {
	dir, err := os.MkdirTemp("", "anchorpwdtest.")
	if err != nil {
		panic(err)
	}
	dir, err = filepath.EvalSymlinks(dir)
	if err != nil {
		panic(err)
	}
	c.Cleanup(func() {
		err := os.RemoveAll(dir)
		if err != nil {
			fmt.Fprintln(os.Stderr, "failed to remove temp dir", dir)
		}
	})
	return dir
}

// InTempDir is like TempDir, but also changes into the directory, and changes
// back to the original working directory when a test finishes. It returns the
// directory.
func InTempDir(c Cleanuper) string {
	dir := TempDir(c)
	Chdir(c, dir)
	return dir
}

// Chdir changes into a directory, and restores the original working directory
// when a test finishes. It returns the directory.
func Chdir(c Cleanuper, dir string) string {
	oldWd, err := os.Getwd()
	if err != nil {
		panic(err)
	}
	mustChdir(dir)
	c.Cleanup(func() { mustChdir(oldWd) })
	return dir
}

// Dir describes the layout of a directory. The keys of the map represent
// filenames. Each value is either a string (for the content of a regular
// file) or a Dir (for the content of a subdirectory).
type Dir map[string]any

// ApplyDir creates the given filesystem layout in the current directory.
func ApplyDir(dir Dir) {
	ApplyDirIn(dir, "")
}

// ApplyDirIn creates the given filesystem layout in a directory.
func ApplyDirIn(dir Dir, root string) {
	for name, file := range dir {
		path := filepath.Join(root, name)
		switch file := file.(type) {
		case string:
			mustOK(os.WriteFile(path, []byte(file), 0600))
		case Dir:
			mustOK(os.MkdirAll(path, 0700))
			ApplyDirIn(file, path)
		default:
			panic(fmt.Sprintf("file is neither string nor Dir: %v", file))
		}
	}
}

func mustChdir(dir string) {
	mustOK(os.Chdir(dir))
}

func mustOK(err error) {
	if err != nil {
		panic(err)
	}
}
