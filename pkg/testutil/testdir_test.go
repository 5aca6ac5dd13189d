package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

func TestTempDir_DirIsValid(t *testing.T) {
	dir := TempDir(t)

	stat, err := os.Stat(dir)
	if err != nil {
		t.Fatalf("TempDir returns %q which cannot be stated", dir)
	}
	if !stat.IsDir() {
		t.Errorf("TempDir returns %q which is not a dir", dir)
	}
}

func TestTempDir_DirHasSymlinksResolved(t *testing.T) {
	dir := TempDir(t)

	resolved, err := filepath.EvalSymlinks(dir)
	if err != nil {
		panic(err)
	}
	if dir != resolved {
		t.Errorf("TempDir returns %q, but it resolves to %q", dir, resolved)
	}
}

func TestTempDir_CleanupRemovesDirRecursively(t *testing.T) {
	c := &cleanuper{}
	dir := TempDir(c)

	err := os.WriteFile(filepath.Join(dir, "a"), []byte("test"), 0600)
	if err != nil {
		panic(err)
	}

	c.runCleanups()
	if _, err := os.Stat(dir); err == nil {
		t.Errorf("Dir %q still exists after cleanup", dir)
	}
}

func TestChdir(t *testing.T) {
	dir := TempDir(t)
	original := getWd()

	c := &cleanuper{}
	Chdir(c, dir)

	after := getWd()
	if after != dir {
		t.Errorf("pwd is now %q, want %q", after, dir)
	}

	c.runCleanups()
	restored := getWd()
	if restored != original {
		t.Errorf("pwd restored to %q, want %q", restored, original)
	}
}

func TestApplyDir_CreatesFilesAndDirectories(t *testing.T) {
	InTempDir(t)

	ApplyDir(Dir{
		"a": "a content",
		"repo": Dir{
			".git": Dir{},
			"src":  Dir{"main.go": "package main"},
		},
	})

	testFileContent(t, "a", "a content")
	testFileContent(t, "repo/src/main.go", "package main")
	if stat, err := os.Stat("repo/.git"); err != nil || !stat.IsDir() {
		t.Errorf("repo/.git is not a directory")
	}
}

func TestApplyDir_AllowsExistingDirectories(t *testing.T) {
	InTempDir(t)

	ApplyDir(Dir{"d": Dir{}})
	ApplyDir(Dir{"d": Dir{"a": "content"}})

	testFileContent(t, "d/a", "content")
}

func TestTempHome(t *testing.T) {
	home := TempHome(t)
	if got := os.Getenv("HOME"); got != home {
		t.Errorf("$HOME = %q, want %q", got, home)
	}
	if got := os.Getenv("USERPROFILE"); got != home {
		t.Errorf("$USERPROFILE = %q, want %q", got, home)
	}
}

func TestSetenv_RestoresValue(t *testing.T) {
	const name = "ANCHORPWD_TEST_VAR"
	os.Setenv(name, "old")
	defer os.Unsetenv(name)

	c := &cleanuper{}
	Setenv(c, name, "new")
	if got := os.Getenv(name); got != "new" {
		t.Errorf("got %q, want new", got)
	}
	c.runCleanups()
	if got := os.Getenv(name); got != "old" {
		t.Errorf("after cleanup got %q, want old", got)
	}
}

func TestUnsetenv_RestoresAbsence(t *testing.T) {
	const name = "ANCHORPWD_TEST_UNSET"
	os.Unsetenv(name)

	c := &cleanuper{}
	Setenv(c, name, "x")
	c.runCleanups()
	if _, ok := os.LookupEnv(name); ok {
		t.Errorf("%s still set after cleanup", name)
	}
}

func TestSet(t *testing.T) {
	x := 1
	c := &cleanuper{}
	Set(c, &x, 2)
	if x != 2 {
		t.Errorf("x = %d, want 2", x)
	}
	c.runCleanups()
	if x != 1 {
		t.Errorf("x = %d after cleanup, want 1", x)
	}
}

func getWd() string {
	dir, err := os.Getwd()
	if err != nil {
		panic(err)
	}
	dir, err = filepath.EvalSymlinks(dir)
	if err != nil {
		panic(err)
	}
	return dir
}

func testFileContent(t *testing.T, filename string, wantContent string) {
	t.Helper()
	content, err := os.ReadFile(filename)
	if err != nil {
		t.Errorf("Could not read %v: %v", filename, err)
		return
	}
	if string(content) != wantContent {
		t.Errorf("File %v is %q, want %q", filename, content, wantContent)
	}
}

type cleanuper struct{ fns []func() }

func (c *cleanuper) Cleanup(fn func()) { c.fns = append(c.fns, fn) }

func (c *cleanuper) runCleanups() {
	for i := len(c.fns) - 1; i >= 0; i-- {
		c.fns[i]()
	}
}
