package prompt_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"src.anchorpwd.dev/pkg/anchor"
	"src.anchorpwd.dev/pkg/icons"
	. "src.anchorpwd.dev/pkg/prompt"
	"src.anchorpwd.dev/pkg/prog/progtest"
	"src.anchorpwd.dev/pkg/testutil"
	"src.anchorpwd.dev/pkg/tt"
)

var (
	Test          = progtest.Test
	ThatAnchorpwd = progtest.ThatAnchorpwd
)

func TestLine(t *testing.T) {
	tt.Test(t, Line,
		tt.Args(anchor.AtHome(nil)).Rets(icons.Home),
		tt.Args(anchor.AtHome([]string{"projects"})).Rets(icons.Home+"/projects"),
		tt.Args(anchor.AtHome([]string{"projects", "deep", "nested"})).
			Rets(icons.Home+"/../nested"),

		tt.Args(anchor.InRepo("myrepo", nil)).Rets(icons.Repo+"myrepo"),
		tt.Args(anchor.InRepo("myrepo", []string{"src"})).Rets(icons.Repo+"myrepo/src"),
		tt.Args(anchor.InRepo("myrepo", []string{"a", "b"})).Rets(icons.Repo+"myrepo/../b"),

		tt.Args(anchor.AtRoot("", nil)).Rets("/"),
		tt.Args(anchor.AtRoot("", []string{"var"})).Rets("/var"),
		tt.Args(anchor.AtRoot("", []string{"var", "data"})).Rets("/../data"),
		tt.Args(anchor.AtRoot("C:", nil)).Rets("C:/"),
		tt.Args(anchor.AtRoot("D:", []string{"work", "x"})).Rets("D:/../x"),
	)
}

func TestLine_Icons(t *testing.T) {
	if icons.Home != "\uf015 " || icons.Repo != "\U000f02a2 " || icons.Root != "" {
		t.Errorf("unexpected icons %q, %q, %q", icons.Home, icons.Repo, icons.Root)
	}
}

// Skips tests that expect temporary directories to be outside any repository.
func skipIfTempInRepo(t *testing.T) {
	t.Helper()
	if root, ok := anchor.NewResolver().FindRepoRoot(os.TempDir()); ok {
		t.Skipf("temporary directory is inside repository %s", root)
	}
}

func TestProgram_WorkingDirectory(t *testing.T) {
	skipIfTempInRepo(t)
	home := testutil.TempHome(t)
	testutil.ApplyDirIn(testutil.Dir{
		"projects": testutil.Dir{"deep": testutil.Dir{"nested": testutil.Dir{}}},
		"code": testutil.Dir{
			"myrepo": testutil.Dir{
				".git": testutil.Dir{},
				"src":  testutil.Dir{},
			},
		},
	}, home)

	testutil.Chdir(t, filepath.Join(home, "projects"))
	Test(t, Program{}, ThatAnchorpwd().WritesStdout(icons.Home+"/projects\n"))

	testutil.Chdir(t, filepath.Join(home, "projects", "deep", "nested"))
	Test(t, Program{}, ThatAnchorpwd().WritesStdout(icons.Home+"/../nested\n"))

	testutil.Chdir(t, filepath.Join(home, "code", "myrepo"))
	Test(t, Program{}, ThatAnchorpwd().WritesStdout(icons.Repo+"myrepo\n"))

	testutil.Chdir(t, filepath.Join(home, "code", "myrepo", "src"))
	Test(t, Program{}, ThatAnchorpwd().WritesStdout(icons.Repo+"myrepo/src\n"))

	testutil.Chdir(t, home)
	Test(t, Program{}, ThatAnchorpwd().WritesStdout(icons.Home+"\n"))
}

func TestProgram_OutsideHome(t *testing.T) {
	skipIfTempInRepo(t)
	testutil.TempHome(t)
	dir := testutil.InTempDir(t)
	testutil.ApplyDir(testutil.Dir{"var": testutil.Dir{"data": testutil.Dir{}}})
	testutil.Chdir(t, filepath.Join(dir, "var", "data"))

	// The temporary directory is at least one level below the root, so the
	// path always collapses.
	Test(t, Program{}, ThatAnchorpwd().WritesStdoutContaining("/../data\n"))
}

func TestProgram_HomeUnset(t *testing.T) {
	skipIfTempInRepo(t)
	testutil.Unsetenv(t, "HOME")
	testutil.Unsetenv(t, "USERPROFILE")
	testutil.InTempDir(t)

	Test(t, Program{},
		ThatAnchorpwd().
			ExitsWith(2).
			WritesStderrContaining("cannot determine home directory"),
	)
}

func TestProgram_GetwdFails(t *testing.T) {
	p := Program{Getwd: func() (string, error) { return "", errors.New("gone") }}
	Test(t, p,
		ThatAnchorpwd().
			ExitsWith(2).
			WritesStderr("cannot determine working directory: gone\n"),
	)
}

func TestProgram_RejectsArguments(t *testing.T) {
	Test(t, Program{},
		ThatAnchorpwd("foo").
			ExitsWith(2).
			WritesStderrContaining("arguments are not supported\nUsage:"),
	)
}
