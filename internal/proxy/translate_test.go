package proxy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dazelbuild/dazel/internal/config"
)

func baseTerm() TermInfo {
	return TermInfo{Interactive: false, Columns: 120, Lines: 40, Term: "xterm-256color"}
}

func TestTranslate_Basic(t *testing.T) {
	inv, err := Translate(config.Config{}, "dazel_build", []string{"build", "//x:y"}, baseTerm())
	require.NoError(t, err)

	assert.Equal(t, []string{
		"exec", "-i",
		"-e", "COLUMNS=120",
		"-e", "LINES=40",
		"-e", "TERM=xterm-256color",
		"-w", CodeMountPoint,
		"dazel_build", ContainerBazelBin,
		"--output_user_root=" + ContainerOutputUserRoot,
		"--output_base=" + ContainerOutputBase,
		"build", "//x:y",
	}, inv.Args)
	assert.Equal(t, "dazel_build", inv.Container)
	assert.False(t, inv.TTY)
}

func TestTranslate_TTYFollowsInteractivity(t *testing.T) {
	term := baseTerm()

	inv, err := Translate(config.Config{}, "dazel_build", []string{"build", "//x:y"}, term)
	require.NoError(t, err)
	assert.NotContains(t, inv.Args, "-t", "piped stdio must not allocate a TTY")

	term.Interactive = true
	inv, err = Translate(config.Config{}, "dazel_build", []string{"build", "//x:y"}, term)
	require.NoError(t, err)
	assert.Contains(t, inv.Args, "-t")
	assert.True(t, inv.TTY)
}

func TestTranslate_PrivilegedAndUserAreRuntimeFlags(t *testing.T) {
	cfg := config.Config{Privileged: true, User: "builder:builder"}

	inv, err := Translate(cfg, "dazel_build", []string{"test", "//..."}, baseTerm())
	require.NoError(t, err)

	assert.Contains(t, inv.Args, "--privileged")
	assert.Contains(t, inv.Args, "--user=builder:builder")
	assert.Equal(t, "builder:builder", inv.User)

	// Both appear before the container, never in the bazel argument vector.
	containerIdx := indexOf(inv.Args, "dazel_build")
	assert.Less(t, indexOf(inv.Args, "--privileged"), containerIdx)
	assert.Less(t, indexOf(inv.Args, "--user=builder:builder"), containerIdx)
}

func TestTranslate_ExtraEnvInDeclarationOrder(t *testing.T) {
	cfg := config.Config{EnvVars: []string{"CC=clang", "CACHE_DIR=/tmp/cache"}}

	inv, err := Translate(cfg, "dazel_build", []string{"build", "//x"}, baseTerm())
	require.NoError(t, err)

	cc := indexOf(inv.Args, "CC=clang")
	cache := indexOf(inv.Args, "CACHE_DIR=/tmp/cache")
	require.GreaterOrEqual(t, cc, 0)
	require.GreaterOrEqual(t, cache, 0)
	assert.Less(t, cc, cache, "overlay keeps declaration order")
	assert.Equal(t, "-e", inv.Args[cc-1])
}

func TestTranslate_BazelRCInjection(t *testing.T) {
	cfg := config.Config{BazelRCFile: "ci.bazelrc"}

	inv, err := Translate(cfg, "dazel_build", []string{"build", "//x"}, baseTerm())
	require.NoError(t, err)
	assert.Contains(t, inv.Args, "--bazelrc="+CodeMountPoint+"/ci.bazelrc")
}

func TestTranslate_UserFlagsWinOverInjection(t *testing.T) {
	cfg := config.Config{BazelRCFile: "ci.bazelrc"}
	argv := []string{"--bazelrc=/code/mine.bazelrc", "--output_base=/tmp/ob", "build", "//x"}

	inv, err := Translate(cfg, "dazel_build", argv, baseTerm())
	require.NoError(t, err)

	assert.NotContains(t, inv.Args, "--bazelrc="+CodeMountPoint+"/ci.bazelrc")
	assert.NotContains(t, inv.Args, "--output_base="+ContainerOutputBase)
	assert.Contains(t, inv.Args, "--bazelrc=/code/mine.bazelrc")
	assert.Contains(t, inv.Args, "--output_user_root="+ContainerOutputUserRoot)
}

func TestTranslate_NoWorkspaceRCSuppressesInjection(t *testing.T) {
	cfg := config.Config{BazelRCFile: "ci.bazelrc"}
	argv := []string{"--noworkspace_rc", "build", "//x"}

	inv, err := Translate(cfg, "dazel_build", argv, baseTerm())
	require.NoError(t, err)

	assert.NotContains(t, inv.Args, "--bazelrc="+CodeMountPoint+"/ci.bazelrc")
	assert.Contains(t, inv.Args, "--noworkspace_rc")
}

func TestTranslate_Pure(t *testing.T) {
	cfg := config.Config{
		EnvVars:     []string{"A=1", "B=2"},
		Privileged:  true,
		User:        "u:g",
		BazelRCFile: "x.bazelrc",
	}
	argv := []string{"run", "//tools:gen"}

	first, err := Translate(cfg, "dazel_build", argv, baseTerm())
	require.NoError(t, err)
	second, err := Translate(cfg, "dazel_build", argv, baseTerm())
	require.NoError(t, err)

	assert.Equal(t, first, second, "identical inputs must yield an identical invocation")
}

func TestTranslate_MalformedUser(t *testing.T) {
	for _, user := range []string{"a:b:c", ":group", "user:"} {
		_, err := Translate(config.Config{User: user}, "dazel_build", []string{"build"}, baseTerm())

		var terr *TranslationError
		require.ErrorAs(t, err, &terr, "user %q", user)
		assert.Equal(t, config.KeyUser, terr.Field)
	}
}

func indexOf(args []string, want string) int {
	for i, arg := range args {
		if arg == want {
			return i
		}
	}
	return -1
}
