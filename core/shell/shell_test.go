package shell

import (
	"bytes"
	"os/exec"
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tinybox-os/tinybox/core/config"
)

// newTestShell returns a shell over an in-memory filesystem with captured
// stdio.
func newTestShell(t *testing.T) (*Shell, *bytes.Buffer, *bytes.Buffer) {
	t.Helper()

	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	s := New(afero.NewMemMapFs(), config.Default(), strings.NewReader(""), stdout, stderr)
	return s, stdout, stderr
}

func TestRunLineBlank(t *testing.T) {
	s, stdout, stderr := newTestShell(t)
	s.lastRet = 42

	s.RunLine("   \t ")

	assert.Equal(t, 42, s.LastStatus(), "blank line must not dispatch")
	assert.Empty(t, stdout.String())
	assert.Empty(t, stderr.String())
}

func TestDispatchUnknownCommand(t *testing.T) {
	s, _, stderr := newTestShell(t)

	s.RunLine("tinybox-no-such-command-xyzzy")

	assert.Equal(t, 127, s.LastStatus())
	assert.Contains(t, stderr.String(), "command not found")
	assert.Contains(t, stderr.String(), "tinybox-no-such-command-xyzzy")
}

func TestDispatchExternal(t *testing.T) {
	if _, err := exec.LookPath("true"); err != nil {
		t.Skip("true not installed")
	}
	if _, err := exec.LookPath("false"); err != nil {
		t.Skip("false not installed")
	}

	s, _, _ := newTestShell(t)

	s.RunLine("true")
	assert.Equal(t, 0, s.LastStatus())

	s.RunLine("false")
	assert.Equal(t, 1, s.LastStatus())
}

func TestDispatchSequencing(t *testing.T) {
	// Commands run strictly in order; each completes before the next.
	s, stdout, _ := newTestShell(t)

	s.RunLine("mkdir seq")
	require.Equal(t, 0, s.LastStatus())
	s.RunLine("touch seq/one")
	require.Equal(t, 0, s.LastStatus())
	s.RunLine("ls seq")
	require.Equal(t, 0, s.LastStatus())

	assert.Equal(t, "one\n", stdout.String())
}

func TestExitQuitsREPL(t *testing.T) {
	s, _, _ := newTestShell(t)

	s.RunLine("exit")

	assert.True(t, s.quit)
	assert.Equal(t, 0, s.exitCode)
	assert.Equal(t, 0, s.LastStatus())
}

func TestBuiltinErrorsDoNotKillShell(t *testing.T) {
	s, _, stderr := newTestShell(t)

	for _, line := range []string{
		"cd",
		"mkdir",
		"rm",
		"touch",
		"help bogus",
	} {
		stderr.Reset()
		s.RunLine(line)
		assert.Equalf(t, 1, s.LastStatus(), "line %q", line)
		assert.NotEmptyf(t, stderr.String(), "line %q should report an error", line)
		assert.False(t, s.quit)
	}
}

func TestBuiltinRegistry(t *testing.T) {
	want := []string{"cd", "exit", "help", "ls", "mkdir", "poweroff", "pwd", "rm", "touch"}
	assert.Equal(t, want, BuiltinNames())

	for name, builtin := range AllBuiltins {
		assert.NotNilf(t, builtin.Main, "builtin %q has no entry point", name)
		assert.NotEmptyf(t, builtin.Use, "builtin %q has no usage", name)
	}
}
