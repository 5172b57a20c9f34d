package shell

import (
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHelpList(t *testing.T) {
	s, stdout, _ := newTestShell(t)

	s.RunLine("help")
	require.Equal(t, 0, s.LastStatus())

	g := goldie.New(t)
	g.Assert(t, "help_list", stdout.Bytes())
}

func TestHelpDetail(t *testing.T) {
	s, stdout, _ := newTestShell(t)

	s.RunLine("help rm")
	require.Equal(t, 0, s.LastStatus())

	g := goldie.New(t)
	g.Assert(t, "help_detail_rm", stdout.Bytes())
}

func TestHelpUnknownName(t *testing.T) {
	s, _, stderr := newTestShell(t)

	s.RunLine("help frobnicate")

	assert.Equal(t, 1, s.LastStatus())
	assert.Contains(t, stderr.String(), "no such builtin: frobnicate")
}
