package initd

import (
	"os/exec"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sys/unix"
)

func TestChildExitStatus(t *testing.T) {
	cases := map[string]struct {
		status unix.WaitStatus
		want   int
	}{
		"clean-exit":  {unix.WaitStatus(0x0000), 0},
		"exit-code-3": {unix.WaitStatus(0x0300), 3},
		"signaled":    {unix.WaitStatus(uint32(unix.SIGKILL)), 1},
	}

	for tn, tc := range cases {
		t.Run(tn, func(t *testing.T) {
			exit := ChildExit{Pid: 1234, Status: tc.status}
			assert.Equal(t, tc.want, exit.ExitStatus())
		})
	}
}

func TestReapNoChildren(t *testing.T) {
	assert.Empty(t, Reap(), "nothing to reap without children")
}

func TestReapDrainsAllExitedChildren(t *testing.T) {
	if _, err := exec.LookPath("true"); err != nil {
		t.Skip("true not installed")
	}

	const numChildren = 3

	want := make(map[int]bool)
	for i := 0; i < numChildren; i++ {
		cmd := exec.Command("true")
		require.NoError(t, cmd.Start())
		want[cmd.Process.Pid] = true
	}

	// The children exit on their own schedule; drain until all are
	// collected. Each must be reaped exactly once.
	reaped := make(map[int]int)
	deadline := time.Now().Add(5 * time.Second)
	for len(reaped) < numChildren && time.Now().Before(deadline) {
		for _, exit := range Reap() {
			reaped[exit.Pid]++
			assert.Equal(t, 0, exit.ExitStatus())
		}
		time.Sleep(10 * time.Millisecond)
	}

	require.Len(t, reaped, numChildren, "every child must be reaped")
	for pid, count := range reaped {
		assert.True(t, want[pid], "reaped unexpected pid %d", pid)
		assert.Equal(t, 1, count, "pid %d reaped more than once", pid)
	}
}
