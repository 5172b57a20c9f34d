package initd

import "golang.org/x/sys/unix"

// ChildExit describes one reaped child process.
type ChildExit struct {
	Pid    int
	Status unix.WaitStatus
}

// ExitStatus translates the wait status into a shell-style exit status:
// the child's code for a normal exit, 1 for signal termination.
func (c ChildExit) ExitStatus() int {
	if c.Status.Exited() {
		return c.Status.ExitStatus()
	}
	return 1
}

// Reap collects every currently-exited child without blocking and returns
// their exits. It stops as soon as no more children are ready, so it is
// safe to call from the supervisor's idle loop on every SIGCHLD wake.
func Reap() []ChildExit {
	var exits []ChildExit
	for {
		var ws unix.WaitStatus
		pid, err := unix.Wait4(-1, &ws, unix.WNOHANG, nil)
		switch {
		case pid > 0:
			exits = append(exits, ChildExit{Pid: pid, Status: ws})

		case err == unix.EINTR:
			continue

		default:
			// No children ready (pid == 0) or none left (ECHILD).
			return exits
		}
	}
}
