package shell

import (
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/sys/unix"
)

// execReplace swaps the current process image; overridable in tests.
var execReplace = unix.Exec

// PowerOff flushes filesystem buffers and replaces the shell's process
// image with the power-off utility. If the exec fails the shell falls back
// to a clean exit so the failure is never fatal to the system.
func PowerOff(s *Shell, args []string) int {
	fmt.Fprintln(s.stdout, "Exiting shell and powering off...")

	unix.Sync()

	utility := s.config.PowerOffPath
	argv := []string{filepath.Base(utility)}
	if err := execReplace(utility, argv, os.Environ()); err != nil {
		// Power-off unavailable; exit the shell normally instead.
		fmt.Fprintf(s.stderr, "%s: %s: %v\n", args[0], utility, err)
		s.quit = true
		s.exitCode = 0
	}
	return 0
}

func init() {
	mustRegister("poweroff", &Builtin{
		Use:   "poweroff",
		Short: "Flush filesystems and power off the system.",
		Main:  PowerOff,
	})
}
