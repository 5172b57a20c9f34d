// Package power implements the one-shot power-off utility.
package power

import (
	"fmt"

	"golang.org/x/sys/unix"
)

// Off flushes filesystem buffers and asks the kernel to power down.
// On success it does not return.
func Off() error {
	unix.Sync()

	if err := unix.Reboot(unix.LINUX_REBOOT_CMD_POWER_OFF); err != nil {
		return fmt.Errorf("power off: %w", err)
	}
	return nil
}
