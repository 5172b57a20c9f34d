package cmd

import (
	"github.com/spf13/cobra"
	"github.com/tinybox-os/tinybox/core/power"
)

// poweroffCmd flushes filesystems and powers the machine down.
var poweroffCmd = &cobra.Command{
	Use:   "poweroff",
	Short: "Flush filesystems and power off.",
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true
		return power.Off()
	},
}

func init() {
	rootCmd.AddCommand(poweroffCmd)
}
