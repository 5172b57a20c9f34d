package cmd

import (
	"os"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/tinybox-os/tinybox/core/config"
	"github.com/tinybox-os/tinybox/core/shell"
)

// shCmd runs the interactive shell.
var shCmd = &cobra.Command{
	Use:     "sh",
	Aliases: []string{"tsh"},
	Short:   "Run the interactive shell.",
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := loadConfig()
		if err != nil {
			cfg = config.Default()
		}

		s := shell.New(afero.NewOsFs(), cfg, os.Stdin, os.Stdout, os.Stderr)
		os.Exit(s.Run())
	},
}

func init() {
	rootCmd.AddCommand(shCmd)
}
