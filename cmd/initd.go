package cmd

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/tinybox-os/tinybox/core/config"
	"github.com/tinybox-os/tinybox/core/initd"
)

// initCmd runs the PID-1 supervisor loop. It does not return.
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Run as the PID-1 supervisor.",
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true

		log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
			With().Timestamp().Logger()

		cfg, err := loadConfig()
		if err != nil {
			// A broken config must not keep the system from booting.
			log.Error().Err(err).Msg("config unusable, using defaults")
			cfg = config.Default()
		}

		return initd.New(cfg, log, os.Stdout).Run()
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
