package cmd

import (
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/tinybox-os/tinybox/core/config"
)

var cfgPath string

func loadConfig() (*config.Configuration, error) {
	return config.Load(afero.NewOsFs(), cfgPath)
}

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "tinybox",
	Short: "Minimal initramfs userland",
	Long:  `A multi-call userland binary providing the init supervisor, the tsh shell, and the power-off utility.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", config.DefaultPath, "config file path")
}
