package cmd

import (
	"github.com/spf13/cobra"

	"github.com/ziadkadry99/responsive-toolbar/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize toolbar configuration with an interactive wizard",
	Long:  `Runs an interactive wizard to configure the toolbar server and writes the config file (.toolbar.yml by default).`,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := config.RunWizard(cfgFile)
		return err
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
