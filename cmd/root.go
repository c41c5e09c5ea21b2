package cmd

import (
	"github.com/spf13/cobra"

	"github.com/ziadkadry99/responsive-toolbar/internal/config"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "toolbar",
	Short: "Serve a responsive formatting toolbar page",
	Long: `Toolbar serves a single page holding a responsive formatting toolbar:
inline Bold/Italic/Underline and alignment buttons, plus an overflow menu
repeating the same actions for narrow screens. Clicks are sent back to the
server over a WebSocket.`,
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", config.DefaultConfigFile, "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
