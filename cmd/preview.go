package cmd

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/responsive-toolbar/internal/preview"
	"github.com/ziadkadry99/responsive-toolbar/internal/toolbar"
)

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Draw the toolbar in the terminal at a given width",
	Long: `Draws the toolbar as it would lay out at the given width: all buttons
inline when they fit, otherwise the overflow button with its menu listed
below. Without --width the COLUMNS environment variable is used, then 80.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		tb, err := toolbar.New(toolbar.WithTitle(cfg.ToolbarTitle))
		if err != nil {
			return err
		}

		width, _ := cmd.Flags().GetInt("width")
		if width <= 0 {
			width = terminalWidth()
		}

		fmt.Println(preview.Render(tb, width))
		if verbose {
			fmt.Fprintf(os.Stderr, "width %d, breakpoint %d, collapsed %v\n",
				width, preview.Breakpoint(tb), preview.Collapsed(tb, width))
		}
		return nil
	},
}

func terminalWidth() int {
	if n, err := strconv.Atoi(os.Getenv("COLUMNS")); err == nil && n > 0 {
		return n
	}
	return 80
}

func init() {
	previewCmd.Flags().Int("width", 0, "terminal width in columns")
	rootCmd.AddCommand(previewCmd)
}
