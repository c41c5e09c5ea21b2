package cmd

import (
	"bytes"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/responsive-toolbar/internal/page"
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render the root page to static HTML",
	Long:  `Renders the page served at / once and writes the HTML document to stdout or a file. The static page opens its overflow menu but sends no click events.`,
	RunE:  runRender,
}

func init() {
	renderCmd.Flags().StringP("output", "o", "", "write HTML to this file instead of stdout")
	rootCmd.AddCommand(renderCmd)
}

func runRender(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	pages, base, err := buildPages(cfg)
	if err != nil {
		return err
	}

	factory, ok := pages.Resolve("/")
	if !ok {
		return fmt.Errorf("no view registered for /")
	}
	view, err := factory()
	if err != nil {
		return fmt.Errorf("building view: %w", err)
	}
	prepared, err := page.Prepare(view, base)
	if err != nil {
		return fmt.Errorf("preparing page: %w", err)
	}

	var buf bytes.Buffer
	if err := page.WriteDocument(&buf, prepared, ""); err != nil {
		return err
	}

	output, _ := cmd.Flags().GetString("output")
	if output == "" {
		_, err := os.Stdout.Write(buf.Bytes())
		return err
	}
	if err := os.WriteFile(output, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("writing %s: %w", output, err)
	}
	fmt.Fprintf(os.Stderr, "Page written to %s\n", output)
	return nil
}
