package cmd

import (
	"fmt"
	"os"

	"github.com/ziadkadry99/responsive-toolbar/internal/config"
	"github.com/ziadkadry99/responsive-toolbar/internal/frontend"
	"github.com/ziadkadry99/responsive-toolbar/internal/page"
	"github.com/ziadkadry99/responsive-toolbar/internal/server"
	"github.com/ziadkadry99/responsive-toolbar/internal/toolbar"
)

// loadConfig loads and validates the config, providing a user-friendly error.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w\nRun `toolbar init` to create a config file", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", cfgFile, err)
	}
	return cfg, nil
}

// buildPages registers the application's views and collects the page
// settings every view starts from.
func buildPages(cfg *config.Config) (*page.Router, *page.Settings, error) {
	pages := page.NewRouter()
	if err := toolbar.Register(pages, toolbar.WithTitle(cfg.ToolbarTitle)); err != nil {
		return nil, nil, fmt.Errorf("registering routes: %w", err)
	}

	base := page.NewSettings()
	base.SetTitle(cfg.Title)

	if server.FrontendAvailable(cfg.FrontendDir) {
		hrefs, err := frontend.Resolve(os.DirFS(cfg.FrontendDir), cfg.Stylesheets)
		if err != nil {
			return nil, nil, fmt.Errorf("resolving stylesheets: %w", err)
		}
		for _, h := range hrefs {
			base.AddStylesheet(h)
		}
		if verbose {
			fmt.Fprintf(os.Stderr, "Imported %d stylesheet(s) from %s\n", len(hrefs), cfg.FrontendDir)
		}
	} else if verbose {
		fmt.Fprintf(os.Stderr, "Frontend directory %q not found; no stylesheets imported\n", cfg.FrontendDir)
	}

	return pages, base, nil
}
