package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/manifoldco/promptui"
)

// detectFrontendDir returns the first conventional stylesheet directory
// present in the working directory.
func detectFrontendDir() string {
	for _, dir := range []string{"frontend", "static", "web"} {
		if info, err := os.Stat(dir); err == nil && info.IsDir() {
			return dir
		}
	}
	return "frontend"
}

// RunWizard runs an interactive configuration wizard and returns the
// resulting Config. It also saves the config to path.
func RunWizard(path string) (*Config, error) {
	fmt.Println("Let's configure the toolbar server.")
	fmt.Println()

	defaults := DefaultConfig()

	// 1. Port.
	portPrompt := promptui.Prompt{
		Label:   "Port to listen on",
		Default: strconv.Itoa(defaults.Port),
		Validate: func(s string) error {
			n, err := strconv.Atoi(s)
			if err != nil || n < 0 || n > 65535 {
				return fmt.Errorf("enter a port between 0 and 65535")
			}
			return nil
		},
	}
	portStr, err := portPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("port: %w", err)
	}
	port, _ := strconv.Atoi(portStr)

	// 2. Page title.
	titlePrompt := promptui.Prompt{
		Label:   "Page title",
		Default: defaults.Title,
	}
	title, err := titlePrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("title: %w", err)
	}

	// 3. Frontend directory.
	frontendPrompt := promptui.Prompt{
		Label:   "Frontend directory (stylesheets)",
		Default: detectFrontendDir(),
	}
	frontendDir, err := frontendPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("frontend dir: %w", err)
	}

	// 4. Stylesheet patterns.
	stylesPrompt := promptui.Prompt{
		Label:   "Stylesheet patterns (comma-separated globs)",
		Default: "styles/**/*.css",
	}
	stylesStr, err := stylesPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("stylesheet patterns: %w", err)
	}

	// 5. CORS.
	corsPrompt := promptui.Select{
		Label: "Allowed origins",
		Items: []string{
			"localhost only",
			"any origin (development)",
		},
	}
	corsIdx, _, err := corsPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("origin selection: %w", err)
	}

	cfg := DefaultConfig()
	cfg.Port = port
	cfg.Title = title
	cfg.FrontendDir = frontendDir
	cfg.Stylesheets = splitAndTrim(stylesStr)
	cfg.AllowAllOrigins = corsIdx == 1

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	if err := cfg.Save(path); err != nil {
		return nil, fmt.Errorf("saving config: %w", err)
	}

	fmt.Printf("\nConfiguration saved to %s\n", path)
	return cfg, nil
}

// splitAndTrim splits a comma-separated string and drops empty entries.
func splitAndTrim(s string) []string {
	var result []string
	for _, token := range strings.Split(s, ",") {
		if token = strings.TrimSpace(token); token != "" {
			result = append(result, token)
		}
	}
	return result
}
