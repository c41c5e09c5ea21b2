package config

// DefaultConfigFile is the config path used when --config is not given.
const DefaultConfigFile = ".toolbar.yml"

// DefaultStylesheets are the stylesheet patterns imported when the frontend
// directory exists and no patterns are configured.
var DefaultStylesheets = []string{
	"styles/**/*.css",
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Port:            8080,
		Title:           "Responsive Toolbar",
		ToolbarTitle:    "Toolbar",
		FrontendDir:     "frontend",
		Stylesheets:     append([]string(nil), DefaultStylesheets...),
		AllowAllOrigins: false,
		SessionTTL:      "5m",
		MaxViews:        10000,
		RequestTimeout:  "60s",
	}
}
