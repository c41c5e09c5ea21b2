package config

// Config is the top-level toolbar server configuration, corresponding to
// .toolbar.yml.
type Config struct {
	Port            int      `yaml:"port" koanf:"port"`
	Title           string   `yaml:"title" koanf:"title"`
	ToolbarTitle    string   `yaml:"toolbar_title" koanf:"toolbar_title"`
	FrontendDir     string   `yaml:"frontend_dir" koanf:"frontend_dir"`
	Stylesheets     []string `yaml:"stylesheets" koanf:"stylesheets"`
	AllowAllOrigins bool     `yaml:"allow_all_origins" koanf:"allow_all_origins"`
	SessionTTL      string   `yaml:"session_ttl" koanf:"session_ttl"`
	MaxViews        int      `yaml:"max_views" koanf:"max_views"`
	RequestTimeout  string   `yaml:"request_timeout" koanf:"request_timeout"`
}
