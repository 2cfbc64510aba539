package config

import "time"

// DefaultPath is the config file looked up in the working directory.
const DefaultPath = ".docsview.yml"

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		IndexPath:  "docs.json",
		BaseURL:    "http://localhost:8080",
		FocusDelay: 100 * time.Millisecond,
		NoticeTTL:  2 * time.Second,
		Server: ServerConfig{
			Port:            8080,
			AllowAllOrigins: false,
		},
		Render: RenderConfig{
			FallbackLanguage: "bash",
			LangPrefix:       "hljs language-",
			TokenPrefix:      "hljs-",
			Style:            "github",
			UnsafeHTML:       false,
			CacheSize:        128,
		},
	}
}
