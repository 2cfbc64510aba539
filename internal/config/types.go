package config

import "time"

// Config is the top-level docsview configuration, corresponding to .docsview.yml.
type Config struct {
	IndexPath  string        `yaml:"index_path" koanf:"index_path"`
	BaseURL    string        `yaml:"base_url" koanf:"base_url"`
	FocusDelay time.Duration `yaml:"focus_delay" koanf:"focus_delay"`
	NoticeTTL  time.Duration `yaml:"notice_ttl" koanf:"notice_ttl"`
	Server     ServerConfig  `yaml:"server" koanf:"server"`
	Render     RenderConfig  `yaml:"render" koanf:"render"`
}

// ServerConfig holds settings for `docsview serve`.
type ServerConfig struct {
	Port            int  `yaml:"port" koanf:"port"`
	AllowAllOrigins bool `yaml:"allow_all_origins" koanf:"allow_all_origins"`
}

// RenderConfig controls markdown rendering and code highlighting.
type RenderConfig struct {
	FallbackLanguage string `yaml:"fallback_language" koanf:"fallback_language"`
	LangPrefix       string `yaml:"lang_prefix" koanf:"lang_prefix"`
	TokenPrefix      string `yaml:"token_prefix" koanf:"token_prefix"`
	Style            string `yaml:"style" koanf:"style"`
	UnsafeHTML       bool   `yaml:"unsafe_html" koanf:"unsafe_html"`
	CacheSize        int    `yaml:"cache_size" koanf:"cache_size"`
}
