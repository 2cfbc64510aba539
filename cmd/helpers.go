package cmd

import (
	"fmt"
	"log/slog"

	"github.com/ziadkadry99/docsview/internal/config"
	"github.com/ziadkadry99/docsview/internal/docindex"
	"github.com/ziadkadry99/docsview/internal/markdown"
)

// loadConfig loads and validates the config, providing a user-friendly error.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w\nRun `docsview init` to create a config file", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", cfgFile, err)
	}
	return cfg, nil
}

// loadIndex reads the documentation index named by the config.
func loadIndex(cfg *config.Config) (*docindex.Index, error) {
	idx, err := docindex.Load(cfg.IndexPath)
	if err != nil {
		return nil, fmt.Errorf("loading index: %w", err)
	}
	return idx, nil
}

// newRenderer builds the cached markdown renderer described by cfg.
func newRenderer(cfg *config.Config, logger *slog.Logger) (*markdown.CachedRenderer, error) {
	r := markdown.NewRenderer(markdown.Options{
		FallbackLanguage: cfg.Render.FallbackLanguage,
		LangPrefix:       cfg.Render.LangPrefix,
		TokenPrefix:      cfg.Render.TokenPrefix,
		UnsafeHTML:       cfg.Render.UnsafeHTML,
		Logger:           logger,
	})
	return markdown.NewCachedRenderer(r, cfg.Render.CacheSize)
}
