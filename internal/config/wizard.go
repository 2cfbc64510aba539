package config

import (
	"fmt"
	"path/filepath"
	"strconv"

	"github.com/manifoldco/promptui"
)

// indexCandidates are the files checked, in order, for an existing
// documentation index.
var indexCandidates = []string{
	"docs.json",
	"docs/docs.json",
	"public/docs.json",
	"*.docs.json",
}

// highlightStyles are the chroma styles offered by the wizard.
var highlightStyles = []string{"github", "monokai", "dracula", "solarized-light", "nord"}

// detectIndex returns the first documentation index found in the current
// directory, or the default path.
func detectIndex() string {
	for _, pattern := range indexCandidates {
		matches, _ := filepath.Glob(pattern)
		if len(matches) > 0 {
			return matches[0]
		}
	}
	return DefaultConfig().IndexPath
}

// RunWizard runs an interactive configuration wizard and returns the
// resulting Config. It also saves the config to path.
func RunWizard(path string) (*Config, error) {
	fmt.Println("Welcome to docsview! Let's configure your project.")
	fmt.Println()

	cfg := DefaultConfig()

	// 1. Index file.
	indexPrompt := promptui.Prompt{
		Label:   "Path to the documentation index (JSON)",
		Default: detectIndex(),
	}
	indexPath, err := indexPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("index path: %w", err)
	}
	cfg.IndexPath = indexPath

	// 2. Base URL used when opening documents.
	urlPrompt := promptui.Prompt{
		Label:   "Base URL of the documentation site",
		Default: cfg.BaseURL,
	}
	baseURL, err := urlPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("base url: %w", err)
	}
	cfg.BaseURL = baseURL

	// 3. Highlight style.
	stylePrompt := promptui.Select{
		Label: "Select code highlight style",
		Items: highlightStyles,
	}
	_, style, err := stylePrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("style selection: %w", err)
	}
	cfg.Render.Style = style

	// 4. Server port.
	portPrompt := promptui.Prompt{
		Label:    "Port for docsview serve",
		Default:  strconv.Itoa(cfg.Server.Port),
		Validate: validatePort,
	}
	portStr, err := portPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("port: %w", err)
	}
	cfg.Server.Port, _ = strconv.Atoi(portStr)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if err := cfg.Save(path); err != nil {
		return nil, fmt.Errorf("saving config: %w", err)
	}

	fmt.Printf("\nConfiguration saved to %s\n", path)
	return cfg, nil
}

func validatePort(s string) error {
	port, err := strconv.Atoi(s)
	if err != nil {
		return fmt.Errorf("port must be a number")
	}
	if port < 0 || port > 65535 {
		return fmt.Errorf("port must be between 0 and 65535")
	}
	return nil
}
