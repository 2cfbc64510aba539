package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/docsview/internal/search"
	"github.com/ziadkadry99/docsview/internal/site"
	"github.com/ziadkadry99/docsview/internal/tui"
)

var searchPrint bool

var searchCmd = &cobra.Command{
	Use:   "search",
	Short: "Open the interactive document search overlay",
	Long: `Opens a search overlay over the documentation index. Type to filter,
use the arrow keys to move, enter to open the document in the browser
and esc to close.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		idx, err := loadIndex(cfg)
		if err != nil {
			return err
		}
		logger := newLogger()

		var picked string
		nav := site.BrowserNavigator(cfg.BaseURL)
		if searchPrint {
			nav = search.NavigatorFunc(func(path string) { picked = path })
		}

		if err := tui.Run(idx, tui.Options{
			Navigator:  nav,
			FocusDelay: cfg.FocusDelay,
			Logger:     logger,
		}); err != nil {
			return fmt.Errorf("search overlay: %w", err)
		}

		if picked != "" {
			fmt.Fprintln(cmd.OutOrStdout(), picked)
		}
		return nil
	},
}

func init() {
	searchCmd.Flags().BoolVar(&searchPrint, "print", false, "print the selected document path instead of opening it")
	rootCmd.AddCommand(searchCmd)
}
