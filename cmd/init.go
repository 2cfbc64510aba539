package cmd

import (
	"github.com/spf13/cobra"

	"github.com/ziadkadry99/docsview/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize docsview configuration with an interactive wizard",
	Long:  `Runs an interactive wizard that asks for the index location, site URL, highlight style and port, then writes the config file.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := config.RunWizard(cfgFile)
		return err
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
