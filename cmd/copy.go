package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/docsview/internal/clipboard"
	"github.com/ziadkadry99/docsview/internal/markdown"
)

var copyBlock int

var copyCmd = &cobra.Command{
	Use:   "copy <file>",
	Short: "Copy a code block of a markdown file to the system clipboard",
	Long: `Renders the markdown file and copies the content of one of its code
blocks, exactly as its copy button would. Blocks are numbered from 1 in
document order.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		logger := newLogger()
		renderer, err := newRenderer(cfg, logger)
		if err != nil {
			return err
		}

		src, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("reading %s: %w", args[0], err)
		}

		view := markdown.NewView(renderer)
		if _, err := view.SetMarkdown(string(src)); err != nil {
			return fmt.Errorf("rendering %s: %w", args[0], err)
		}
		if len(view.Payloads()) == 0 {
			return fmt.Errorf("%s has no code blocks", args[0])
		}

		if err := view.Mount(clipboard.System, clipboard.WriterNotifier(cmd.ErrOrStderr()),
			clipboard.WithNoticeTTL(cfg.NoticeTTL)); err != nil {
			return err
		}
		defer view.Unmount()

		logger.Debug("copying code block", "file", args[0], "block", copyBlock)
		return view.Copy(copyBlock - 1)
	},
}

func init() {
	copyCmd.Flags().IntVar(&copyBlock, "block", 1, "code block number, starting at 1")
	rootCmd.AddCommand(copyCmd)
}
