package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/docsview/internal/site"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the rendered documentation over HTTP",
	Long: `Starts an HTTP server that renders each indexed document with
highlighted, copyable code blocks. It also exposes /api/search and a
/ws/preview websocket for live markdown preview.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("port") {
			cfg.Server.Port, _ = cmd.Flags().GetInt("port")
		}
		openBrowser, _ := cmd.Flags().GetBool("open")

		idx, err := loadIndex(cfg)
		if err != nil {
			return err
		}
		logger := newLogger()
		renderer, err := newRenderer(cfg, logger)
		if err != nil {
			return err
		}

		srv, err := site.New(site.Config{
			Port:        cfg.Server.Port,
			AllowAll:    cfg.Server.AllowAllOrigins,
			Style:       cfg.Render.Style,
			TokenPrefix: cfg.Render.TokenPrefix,
		}, idx, renderer, logger)
		if err != nil {
			return fmt.Errorf("creating server: %w", err)
		}

		// Graceful shutdown.
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		go func() {
			<-ctx.Done()
			fmt.Fprintln(os.Stderr, "\nShutting down server...")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = srv.Shutdown(shutdownCtx)
		}()

		if openBrowser {
			site.OpenBrowser(fmt.Sprintf("http://localhost:%d", cfg.Server.Port))
		}

		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	},
}

func init() {
	serveCmd.Flags().Int("port", 8080, "port to listen on (overrides server.port)")
	serveCmd.Flags().Bool("open", false, "open the browser after starting")
	rootCmd.AddCommand(serveCmd)
}
