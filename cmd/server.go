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

	"github.com/ziadkadry99/responsive-toolbar/internal/server"
	"github.com/ziadkadry99/responsive-toolbar/internal/session"
)

var serverPort int

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Start the toolbar page server",
	Long:  `Starts the HTTP server that renders the toolbar page at /, serves imported stylesheets under /frontend/, and receives click events on /ws/events.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("port") {
			cfg.Port = serverPort
		}

		pages, base, err := buildPages(cfg)
		if err != nil {
			return err
		}

		frontendDir := ""
		if server.FrontendAvailable(cfg.FrontendDir) {
			frontendDir = cfg.FrontendDir
		}

		views := session.NewRegistry(cfg.SessionTTLDuration(), session.WithMaxViews(cfg.MaxViews))
		srv := server.New(server.Config{
			Port:           cfg.Port,
			FrontendDir:    frontendDir,
			AllowAll:       cfg.AllowAllOrigins,
			RequestTimeout: cfg.RequestTimeoutDuration(),
		}, pages, views, base)

		// Graceful shutdown.
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		go views.Run(ctx, time.Minute)

		go func() {
			<-ctx.Done()
			fmt.Fprintln(os.Stderr, "\nShutting down server...")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			srv.Shutdown(shutdownCtx)
		}()

		fmt.Fprintf(os.Stderr, "toolbar server %s starting on port %d\n", Version, cfg.Port)
		fmt.Fprintf(os.Stderr, "  Routes: %v\n", pages.Routes())
		if frontendDir != "" {
			fmt.Fprintf(os.Stderr, "  Frontend: %s\n", frontendDir)
		}

		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	},
}

func init() {
	serverCmd.Flags().IntVar(&serverPort, "port", 8080, "Port to listen on (overrides config)")
	rootCmd.AddCommand(serverCmd)
}
