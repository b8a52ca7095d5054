package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"syllabus-analyzer/internal/bootstrap"
	"syllabus-analyzer/internal/shared/server"
)

var servePort string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the web analyzer",
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&servePort, "port", "", "listen port (default $PORT or 8080)")
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg := loadConfig()
	if servePort != "" {
		cfg.Port = servePort
	}
	app, err := bootstrap.Build(cfg)
	if err != nil {
		return err
	}

	ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer cancel()
	cmd.Printf("Serving on http://localhost%s\n", server.Addr(cfg.Port))
	return server.Serve(ctx, server.Addr(cfg.Port), app.Router, server.DefaultShutdownTimeout)
}
