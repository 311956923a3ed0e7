package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/daniela/contamination-checker/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the analysis engine over HTTP",
	Long:  "Starts a local HTTP API: POST /analyze runs the pipeline for an uploaded input table, GET /weights and GET /reference/{variant} expose the bundled configuration.",
	RunE:  runServe,
}

var (
	servePort    int
	serveDataDir string
)

func init() {
	serveCmd.Flags().IntVarP(&servePort, "port", "p", 8080, "Port to listen on")
	serveCmd.Flags().StringVar(&serveDataDir, "data-dir", "data", "Directory with curated tables and default weights")

	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	srv, err := server.New(server.Config{Port: servePort, DataDir: serveDataDir})
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}
	return srv.Start()
}
