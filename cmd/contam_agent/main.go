// Package main provides the entry point for the fungal contamination checker CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "contam_agent",
	Short: "Fungal contamination checker",
	Long:  "Flags candidate contamination among sequenced fungal taxa by matching detection tables against a curated reference and scoring weighted evidence across supporting properties.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
