// Package main provides the Talento-Hub recruiter CLI and gateway server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "talentohub",
	Short: "Talento-Hub recruiter tooling",
	Long:  "talentohub normalizes the legacy Talento-Hub backend's unstable payloads into stable recruiter views, as a CLI and as an HTTP gateway.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
