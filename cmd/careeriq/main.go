// Package main provides the entry point for the CareerIQ analysis CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "careeriq",
	Short: "Resume and job matching engine",
	Long:  "CareerIQ analyzes a resume against a job posting: skill matching, role readiness, improvement suggestions and learning roadmaps, with optional AI enrichment.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
