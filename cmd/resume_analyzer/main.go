// Package main provides the entry point for the Resume Analyzer CLI and server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "resume_analyzer",
	Short: "Resume Analyzer HTTP API Server and CLI",
	Long:  "Resume Analyzer extracts text from uploaded resumes, derives structured features, computes a deterministic ATS compatibility score, and generates improvement suggestions via REST API or batch CLI.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
