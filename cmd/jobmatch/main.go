// Package main provides the entry point for the jobmatch CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "jobmatch",
	Short: "Career-page crawler and resume matcher",
	Long:  "jobmatch crawls company career pages into structured job postings and ranks them against a resume using a hybrid AI/keyword score.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
