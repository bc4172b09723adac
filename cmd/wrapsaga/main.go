// Package main implements wrapsaga, the command-line client for TechWrapSaga.
// It fetches wrap data from the API, renders recap cards to SVG or PNG
// locally, and shares recap links. The server stays pixel-free: all image
// capture happens here, on the client.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	apiBase   string
	shareBase string
)

// rootCmd represents the base command.
var rootCmd = &cobra.Command{
	Use:   "wrapsaga",
	Short: "TechWrapSaga client — download and share your 2025 recap card",
	Long: `wrapsaga talks to a TechWrapSaga API server, renders recap cards
locally, and shares recap links through the platform share facilities.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&apiBase, "api", "http://localhost:8080",
		"base URL of the TechWrapSaga API")
	rootCmd.PersistentFlags().StringVar(&shareBase, "share-base", "http://localhost:5173",
		"public base URL used to build recap share links")

	rootCmd.AddCommand(downloadCmd)
	rootCmd.AddCommand(shareCmd)
	rootCmd.AddCommand(renderCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
