package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command for the google-ads-mcp application
var rootCmd = &cobra.Command{
	Use:   "google-ads-mcp",
	Short: "MCP server for the Google Ads API",
	Long: `google-ads-mcp is a Model Context Protocol (MCP) server that gives AI
assistants read-only access to the Google Ads API.

It exposes two tools:
  - list_accessible_customers: discover the accounts the configured
    service account can access
  - search: execute GAQL reporting queries against an account`,
	SilenceUsage: true,
}

// version will be set by main
var version = "dev"

// SetVersion sets the version for the root command
func SetVersion(v string) {
	version = v
	rootCmd.Version = v
}

// Execute is the main entry point for the CLI application
func Execute() {
	rootCmd.SetVersionTemplate(`{{printf "google-ads-mcp version %s\n" .Version}}`)

	// If no subcommand is provided, run the serve command by default
	if len(os.Args) == 1 {
		os.Args = append(os.Args, "serve")
	}

	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(newServeCmd())
	rootCmd.AddCommand(newVersionCmd())
}
