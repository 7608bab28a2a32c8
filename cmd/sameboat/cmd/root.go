package cmd

import (
	"context"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "sameboat",
	Short: "SameBoat web application",
	Long: `SameBoat serves the account registration and sign-in pages.

Available commands:
  serve      Run the web server
  version    Print the version

Use "sameboat [command] --help" for more information about a command.`,
	SilenceUsage: true,
}

// Execute executes the root command
func Execute() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}
