package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jaras-platform/jaras/internal/interfaces/cli/migrate"
	"github.com/jaras-platform/jaras/internal/interfaces/cli/quote"
	"github.com/jaras-platform/jaras/internal/interfaces/cli/seed"
	"github.com/jaras-platform/jaras/internal/interfaces/cli/server"
	"github.com/jaras-platform/jaras/internal/shared/version"
)

func main() {
	rootCmd := &cobra.Command{
		Use:           "jaras",
		Short:         "Jaras - subscription pricing calculator",
		Long:          `Jaras prices Jaras Platform subscriptions in SAR with VAT, for new customers and mid-term plan changes.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
		seed.NewCommand(),
		quote.NewCommand(),
		&cobra.Command{
			Use:   "version",
			Short: "Print build information",
			Run: func(cmd *cobra.Command, args []string) {
				fmt.Fprintln(cmd.OutOrStdout(), version.String())
			},
		},
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
