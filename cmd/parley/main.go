package main

import (
	"os"

	"github.com/spf13/cobra"

	"parley/internal/interfaces/cli/migrate"
	"parley/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "parley",
		Short: "Parley - helpdesk ticketing service",
		Long:  `Parley is a helpdesk ticketing service with live updates, a knowledge base, and AI-assisted response suggestions.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
