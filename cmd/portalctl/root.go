package main

import (
	"github.com/spf13/cobra"

	"github.com/Fco200/UES-Academic-Helper/pkg/di"
)

var rootCmd = &cobra.Command{
	Use:   "portalctl",
	Short: "Maintenance tool for UES Academic Helper",
	Long: `portalctl talks to the same database and notification providers as the API.
Configuration is read from the environment and an optional .env file.`,
	SilenceUsage: true,
}

// withContainer wires the core services, runs fn and releases connections
func withContainer(fn func(cmd *cobra.Command, args []string, c *di.Container) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		container := di.NewContainer()
		if err := container.InitializeCore(); err != nil {
			return err
		}
		defer container.Cleanup()

		return fn(cmd, args, container)
	}
}

func init() {
	rootCmd.AddCommand(sweepCmd)
	rootCmd.AddCommand(remindCmd)
	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(hashPasswordCmd)
}
