package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/pixfold/pixfold/config"
)

// NewVersionCmd creates the version command.
func NewVersionCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the server version",
		Run: func(cmd *cobra.Command, args []string) {
			cfg, err := config.LoadOrDefault(*configPath)
			if err != nil {
				cmd.PrintErrf("Failed to load settings: %v\n", err)
				os.Exit(1)
			}
			cmd.Printf("Version: %s\n", cfg.Server.Version)
		},
	}
}
