package cmd

import (
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/pixfold/pixfold/models"
)

// NewFolderCmd creates the folder command.
func NewFolderCmd(configPath *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "folder",
		Short: "Folder management commands",
	}

	cmd.AddCommand(
		newFolderListCmd(configPath),
		newFolderCreateCmd(configPath),
		newFolderDeleteCmd(configPath),
	)

	return cmd
}

func newFolderListCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all folders",
		Run: func(cmd *cobra.Command, args []string) {
			store, _, err := openStore(configPath)
			if err != nil {
				cmd.PrintErrf("Failed to connect to database: %v\n", err)
				os.Exit(1)
			}
			defer store.Close()

			folders, err := store.GetFolders()
			if err != nil {
				cmd.PrintErrf("Failed to get folders: %v\n", err)
				os.Exit(1)
			}

			if len(folders) == 0 {
				cmd.Println("No folders found.")
				return
			}

			cmd.Println("Folders:")
			for _, folder := range folders {
				created := time.Unix(folder.CreatedAt, 0).Format(time.DateOnly)
				cmd.Printf("  %s (created %s)\n", folder.Name, created)
			}
		},
	}
}

func newFolderCreateCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "create [name]",
		Short: "Create a new folder",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			store, _, err := openStore(configPath)
			if err != nil {
				cmd.PrintErrf("Failed to connect to database: %v\n", err)
				os.Exit(1)
			}
			defer store.Close()

			folder := models.Folder{Name: args[0]}
			if err := store.CreateFolder(folder); err != nil {
				cmd.PrintErrf("Failed to create folder: %v\n", err)
				os.Exit(1)
			}

			cmd.Printf("Folder %q created.\n", args[0])
		},
	}
}

func newFolderDeleteCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "delete [name]",
		Short: "Delete a folder and every image inside it",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			store, _, err := openStore(configPath)
			if err != nil {
				cmd.PrintErrf("Failed to connect to database: %v\n", err)
				os.Exit(1)
			}
			defer store.Close()

			if err := store.DeleteFolder(args[0]); err != nil {
				cmd.PrintErrf("Failed to delete folder: %v\n", err)
				os.Exit(1)
			}

			cmd.Printf("Folder %q and its images deleted.\n", args[0])
		},
	}
}
