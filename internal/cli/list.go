package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List saved workflows",
		RunE: func(cmd *cobra.Command, args []string) error {
			files, err := api.ListWorkflows(cmd.Context())
			if err != nil {
				return fmt.Errorf("list workflows: %w", err)
			}

			if len(files) == 0 {
				fmt.Println("No saved workflows found.")
				return nil
			}
			for _, name := range files {
				fmt.Println(name)
			}
			return nil
		},
	}
}
