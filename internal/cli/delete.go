package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/me/workdeck/internal/browser"
	"github.com/me/workdeck/pkg/model"
	"github.com/spf13/cobra"
)

func newDeleteCmd() *cobra.Command {
	var flagYes bool

	cmd := &cobra.Command{
		Use:   "delete <filename>",
		Short: "Delete a saved workflow",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]

			if !flagYes {
				confirm := terminalConfirmer{in: os.Stdin, out: cmd.OutOrStdout()}
				if !confirm.Confirm(browser.ConfirmDeleteMessage) {
					fmt.Println("Aborted.")
					return nil
				}
			}

			if err := api.DeleteWorkflow(cmd.Context(), name); err != nil {
				var remote *model.RemoteError
				if errors.As(err, &remote) {
					return fmt.Errorf("server refused: %s", remote.Message)
				}
				return fmt.Errorf("delete workflow: %w", err)
			}

			fmt.Printf("Deleted %s\n", name)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&flagYes, "yes", "y", false, "Skip the confirmation prompt")
	return cmd
}
