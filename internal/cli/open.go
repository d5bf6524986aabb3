package cli

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/me/workdeck/internal/browser"
	"github.com/spf13/cobra"
)

// workstationURL builds the editor URL a workflow loads into.
func workstationURL(server, name string) string {
	return strings.TrimRight(server, "/") + browser.WorkstationPath + "?filename=" + url.QueryEscape(name)
}

func newOpenCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "open <filename>",
		Short: "Print the workstation URL for a workflow",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Println(workstationURL(flagServer, args[0]))
			return nil
		},
	}
}
