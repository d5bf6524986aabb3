// Package cli implements the workdeck command line client.
package cli

import (
	"log/slog"
	"os"

	"github.com/me/workdeck/internal/client"
	"github.com/me/workdeck/internal/logging"
	"github.com/spf13/cobra"
)

var (
	flagServer    string
	flagDebug     bool
	flagLogLevel  string
	flagLogFormat string

	logger *slog.Logger
	api    *client.Client
)

// defaultServer returns the default server URL, checking WORKDECK_SERVER env var first.
func defaultServer() string {
	if s := os.Getenv("WORKDECK_SERVER"); s != "" {
		return s
	}
	return "http://localhost:8080"
}

// NewRootCmd creates the root cobra command for the workdeck CLI.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "workdeck",
		Short: "Workdeck — workflow browser",
		Long:  "Workdeck browses the workflow gallery and manages saved workflow files on a Workdeck server.",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if flagDebug {
				flagLogLevel = "debug"
			}
			logger = logging.New(flagLogLevel, flagLogFormat)
			api = client.New(flagServer, logger)
		},
		// main prints the error with the program prefix; cobra must
		// not print it a second time.
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	root.PersistentFlags().StringVar(&flagServer, "server", defaultServer(), "Workdeck server URL (or WORKDECK_SERVER env)")
	root.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging")
	root.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	root.PersistentFlags().StringVar(&flagLogFormat, "log-format", "text", "Log format (text, json)")

	root.AddCommand(
		newGalleryCmd(),
		newListCmd(),
		newDeleteCmd(),
		newOpenCmd(),
	)

	return root
}
