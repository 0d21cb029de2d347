package commands

import (
	"context"

	"github.com/MKhiriev/go-wa-sender/internal/config"
	"github.com/MKhiriev/go-wa-sender/models"
	"github.com/spf13/cobra"
)

// Execute builds the command tree and runs the command selected by the
// process arguments.
func Execute(ctx context.Context, info models.AppBuildInfo) error {
	return newRootCmd(info).ExecuteContext(ctx)
}

func newRootCmd(info models.AppBuildInfo) *cobra.Command {
	root := &cobra.Command{
		Use:           "wasender",
		Short:         "Send WhatsApp text messages from a linked device",
		Version:       info.WithDefaults().BuildVersion(),
		SilenceUsage:  true,
		SilenceErrors: false,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInteractive(cmd, info)
		},
	}

	config.RegisterFlags(root.PersistentFlags())

	root.AddCommand(runCmd(info), sendCmd(info), resetCmd(), versionCmd(info))
	return root
}

// run: interactive sender with the operator TUI and the optional HTTP API.
func runCmd(info models.AppBuildInfo) *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Start the interactive sender",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInteractive(cmd, info)
		},
	}
}
