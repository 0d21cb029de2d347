package commands

import (
	"fmt"

	"github.com/MKhiriev/go-wa-sender/models"
	"github.com/spf13/cobra"
)

func versionCmd(info models.AppBuildInfo) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			info := info.WithDefaults()
			fmt.Fprintf(cmd.OutOrStdout(), "Build version: %s\n", info.BuildVersion())
			fmt.Fprintf(cmd.OutOrStdout(), "Build date: %s\n", info.BuildDate())
			fmt.Fprintf(cmd.OutOrStdout(), "Build commit: %s\n", info.BuildCommit())
		},
	}
}
