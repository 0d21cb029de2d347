package commands

import (
	"bufio"
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-wa-sender/internal/client"
	"github.com/MKhiriev/go-wa-sender/internal/crypto"
	"github.com/MKhiriev/go-wa-sender/internal/logger"
	"github.com/MKhiriev/go-wa-sender/internal/service"
	"github.com/MKhiriev/go-wa-sender/internal/store"
	"github.com/spf13/cobra"
)

var errResetAborted = errors.New("reset aborted")

// reset [--yes]: remove the stored session so the next run pairs again.
func resetCmd() *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Remove the stored session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			log := logger.NewLogger(logRole).Leveled(cfg.Log.Level)

			if !yes && !confirm(cmd, fmt.Sprintf("Remove the stored session in %q? [y/N]: ", cfg.Session.AuthDir)) {
				return errResetAborted
			}

			storages := store.NewClientStorages(cfg.Session, crypto.NewKeyChainService(), log)
			app, err := client.NewApp(&service.ClientServices{}, storages, log)
			if err != nil {
				return err
			}
			if err = app.Reset(cmd.Context()); err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), "session removed, the next run will ask for pairing")
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "do not ask for confirmation")
	return cmd
}

func confirm(cmd *cobra.Command, prompt string) bool {
	cmd.Print(prompt)

	answer, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
	if err != nil && answer == "" {
		return false
	}
	answer = strings.ToLower(strings.TrimSpace(answer))
	return answer == "y" || answer == "yes"
}
