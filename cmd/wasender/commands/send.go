package commands

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/go-wa-sender/internal/client"
	"github.com/MKhiriev/go-wa-sender/internal/logger"
	"github.com/MKhiriev/go-wa-sender/internal/service"
	"github.com/MKhiriev/go-wa-sender/internal/tui"
	"github.com/MKhiriev/go-wa-sender/models"
	"github.com/spf13/cobra"
)

var errSendFailed = errors.New("message was not sent")

// send --to <phone> --text <message>: connect, send once and exit.
func sendCmd(info models.AppBuildInfo) *cobra.Command {
	var to, text string

	cmd := &cobra.Command{
		Use:   "send",
		Short: "Send a single message and exit",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			log := logger.NewClientLogger(logRole, cfg.Log.File).Leveled(cfg.Log.Level)
			notifier := tui.NewConsoleNotifier(cmd.OutOrStdout(), log)

			rt, err := newRuntime(cfg, info, log, service.WithNotifier(notifier))
			if err != nil {
				return err
			}
			app, err := client.NewApp(rt.services, rt.storages, log)
			if err != nil {
				return fmt.Errorf("init client app error: %w", err)
			}

			result, err := app.Send(cmd.Context(), to, text)
			if err != nil {
				return reportTerminated(cmd, err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), describeResult(result))
			if result.Status != models.DispatchSuccess {
				return errSendFailed
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&to, "to", "", "recipient phone number with country code")
	cmd.Flags().StringVar(&text, "text", "", "message text")
	_ = cmd.MarkFlagRequired("to")
	_ = cmd.MarkFlagRequired("text")
	return cmd
}

func describeResult(result models.DispatchResult) string {
	switch result.Status {
	case models.DispatchSuccess:
		return fmt.Sprintf("sent to %s, message id %s", result.Address, result.MessageID)
	case models.DispatchNotRegistered:
		return fmt.Sprintf("%s is not registered", result.Address)
	default:
		return fmt.Sprintf("send to %s failed: %s", result.Address, result.Detail)
	}
}
