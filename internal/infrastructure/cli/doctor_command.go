package cli

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/EtsTest-ReactNativeApps/Find-Phone-Country/internal/app"
)

func newDoctorCommand(container *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Diagnose environment setup",
		RunE: func(cmd *cobra.Command, args []string) error {
			if container.DoctorService == nil {
				return errors.New(ErrDoctorServiceUnavailable)
			}
			report, err := container.DoctorService.Run(cmd.Context())
			renderDoctorReport(cmd.OutOrStdout(), report)
			if err != nil {
				return err
			}
			if report.Failed() {
				return errors.New("doctor found problems")
			}
			return nil
		},
	}
}
