package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/EtsTest-ReactNativeApps/Find-Phone-Country/internal/app"
	"github.com/EtsTest-ReactNativeApps/Find-Phone-Country/internal/domain"
)

func newLookupCommand(container *app.Container) *cobra.Command {
	var timeout time.Duration

	cmd := &cobra.Command{
		Use:   "lookup <number...>",
		Short: "Look up carrier, country and line type of phone numbers",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLookup(cmd.Context(), cmd.OutOrStdout(), container, args, timeout)
		},
	}

	cmd.Flags().DurationVar(&timeout, "timeout", 0, "Overall deadline for all lookups (0 = none)")
	return cmd
}

// runLookup prints one block per number and fails when any number could not
// be verified.
func runLookup(ctx context.Context, out io.Writer, container *app.Container, numbers []string, timeout time.Duration) error {
	if container.LookupService == nil {
		return errors.New(ErrLookupServiceUnavailable)
	}
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	reports, err := container.LookupService.Run(ctx, numbers)
	if err != nil {
		return err
	}

	region := container.Config.Region()
	failed := 0
	for i, rep := range reports {
		if i > 0 {
			fmt.Fprintln(out)
		}
		RenderReport(out, rep, region)
		if rep.Outcome.Kind != domain.OutcomeSuccess || !rep.Outcome.Result.Valid {
			failed++
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d numbers could not be verified", failed, len(reports))
	}
	return nil
}
