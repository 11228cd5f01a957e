package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/EtsTest-ReactNativeApps/Find-Phone-Country/internal/app"
	"github.com/EtsTest-ReactNativeApps/Find-Phone-Country/internal/application/session"
	"github.com/EtsTest-ReactNativeApps/Find-Phone-Country/internal/domain"
)

const sessionHelp = `Type a phone number with its country code to look it up.
Commands:
  load     pick a number from the address book
  again    repeat the lookup of the current number
  clear    reset the screen
  history  show recent lookups
  help     show this help
  quit     leave the session
`

func newSessionCommand(container *app.Container, prompter *Prompter) *cobra.Command {
	return &cobra.Command{
		Use:   "session",
		Short: "Interactive lookup prompt",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSession(cmd.Context(), cmd.OutOrStdout(), container, prompter)
		},
	}
}

func runSession(ctx context.Context, out io.Writer, container *app.Container, prompter *Prompter) error {
	ctrl := container.NewSession()
	region := container.Config.Region()

	// The spinner follows the Querying status. Listeners run serially.
	var spin *Spinner
	sub := ctrl.Subscribe(func(s session.State) {
		if s.Status == session.StatusQuerying {
			if spin == nil {
				spin = NewSpinner(out, "Looking up "+s.Query)
				spin.Start()
			}
			return
		}
		if spin != nil {
			spin.Stop()
			spin = nil
		}
	})
	defer sub.Unsubscribe()

	fmt.Fprint(out, sessionHelp)
	for {
		if err := ctx.Err(); err != nil {
			return nil
		}
		fmt.Fprint(out, "> ")
		line, err := prompter.ReadLine()
		if err != nil && !errors.Is(err, io.EOF) {
			return err
		}
		eof := errors.Is(err, io.EOF)

		switch strings.ToLower(line) {
		case "":
		case "quit", "exit":
			return nil
		case "help":
			fmt.Fprint(out, sessionHelp)
		case "clear":
			ctrl.Clear()
			fmt.Fprintln(out, MsgSessionCleared)
		case "history":
			records, err := container.HistoryStore.List(ctx, domain.HistoryFilter{Limit: domain.DefaultHistoryLimit})
			if err != nil {
				fmt.Fprintf(out, "history unavailable: %v\n", err)
				break
			}
			RenderHistory(out, records, region)
		case "load":
			before := ctrl.State()
			ctrl.LoadFromContacts(ctx)
			ctrl.Wait()
			s := ctrl.State()
			switch {
			case s.Notice != nil && s.Notice != before.Notice:
				RenderNotice(out, s.Notice)
			case s.Query != before.Query || s.Seq != before.Seq:
				fmt.Fprintf(out, "Loaded %s. Type \"again\" to look it up.\n", s.Query)
			default:
				fmt.Fprintln(out, MsgNoContactLoaded)
			}
		case "again":
			ctrl.Submit(ctx)
			ctrl.Wait()
			RenderState(out, ctrl.State(), region)
		default:
			ctrl.InputChanged(line)
			ctrl.Submit(ctx)
			ctrl.Wait()
			RenderState(out, ctrl.State(), region)
		}

		if eof {
			fmt.Fprintln(out)
			return nil
		}
	}
}
