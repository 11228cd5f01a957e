// Package cli implements the findphone command line on cobra.
package cli

import (
	"context"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/EtsTest-ReactNativeApps/Find-Phone-Country/internal/app"
)

// Options holds CLI-level configuration.
type Options struct {
	Verbose    bool
	ConfigPath string
	In         io.Reader
	Out        io.Writer
}

// NewRootCmd wires the cobra root command.
func NewRootCmd(ctx context.Context, opts Options) (*cobra.Command, error) {
	in, out := opts.In, opts.Out
	if in == nil {
		in = os.Stdin
	}
	if out == nil {
		out = os.Stdout
	}
	prompter := NewPrompter(in, out)

	container, err := app.BuildContainer(ctx, app.Options{
		Verbose:    opts.Verbose,
		ConfigPath: opts.ConfigPath,
		UI:         prompter,
	})
	if err != nil {
		return nil, err
	}

	lookupCmd := newLookupCommand(container)

	root := &cobra.Command{
		Use:   "findphone [number...]",
		Short: "findphone - phone number carrier and country lookup",
		Long:  "findphone asks a numverify-compatible service for the carrier, country of origin and line type of phone numbers.",
		// Positional arguments that match no subcommand are numbers.
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return cmd.Help()
			}
			return runLookup(cmd.Context(), cmd.OutOrStdout(), container, args, 0)
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return container.Close()
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetIn(in)
	root.SetOut(out)

	root.AddCommand(lookupCmd)
	root.AddCommand(newSessionCommand(container, prompter))
	root.AddCommand(newHistoryCommand(container))
	root.AddCommand(newConfigCommand(container))
	root.AddCommand(newDoctorCommand(container))
	root.AddCommand(newVersionCommand())
	return root, nil
}
