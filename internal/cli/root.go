package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/recook-book/internal/config"
	"github.com/MKhiriev/recook-book/internal/logger"
	"github.com/MKhiriev/recook-book/models"
)

// RootOptions holds what every command shares.
type RootOptions struct {
	BuildInfo models.AppBuildInfo

	// Open defaults to OpenBackend.
	Open OpenFunc

	// Logger overrides the file logger built from the config.
	Logger *logger.Logger
}

// NewRootCommand creates the root command. Without a subcommand it starts
// the interactive UI.
func NewRootCommand(opts *RootOptions) *cobra.Command {
	if opts.Open == nil {
		opts.Open = OpenBackend
	}

	cmd := &cobra.Command{
		Use:   "recookbook",
		Short: "RECOOK BOOK - turn leftovers into meals",
		Long: `RECOOK BOOK is a community cookbook of leftover-friendly recipes.

Run without a command to open the interactive terminal UI. The recipe and
account commands need a login: pass --email and --password, or only --email
to be asked for the password.`,
		Version:       opts.BuildInfo.BuildVersion(),
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runTUI(cmd, opts)
		},
	}
	cmd.SetVersionTemplate(fmt.Sprintf("recookbook %s\n", opts.BuildInfo))

	config.RegisterFlags(cmd.PersistentFlags())

	cmd.AddCommand(NewTUICommand(opts))
	cmd.AddCommand(NewSignupCommand(opts))
	cmd.AddCommand(NewAccountsCommand(opts))
	cmd.AddCommand(NewRecipesCommand(opts))

	return cmd
}

// Execute runs cmd and returns the process exit code. Failures are printed
// to the error output of cmd.
func Execute(ctx context.Context, cmd *cobra.Command) int {
	err := cmd.ExecuteContext(ctx)
	if err == nil {
		return ExitOK
	}

	exitErr := asExitError(err)
	fmt.Fprintf(cmd.ErrOrStderr(), "Error: %s\n", exitErr.Message)

	return exitErr.Code
}

// loginFlags registers --email and --password on the persistent flags of a
// restricted command group.
func loginFlags(cmd *cobra.Command) *credentials {
	creds := &credentials{}
	cmd.PersistentFlags().StringVarP(&creds.Email, "email", "e", "", "Account email")
	cmd.PersistentFlags().StringVarP(&creds.Password, "password", "p", "", "Account password (prompted when omitted on a terminal)")
	return creds
}
