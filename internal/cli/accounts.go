package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/recook-book/models"
)

// NewAccountsCommand creates the accounts command group.
func NewAccountsCommand(opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "accounts",
		Short: "Inspect registered accounts",
	}
	creds := loginFlags(cmd)

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List registered accounts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd, opts, func(ctx context.Context, env *commandEnv) error {
				if err := env.enter(ctx, models.PageHome, creds); err != nil {
					return err
				}

				accounts, err := env.svcs.Accounts.ListAccounts(ctx)
				if err != nil {
					return err
				}

				writeAccounts(cmd.OutOrStdout(), accounts)
				return nil
			})
		},
	})

	return cmd
}
