package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/recook-book/models"
)

// NewSignupCommand creates the signup command.
func NewSignupCommand(opts *RootOptions) *cobra.Command {
	form := models.SignupForm{}

	cmd := &cobra.Command{
		Use:   "signup",
		Short: "Create an account",
		Long: `Create an account. The password needs at least 8 characters with an
uppercase letter, a lowercase letter and a digit. --agree-terms is required.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd, opts, func(ctx context.Context, env *commandEnv) error {
				if err := env.enter(ctx, models.PageSignup, nil); err != nil {
					return err
				}

				acc, err := env.app.SubmitSignup(ctx, form)
				if err != nil {
					return err
				}

				fmt.Fprintf(cmd.OutOrStdout(), "Created account %d for %s\n", acc.ID, acc.Email)
				return nil
			})
		},
	}

	f := cmd.Flags()
	f.StringVar(&form.FirstName, "first-name", "", "First name")
	f.StringVar(&form.LastName, "last-name", "", "Last name")
	f.StringVar(&form.Email, "email", "", "Email address")
	f.StringVar(&form.Password, "password", "", "Password")
	f.StringVar(&form.ConfirmPassword, "confirm-password", "", "Password again")
	f.BoolVar(&form.Newsletter, "newsletter", false, "Subscribe to the newsletter")
	f.BoolVar(&form.TermsAgreed, "agree-terms", false, "Agree to the terms and conditions")

	return cmd
}
