package cmd

import (
	"fmt"

	"github.com/aitaprogrammer/blogify-cli/internal/domain"
	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

func newRegisterCmd(app *app) *cobra.Command {
	var reg domain.Registration

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create a Blogify account",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app.session.Resolve(cmd.Context())

			if reg.Username == "" || reg.Password == "" {
				if err := promptRegistration(&reg); err != nil {
					return fmt.Errorf("read registration: %w", err)
				}
			}

			if err := app.session.Register(cmd.Context(), reg); err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Registered %s. Run 'blogify login' to sign in.\n", reg.Username)
			return nil
		},
	}

	cmd.Flags().StringVar(&reg.Username, "username", "", "Account username")
	cmd.Flags().StringVar(&reg.Email, "email", "", "Account email")
	cmd.Flags().StringVar(&reg.Password, "password", "", "Account password")
	cmd.Flags().StringVar(&reg.PasswordConfirm, "confirm", "", "Password confirmation")

	return cmd
}

func promptRegistration(reg *domain.Registration) error {
	form := huh.NewForm(huh.NewGroup(
		huh.NewInput().Title("Username").Value(&reg.Username),
		huh.NewInput().Title("Email").Value(&reg.Email),
		huh.NewInput().Title("Password").EchoMode(huh.EchoModePassword).Value(&reg.Password),
		huh.NewInput().Title("Confirm password").EchoMode(huh.EchoModePassword).Value(&reg.PasswordConfirm),
	))

	return form.Run()
}
