package cmd

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

func newLoginCmd(app *app) *cobra.Command {
	var username, password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in to Blogify",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app.session.Resolve(cmd.Context())

			if username == "" || password == "" {
				if err := promptCredentials(&username, &password); err != nil {
					return fmt.Errorf("read credentials: %w", err)
				}
			}

			if strings.TrimSpace(username) == "" {
				return fmt.Errorf("username is empty")
			}

			if err := app.session.Login(cmd.Context(), username, password); err != nil {
				return err
			}

			identity, _ := app.session.Identity()
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Logged in as %s\n", identity.Username)
			return nil
		},
	}

	cmd.Flags().StringVar(&username, "username", "", "Account username")
	cmd.Flags().StringVar(&password, "password", "", "Account password")

	return cmd
}

func promptCredentials(username, password *string) error {
	form := huh.NewForm(huh.NewGroup(
		huh.NewInput().Title("Username").Value(username),
		huh.NewInput().Title("Password").EchoMode(huh.EchoModePassword).Value(password),
	))

	return form.Run()
}
