package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newWhoamiCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the signed-in identity",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app.session.Resolve(cmd.Context())

			identity, ok := app.session.Identity()
			if !ok {
				return errNotLoggedIn
			}

			if identity.Email != "" {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s (%s)\n", identity.Username, identity.Email)
			} else {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), identity.Username)
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "identity file: %s\n", app.identityPath)
			return nil
		},
	}
}
