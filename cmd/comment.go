package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newCommentCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "comment",
		Short: "Comment on posts",
	}

	cmd.AddCommand(newCommentAddCmd(app))

	return cmd
}

func newCommentAddCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "add SLUG BODY...",
		Short: "Add a comment to a post",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			app.session.Resolve(cmd.Context())
			if err := requireAuth(app); err != nil {
				return err
			}

			slug := args[0]
			body := strings.Join(args[1:], " ")

			comment, err := app.engine.AddComment(cmd.Context(), slug, body)
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Comment %d added to %s\n", comment.ID, slug)
			return nil
		},
	}
}
