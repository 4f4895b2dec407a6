package cmd

import (
	"context"
	"fmt"
	"strconv"

	"github.com/aitaprogrammer/blogify-cli/internal/domain"
	"github.com/spf13/cobra"
)

func newLikeCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "like",
		Short: "Like posts and comments",
	}

	cmd.AddCommand(newLikePostCmd(app), newLikeCommentCmd(app))

	return cmd
}

func newLikePostCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "post SLUG",
		Short: "Like a post",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app.session.Resolve(cmd.Context())
			if err := requireAuth(app); err != nil {
				return err
			}
			slug := args[0]

			var post domain.Post
			err := runFetchSpinner(cmd.Context(), cmd.ErrOrStderr(), "Fetching post...", func(ctx context.Context) error {
				var fetchErr error
				post, fetchErr = app.gateway.Post(ctx, slug)
				return fetchErr
			})
			if err != nil {
				return err
			}
			app.engine.Track(post.Subject(), post.Likes)

			rel, err := app.engine.ToggleLike(cmd.Context(), post.Subject())
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Liked %s (likes %d)\n", slug, rel.Count)
			return nil
		},
	}
}

func newLikeCommentCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "comment SLUG ID",
		Short: "Like a comment on a post",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			app.session.Resolve(cmd.Context())
			if err := requireAuth(app); err != nil {
				return err
			}
			slug, id := args[0], args[1]

			if _, err := strconv.ParseInt(id, 10, 64); err != nil {
				return fmt.Errorf("comment id %q is not numeric", id)
			}

			var comments []domain.Comment
			err := runFetchSpinner(cmd.Context(), cmd.ErrOrStderr(), "Fetching comments...", func(ctx context.Context) error {
				var fetchErr error
				comments, fetchErr = app.gateway.Comments(ctx, slug)
				return fetchErr
			})
			if err != nil {
				return err
			}

			key := domain.SubjectKey{Kind: domain.SubjectComment, ID: id}
			found := false
			for _, comment := range comments {
				if comment.Subject() == key {
					app.engine.Track(key, comment.Likes)
					found = true
					break
				}
			}
			if !found {
				return fmt.Errorf("comment %s not found on %s", id, slug)
			}

			rel, err := app.engine.ToggleLike(cmd.Context(), key)
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Liked comment %s (likes %d)\n", id, rel.Count)
			return nil
		},
	}
}
