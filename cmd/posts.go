package cmd

import (
	"context"
	"fmt"

	"github.com/aitaprogrammer/blogify-cli/internal/adapters/render/feed"
	"github.com/aitaprogrammer/blogify-cli/internal/domain"
	"github.com/spf13/cobra"
)

func newPostsCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "posts",
		Short: "Browse posts",
	}

	cmd.AddCommand(newPostsListCmd(app), newPostsViewCmd(app))

	return cmd
}

func newPostsListCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the post feed",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app.session.Resolve(cmd.Context())

			var posts []domain.Post
			err := runFetchSpinner(cmd.Context(), cmd.ErrOrStderr(), "Fetching posts...", func(ctx context.Context) error {
				var fetchErr error
				posts, fetchErr = app.gateway.Posts(ctx)
				return fetchErr
			})
			if err != nil {
				return err
			}

			trackPosts(app, posts)

			output, err := feed.RenderPosts(posts, feed.RenderOptions{Now: app.now()})
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintln(cmd.OutOrStdout(), output)
			return nil
		},
	}
}

func newPostsViewCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "view SLUG",
		Short: "Show a post with its comments",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app.session.Resolve(cmd.Context())
			slug := args[0]

			var post domain.Post
			var comments []domain.Comment
			err := runFetchSpinner(cmd.Context(), cmd.ErrOrStderr(), "Fetching post...", func(ctx context.Context) error {
				var fetchErr error
				post, fetchErr = app.gateway.Post(ctx, slug)
				if fetchErr != nil {
					return fetchErr
				}
				comments, fetchErr = app.gateway.Comments(ctx, slug)
				return fetchErr
			})
			if err != nil {
				return err
			}

			app.engine.Track(post.Subject(), post.Likes)
			for _, comment := range comments {
				app.engine.Track(comment.Subject(), comment.Likes)
			}

			output, err := feed.RenderPost(post, comments, feed.RenderOptions{Now: app.now()})
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintln(cmd.OutOrStdout(), output)
			return nil
		},
	}
}

func trackPosts(app *app, posts []domain.Post) {
	for _, post := range posts {
		app.engine.Track(post.Subject(), post.Likes)
		if post.FirstComment != nil {
			app.engine.Track(post.FirstComment.Subject(), post.FirstComment.Likes)
		}
	}
}
