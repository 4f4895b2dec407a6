package cmd

import (
	"context"
	"fmt"

	"github.com/aitaprogrammer/blogify-cli/internal/domain"
	"github.com/spf13/cobra"
)

func newFollowCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "follow",
		Short: "Follow categories and creators",
	}

	cmd.AddCommand(newFollowCategoryCmd(app), newFollowCreatorCmd(app))

	return cmd
}

func newFollowCategoryCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "category SLUG",
		Short: "Follow or unfollow a category",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app.session.Resolve(cmd.Context())
			if err := requireAuth(app); err != nil {
				return err
			}
			slug := args[0]

			var categories []domain.Category
			err := runFetchSpinner(cmd.Context(), cmd.ErrOrStderr(), "Fetching categories...", func(ctx context.Context) error {
				var fetchErr error
				categories, fetchErr = app.gateway.Categories(ctx)
				return fetchErr
			})
			if err != nil {
				return err
			}

			var category *domain.Category
			for i := range categories {
				if categories[i].Slug == slug {
					category = &categories[i]
					break
				}
			}
			if category == nil {
				return fmt.Errorf("category %q not found", slug)
			}

			key := category.Subject()
			app.engine.Track(key, domain.Relationship{Active: category.Followed})

			rel, err := app.engine.ToggleFollow(cmd.Context(), key)
			if err != nil {
				return err
			}

			if rel.Active {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Following %s\n", category.Name)
			} else {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Unfollowed %s\n", category.Name)
			}
			return nil
		},
	}
}

func newFollowCreatorCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "creator USERNAME",
		Short: "Follow or unfollow a creator",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app.session.Resolve(cmd.Context())
			if err := requireAuth(app); err != nil {
				return err
			}
			username := args[0]

			var profile domain.Profile
			err := runFetchSpinner(cmd.Context(), cmd.ErrOrStderr(), "Fetching profile...", func(ctx context.Context) error {
				var fetchErr error
				profile, fetchErr = app.gateway.Profile(ctx, username)
				return fetchErr
			})
			if err != nil {
				return err
			}

			key := profile.Subject()
			app.engine.Track(key, domain.Relationship{Active: profile.Followed, Count: profile.FollowersCount})

			rel, err := app.engine.ToggleFollow(cmd.Context(), key)
			if err != nil {
				return err
			}

			// The follow endpoint returns no count; refetch the profile for
			// the authoritative follower number.
			refetched, err := app.gateway.Profile(cmd.Context(), username)
			if err == nil {
				app.engine.Track(key, domain.Relationship{Active: refetched.Followed, Count: refetched.FollowersCount})
				rel = domain.Relationship{Active: refetched.Followed, Count: refetched.FollowersCount}
			}

			if rel.Active {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Following %s (followers %d)\n", username, rel.Count)
			} else {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Unfollowed %s (followers %d)\n", username, rel.Count)
			}
			return nil
		},
	}
}
