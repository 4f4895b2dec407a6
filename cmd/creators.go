package cmd

import (
	"context"
	"fmt"

	"github.com/aitaprogrammer/blogify-cli/internal/adapters/render/feed"
	"github.com/aitaprogrammer/blogify-cli/internal/domain"
	"github.com/spf13/cobra"
)

func newCreatorsCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "creators",
		Short: "List creator profiles",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app.session.Resolve(cmd.Context())

			var profiles []domain.Profile
			err := runFetchSpinner(cmd.Context(), cmd.ErrOrStderr(), "Fetching creators...", func(ctx context.Context) error {
				var fetchErr error
				profiles, fetchErr = app.gateway.Creators(ctx)
				return fetchErr
			})
			if err != nil {
				return err
			}

			for _, profile := range profiles {
				app.engine.Track(profile.Subject(), domain.Relationship{Active: profile.Followed, Count: profile.FollowersCount})
			}

			output, err := feed.RenderCreators(profiles, feed.RenderOptions{Now: app.now()})
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintln(cmd.OutOrStdout(), output)
			return nil
		},
	}
}
