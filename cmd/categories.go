package cmd

import (
	"context"
	"fmt"

	"github.com/aitaprogrammer/blogify-cli/internal/adapters/render/feed"
	"github.com/aitaprogrammer/blogify-cli/internal/domain"
	"github.com/spf13/cobra"
)

func newCategoriesCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "List categories",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app.session.Resolve(cmd.Context())

			var categories []domain.Category
			err := runFetchSpinner(cmd.Context(), cmd.ErrOrStderr(), "Fetching categories...", func(ctx context.Context) error {
				var fetchErr error
				categories, fetchErr = app.gateway.Categories(ctx)
				return fetchErr
			})
			if err != nil {
				return err
			}

			for _, category := range categories {
				app.engine.Track(category.Subject(), domain.Relationship{Active: category.Followed})
			}

			output, err := feed.RenderCategories(categories, feed.RenderOptions{Now: app.now()})
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintln(cmd.OutOrStdout(), output)
			return nil
		},
	}
}
