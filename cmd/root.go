package cmd

import "github.com/spf13/cobra"

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "blogify",
		Short:         "Blogify CLI: browse posts, like, follow, and comment from the terminal",
		Long:          "blogify is a terminal client for the Blogify platform. It keeps you signed in between runs, applies likes and follows optimistically, and reconciles against the server's answer.",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	app, err := wireApp()
	if err != nil {
		rootCmd.RunE = func(_ *cobra.Command, _ []string) error {
			return err
		}
		return rootCmd
	}

	rootCmd.AddCommand(
		newVersionCmd(),
		newLoginCmd(app),
		newRegisterCmd(app),
		newLogoutCmd(app),
		newWhoamiCmd(app),
		newPostsCmd(app),
		newLikeCmd(app),
		newFollowCmd(app),
		newCommentCmd(app),
		newCategoriesCmd(app),
		newCreatorsCmd(app),
	)

	return rootCmd
}
