package cmd

import (
	"github.com/spf13/cobra"

	"github.com/carlwiedemann/foresite/internal/output"
	"github.com/carlwiedemann/foresite/internal/paths"
	"github.com/carlwiedemann/foresite/internal/post"
)

func newTouchCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "touch <title>",
		Short: "Creates a new markdown post in " + paths.DirMarkdown + "/",
		Long: `Creates a markdown file for use as a post.

The file is named after the current date, formatted YYYY-MM-DD, followed by
the title in lowercase letters separated by hyphens. Its content comes from
` + paths.DirTemplates + `/` + paths.FilePost + `.

Example, on 14 January 2023:

  $ foresite touch "Happy new year!"
  Created ` + paths.DirMarkdown + `/2023-01-14-happy-new-year.md`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			msg, err := post.Touch(a.paths(), args[0], a.now())
			if err != nil {
				return err
			}
			output.NewPrinter(cmd.OutOrStdout()).Print(msg)
			return nil
		},
	}
}
