package cmd

import (
	"github.com/spf13/cobra"

	"github.com/carlwiedemann/foresite/internal/output"
	"github.com/carlwiedemann/foresite/internal/paths"
	"github.com/carlwiedemann/foresite/internal/scaffold"
)

func newInitCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Initializes foresite in the project root",
		Long: `Creates ` + paths.DirMarkdown + `/ for editable markdown posts, ` + paths.DirOutput + `/ for generated HTML,
and ` + paths.DirTemplates + `/ holding editable templates.

Does not overwrite existing subdirectories or templates.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			printer := output.NewPrinter(cmd.OutOrStdout())
			_, err := scaffold.Init(a.paths(), printer.Print)
			return err
		},
	}
}
