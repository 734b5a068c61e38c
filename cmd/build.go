package cmd

import (
	"github.com/spf13/cobra"

	"github.com/carlwiedemann/foresite/internal/build"
	"github.com/carlwiedemann/foresite/internal/output"
	"github.com/carlwiedemann/foresite/internal/paths"
)

func newBuildCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "build",
		Short: "Generates HTML from markdown into " + paths.DirOutput + "/",
		Long: `Removes everything in ` + paths.DirOutput + `/, then creates one HTML file per markdown post
plus ` + paths.FileIndex + ` listing every post, newest first.

HTML files are named after their markdown files with the extension .html
instead of .md.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			b := build.New(a.paths())
			b.Notify = output.NewPrinter(cmd.OutOrStdout()).Print
			_, err := b.Run()
			return err
		},
	}
}
