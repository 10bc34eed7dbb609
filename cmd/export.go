package cmd

import (
	"github.com/spf13/cobra"

	"github.com/master-bogdan/termfolio/common"
	"github.com/master-bogdan/termfolio/export"
	"github.com/master-bogdan/termfolio/pretty"
	"github.com/master-bogdan/termfolio/settings"
)

var workersFlag int

var exportCmd = &cobra.Command{
	Use:   "export <directory>",
	Short: "Write the terminal as static JSON documents.",
	Long: `Write the terminal as static JSON documents into a directory.

Layout (every route ends with a slash):
  index.json                     commands, banner, boot messages, paths
  commands/<name>/index.json     output of each visible command
  blog/<slug>/index.json         every blog post

The base path comes from TERMFOLIO_BASE_PATH (or server.base_path) and the
asset prefix defaults to the base path followed by a slash. A .env file in
the working directory is read first.

Example:
  TERMFOLIO_BASE_PATH=/folio termfolio export ./public`,
	Args: cobra.ExactArgs(1),
	PreRun: func(cmd *cobra.Command, args []string) {
		loadDotenv()
	},
	Run: func(cmd *cobra.Command, args []string) {
		config := settings.Global
		space := summonWorkspace()
		report, err := export.Export(args[0], export.Options{
			Registry:    space.registry,
			Profile:     space.profile,
			Posts:       space.posts,
			BasePath:    config.BasePath(),
			AssetPrefix: config.AssetPrefix(),
			Workers:     workersFlag,
		})
		pretty.Guard(err == nil, 6, "Export failed: %v", err)
		for _, file := range report.Files {
			common.Debug("  %s", file)
		}
		pretty.Highlight("Wrote %d files into %s.", len(report.Files), report.Target)
		pretty.Ok()
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)
	exportCmd.Flags().IntVarP(&workersFlag, "workers", "w", 0, "parallel writers (default one per CPU)")
}
