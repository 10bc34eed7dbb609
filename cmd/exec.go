package cmd

import (
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/master-bogdan/termfolio/commands"
	"github.com/master-bogdan/termfolio/common"
	"github.com/master-bogdan/termfolio/content"
	"github.com/master-bogdan/termfolio/pretty"
)

var execCmd = &cobra.Command{
	Use:   "exec <command> [arguments...]",
	Short: "Run one terminal command and print its whole output.",
	Long: `Run one terminal command and print its whole output at once.

Example:
  termfolio exec whoami
  termfolio exec blog welcome
  termfolio exec help --hidden`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		space := summonWorkspace()
		line := strings.Join(args, " ")
		result := space.registry.Dispatch(line, time.Now())
		switch result.Kind {
		case commands.Blank:
			pretty.Exit(1, "Nothing to run.")
		case commands.Clear:
			common.Stdout("%s", "\033[H\033[2J")
			return
		}
		options := content.Options{Styler: content.Plain, Focused: -1, Hrefs: true}
		if pretty.Interactive {
			options.Styler = pretty.NewStyler()
		}
		common.Stdout("%s\n", content.Render(result.Output.Output, options))
		pretty.Guard(result.Kind == commands.Executed, 1, "Command not found: %s", result.Name)
	},
}

func init() {
	rootCmd.AddCommand(execCmd)
	execCmd.Flags().SetInterspersed(false)
}
