package cmd

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/master-bogdan/termfolio/interactive"
	"github.com/master-bogdan/termfolio/logbuf"
	"github.com/master-bogdan/termfolio/pretty"
	"github.com/master-bogdan/termfolio/settings"
)

var noBootFlag bool

var uiCmd = &cobra.Command{
	Use:     "ui",
	Aliases: []string{"tui"},
	Short:   "Launch the full screen terminal.",
	Long: `Launch the full screen terminal.

The boot messages are typed first, then the banner, the quick commands and
the prompt appear and help is shown.

Keys:
  enter        run the prompt, or the focused quick command or link
  tab          complete a command name
  ctrl+n/p     move focus across quick commands and links
  esc          skip the typing animation
  up/down      prompt history
  pgup/pgdown  scroll the output
  ctrl+l       show the log
  ctrl+c       quit

Example:
  termfolio ui
  termfolio tui --no-boot --speed 5ms`,
	Run: func(cmd *cobra.Command, args []string) {
		if !pretty.Interactive {
			pretty.Exit(1, "The terminal UI requires an interactive terminal (TTY). Try 'termfolio shell'.")
		}
		config := settings.Global
		bindFlag(settings.SpeedKey, cmd, "speed")
		space := summonWorkspace()

		err := interactive.Run(interactive.Options{
			Registry:  space.registry,
			Profile:   *space.profile,
			Theme:     space.theme,
			Speed:     config.Speed(),
			BootSpeed: config.BootSpeed(),
			BootPause: config.BootPause(),
			SkipBoot:  noBootFlag || !config.BootEnabled(),
			Logs:      logbuf.NewLogBuffer(500),
		})
		pretty.Guard(err == nil, 1, "UI error: %v", err)
	},
}

func init() {
	rootCmd.AddCommand(uiCmd)
	uiCmd.Flags().BoolVarP(&noBootFlag, "no-boot", "", false, "skip the boot sequence")
	uiCmd.Flags().DurationP("speed", "s", 15*time.Millisecond, "delay between revealed characters")
}
