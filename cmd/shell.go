package cmd

import (
	"context"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"

	"github.com/master-bogdan/termfolio/pretty"
	"github.com/master-bogdan/termfolio/settings"
	"github.com/master-bogdan/termfolio/shell"
)

var shellCmd = &cobra.Command{
	Use:   "shell",
	Short: "Line mode terminal over standard input and output.",
	Long: `Line mode terminal over standard input and output.

On a terminal the answers are typed out like in the full screen UI; when
input or output is redirected they are printed whole, as plain text.
Leave with exit, quit, logout or end of input.

Example:
  termfolio shell
  echo whoami | termfolio shell`,
	Run: func(cmd *cobra.Command, args []string) {
		bindFlag(settings.SpeedKey, cmd, "speed")
		space := summonWorkspace()
		terminal := shell.New(space.registry, space.profile.Prompt.String(), settings.Global.Speed())

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		err := terminal.Run(ctx, os.Stdin, os.Stdout)
		pretty.Guard(err == nil, 1, "Shell failed: %v", err)
	},
}

func init() {
	rootCmd.AddCommand(shellCmd)
	shellCmd.Flags().DurationP("speed", "s", 15*time.Millisecond, "delay between revealed characters")
}
