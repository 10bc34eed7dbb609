package cmd

import (
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/master-bogdan/termfolio/common"
	"github.com/master-bogdan/termfolio/pretty"
	"github.com/master-bogdan/termfolio/settings"
	"github.com/master-bogdan/termfolio/xviper"
)

var (
	debugFlag  bool
	traceFlag  bool
	silentFlag bool
)

var rootCmd = &cobra.Command{
	Use:   "termfolio",
	Short: "A portfolio that lives in your terminal.",
	Long: `termfolio is a personal portfolio shaped like a shell.

Type commands like whoami, projects, blog or help and watch the answers being
typed out. The same commands are available as a full screen terminal UI, a
line mode shell, one-shot execution, an HTTP API and a static JSON export.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		defineVerbosity(silentFlag, debugFlag, traceFlag)
		pretty.Setup()
		_, err := settings.SummonSettings()
		pretty.Guard(err == nil, 2, "Could not load settings: %v", err)
		bindFlag(settings.VariantKey, cmd, "variant")
		bindFlag(settings.ThemeKey, cmd, "theme")
		common.Trace("Effective settings: %v", xviper.AllSettings())
	},
	Run: func(cmd *cobra.Command, args []string) {
		if isatty.IsTerminal(os.Stdin.Fd()) && isatty.IsTerminal(os.Stdout.Fd()) {
			uiCmd.Run(cmd, args)
			return
		}
		cmd.Help()
	},
}

func defineVerbosity(silent, debug, trace bool) {
	switch {
	case trace:
		common.SetVerbosity(common.Tracing)
	case debug:
		common.SetVerbosity(common.Debugging)
	case silent:
		common.SetVerbosity(common.Silently)
	default:
		common.SetVerbosity(common.Normal)
	}
}

// bindFlag lets an explicitly given flag override settings and environment.
func bindFlag(key string, cmd *cobra.Command, name string) {
	flag := cmd.Flags().Lookup(name)
	if flag == nil || !flag.Changed {
		return
	}
	err := xviper.BindFlag(key, flag)
	pretty.Guard(err == nil, 2, "Could not bind flag --%s: %v", name, err)
}

func Execute() {
	defer func() {
		if len(os.Args) > 1 {
			common.Debug("Command line was: %q", os.Args[1:])
		}
	}()

	rootCmd.SetArgs(os.Args[1:])
	err := rootCmd.Execute()
	pretty.Guard(err == nil, 1, "Error: [termfolio] %v", err)
}

func init() {
	rootCmd.PersistentFlags().StringVar(&settings.ConfigFile, "config", "", "settings file to use (default $TERMFOLIO_HOME/termfolio.yaml, then ./termfolio.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&silentFlag, "silent", "", false, "be less verbose on output")
	rootCmd.PersistentFlags().BoolVarP(&debugFlag, "debug", "", false, "to get debug output where available")
	rootCmd.PersistentFlags().BoolVarP(&traceFlag, "trace", "", false, "to get trace output where available")
	rootCmd.PersistentFlags().String("variant", "", "command set to use: classic or retro")
	rootCmd.PersistentFlags().String("theme", "", "color theme of the terminal UI: classic or retro")
}
