package pretty

import (
	"os"

	"github.com/mattn/go-isatty"

	"github.com/master-bogdan/termfolio/common"
)

var (
	Colorless   bool
	Iconic      bool
	Disabled    bool
	Interactive bool

	// colored is true once Setup has filled the escape codes below.
	colored bool

	Grey      string
	Red       string
	Green     string
	Yellow    string
	Magenta   string
	Cyan      string
	Reset     string
	Bold      string
	Italic    string
	Underline string
	Reverse   string
)

var escapes = []struct {
	target *string
	code   string
}{
	{&Grey, "90m"},
	{&Red, "91m"},
	{&Green, "92m"},
	{&Yellow, "93m"},
	{&Magenta, "95m"},
	{&Cyan, "96m"},
	{&Reset, "0m"},
	{&Bold, "1m"},
	{&Italic, "3m"},
	{&Underline, "4m"},
	{&Reverse, "7m"},
}

func Setup() {
	stdin := isatty.IsTerminal(os.Stdin.Fd())
	stdout := isatty.IsTerminal(os.Stdout.Fd())
	stderr := isatty.IsTerminal(os.Stderr.Fd())

	term := os.Getenv("TERM")
	Colorless = len(os.Getenv("NO_COLOR")) > 0 || term == "" || term == "dumb"

	// animation and prompts need all three, colors only need stdout
	Interactive = stdin && stdout && stderr
	localSetup(Interactive)

	colored = stdout && !Colorless && !Disabled
	for _, escape := range escapes {
		*escape.target = ""
		if colored {
			*escape.target = csi(escape.code)
		}
	}
	common.Trace("Interactive mode: %v; colors: %v (%v); icons: %v", Interactive, colored, DetectColorMode(), Iconic)
}
