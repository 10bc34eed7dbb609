package pretty

import (
	"fmt"
	"os"
	"runtime"

	"github.com/master-bogdan/termfolio/common"
)

func csi(value string) string {
	return fmt.Sprintf("\x1b[%s", value)
}

func csif(form string, details ...interface{}) string {
	return csi(fmt.Sprintf(form, details...))
}

func localSetup(interactive bool) {
	Iconic = interactive && runtime.GOOS != "windows"
	if runtime.GOOS == "windows" && len(os.Getenv("WT_SESSION")) == 0 {
		Disabled = true
	}
}

func Ok() error {
	common.Log("%sOK.%s", Green, Reset)
	return nil
}

func Note(format string, rest ...interface{}) {
	niceform := fmt.Sprintf("%s%sNote: %s%s", Cyan, Bold, format, Reset)
	common.Log(niceform, rest...)
}

func Warning(format string, rest ...interface{}) {
	niceform := fmt.Sprintf("%sWarning: %s%s", Yellow, format, Reset)
	common.Log(niceform, rest...)
}

func Highlight(format string, rest ...interface{}) {
	niceform := fmt.Sprintf("%s%s%s", Magenta, format, Reset)
	common.Log(niceform, rest...)
}

func Exit(code int, format string, rest ...interface{}) {
	var niceform string
	if code == 0 {
		niceform = fmt.Sprintf("%s%s%s", Green, format, Reset)
	} else {
		niceform = fmt.Sprintf("%s%s%s", Red, format, Reset)
	}
	common.Exit(code, niceform, rest...)
}

func Guard(truth bool, code int, format string, rest ...interface{}) {
	if !truth {
		Exit(code, format, rest...)
	}
}
