package common

import "fmt"

// ExitCode travels as a panic value up to the exit protection in main.
type ExitCode struct {
	Code    int
	Message string
}

func (it ExitCode) ShowMessage() {
	if len(it.Message) == 0 {
		return
	}
	if it.Code == 0 {
		Log("%s", it.Message)
		return
	}
	printout(currentSink(), it.Message)
}

func (it ExitCode) Error() string {
	return fmt.Sprintf("exit %d: %s", it.Code, it.Message)
}

func Exit(code int, format string, rest ...interface{}) {
	panic(ExitCode{
		Code:    code,
		Message: fmt.Sprintf(format, rest...),
	})
}
