package main

import (
	"os"

	"github.com/master-bogdan/termfolio/cmd"
	"github.com/master-bogdan/termfolio/common"
)

func ExitProtection() {
	status := recover()
	if status != nil {
		exit, ok := status.(common.ExitCode)
		if ok {
			exit.ShowMessage()
			common.WaitLogs()
			os.Exit(exit.Code)
		}
		common.WaitLogs()
		panic(status)
	}
	common.WaitLogs()
}

func main() {
	defer ExitProtection()

	common.Trace("termfolio %s started.", common.Version)
	cmd.Execute()
}
