package common_test

import (
	"bytes"
	"sync"
	"testing"

	"github.com/master-bogdan/termfolio/common"
	"github.com/master-bogdan/termfolio/hamlet"
)

type lockedBuffer struct {
	sync.Mutex
	bytes.Buffer
}

func (it *lockedBuffer) Write(blob []byte) (int, error) {
	it.Lock()
	defer it.Unlock()
	return it.Buffer.Write(blob)
}

func (it *lockedBuffer) String() string {
	it.Lock()
	defer it.Unlock()
	return it.Buffer.String()
}

func TestLogsGoToRedirectedSink(t *testing.T) {
	must_be, _ := hamlet.Specifications(t)

	sink := &lockedBuffer{}
	previous := common.RedirectLogs(sink)
	defer common.RedirectLogs(previous)
	defer common.SetVerbosity(common.CurrentVerbosity())
	common.SetVerbosity(common.Normal)

	common.Log("hello %s", "world")
	common.WaitLogs()

	must_be.Equal("hello world\n", sink.String())
}

func TestInterceptorSwallowsLogs(t *testing.T) {
	must_be, _ := hamlet.Specifications(t)

	sink := &lockedBuffer{}
	previous := common.RedirectLogs(sink)
	defer common.RedirectLogs(previous)
	defer common.SetVerbosity(common.CurrentVerbosity())
	common.SetVerbosity(common.Normal)

	seen := []string{}
	common.SetLogInterceptor(func(message string) bool {
		seen = append(seen, message)
		return true
	})
	defer common.ClearLogInterceptor()

	common.Log("captured")
	common.WaitLogs()

	must_be.Equal("", sink.String())
	must_be.Equal([]string{"captured"}, seen)
}

func TestSilentSuppressesLogButNotFatal(t *testing.T) {
	must_be, _ := hamlet.Specifications(t)

	sink := &lockedBuffer{}
	previous := common.RedirectLogs(sink)
	defer common.RedirectLogs(previous)
	defer common.SetVerbosity(common.CurrentVerbosity())
	common.SetVerbosity(common.Silently)

	common.Log("hidden")
	common.Fatal("boom", errTest("kaboom"))
	common.WaitLogs()

	must_be.Equal("Fatal [boom]: kaboom\n", sink.String())
}

type errTest string

func (it errTest) Error() string {
	return string(it)
}
